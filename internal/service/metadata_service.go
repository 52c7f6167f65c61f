package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"export-manager-api/internal/cache"
	"export-manager-api/internal/domain"
	"export-manager-api/internal/dto"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/response"
)

// MetadataService defines the interface for model/field catalog management
type MetadataService interface {
	RegisterModel(ctx context.Context, req *dto.RegisterModelRequest) (*dto.ModelMetaResponse, error)
	ListModels(ctx context.Context) ([]*dto.ModelMetaResponse, error)
	RegisterField(ctx context.Context, modelName string, req *dto.RegisterFieldRequest) (*dto.FieldMetaResponse, error)
	ListFields(ctx context.Context, modelName string) ([]*dto.FieldMetaResponse, error)
}

// metadataServiceImpl is the implementation of MetadataService
type metadataServiceImpl struct {
	metadataRepo repository.MetadataRepository
	labels       *cache.LabelCache
}

// NewMetadataService creates a new instance of MetadataService
func NewMetadataService(metadataRepo repository.MetadataRepository, labels *cache.LabelCache) MetadataService {
	return &metadataServiceImpl{
		metadataRepo: metadataRepo,
		labels:       labels,
	}
}

// RegisterModel registers a new model in the catalog
func (s *metadataServiceImpl) RegisterModel(ctx context.Context, req *dto.RegisterModelRequest) (*dto.ModelMetaResponse, error) {
	existing, err := s.metadataRepo.FindModelByName(ctx, req.Model)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicate model", err.Error())
	}
	if existing != nil {
		return nil, response.NewAlreadyExistsError(fmt.Sprintf("Model '%s' is already registered", req.Model), "")
	}

	model := &domain.ModelMeta{
		Model: req.Model,
		Label: req.Label,
	}
	if err := s.metadataRepo.CreateModel(ctx, model); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register model", err.Error())
	}

	return s.toModelResponse(model), nil
}

// ListModels lists all registered models
func (s *metadataServiceImpl) ListModels(ctx context.Context) ([]*dto.ModelMetaResponse, error) {
	models, err := s.metadataRepo.ListModels(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list models", err.Error())
	}

	responses := make([]*dto.ModelMetaResponse, len(models))
	for i, model := range models {
		responses[i] = s.toModelResponse(model)
	}
	return responses, nil
}

// RegisterField registers a new field on a catalog model
func (s *metadataServiceImpl) RegisterField(ctx context.Context, modelName string, req *dto.RegisterFieldRequest) (*dto.FieldMetaResponse, error) {
	model, err := s.metadataRepo.FindModelByName(ctx, modelName)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch model", err.Error())
	}
	if model == nil {
		return nil, response.NewNotFoundError(fmt.Sprintf("Model '%s' is not registered", modelName), "")
	}

	existing, err := s.metadataRepo.FindFieldByModelAndName(ctx, model.ID, req.Name)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicate field", err.Error())
	}
	if existing != nil {
		return nil, response.NewAlreadyExistsError(
			fmt.Sprintf("Field '%s' already exists on model '%s'", req.Name, modelName), "")
	}

	relation := domain.RelationNone
	if req.Relation != "" {
		relation = domain.RelationKind(req.Relation)
	}
	if relation != domain.RelationNone && req.RelationTarget == "" {
		return nil, response.NewValidationError("Relational fields require a relation target", "")
	}

	var translations datatypes.JSONMap
	if len(req.Translations) > 0 {
		translations = make(datatypes.JSONMap, len(req.Translations))
		for lang, desc := range req.Translations {
			translations[lang] = desc
		}
	}

	field := &domain.FieldMeta{
		ModelID:        model.ID,
		Name:           req.Name,
		Description:    req.Description,
		Translations:   translations,
		Relation:       relation,
		RelationTarget: req.RelationTarget,
	}
	if err := s.metadataRepo.CreateField(ctx, field); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to register field", err.Error())
	}

	// Labels derived against the old catalog state are stale now
	s.labels.Invalidate(ctx, model.Model)

	return s.toFieldResponse(field), nil
}

// ListFields lists all fields registered on a catalog model
func (s *metadataServiceImpl) ListFields(ctx context.Context, modelName string) ([]*dto.FieldMetaResponse, error) {
	model, err := s.metadataRepo.FindModelByName(ctx, modelName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError(fmt.Sprintf("Model '%s' is not registered", modelName), "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch model", err.Error())
	}
	if model == nil {
		return nil, response.NewNotFoundError(fmt.Sprintf("Model '%s' is not registered", modelName), "")
	}

	fields, err := s.metadataRepo.ListFieldsByModel(ctx, model.ID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list fields", err.Error())
	}

	responses := make([]*dto.FieldMetaResponse, len(fields))
	for i, field := range fields {
		responses[i] = s.toFieldResponse(field)
	}
	return responses, nil
}

// toModelResponse converts domain.ModelMeta to dto.ModelMetaResponse
func (s *metadataServiceImpl) toModelResponse(model *domain.ModelMeta) *dto.ModelMetaResponse {
	return &dto.ModelMetaResponse{
		ModelID:   model.ID,
		Model:     model.Model,
		Label:     model.Label,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// toFieldResponse converts domain.FieldMeta to dto.FieldMetaResponse
func (s *metadataServiceImpl) toFieldResponse(field *domain.FieldMeta) *dto.FieldMetaResponse {
	var translations map[string]string
	if len(field.Translations) > 0 {
		translations = make(map[string]string, len(field.Translations))
		for lang, v := range field.Translations {
			if desc, ok := v.(string); ok {
				translations[lang] = desc
			}
		}
	}

	return &dto.FieldMetaResponse{
		FieldID:        field.ID,
		ModelID:        field.ModelID,
		Name:           field.Name,
		Description:    field.Description,
		Translations:   translations,
		Relation:       string(field.Relation),
		RelationTarget: field.RelationTarget,
		CreatedAt:      field.CreatedAt,
		UpdatedAt:      field.UpdatedAt,
	}
}
