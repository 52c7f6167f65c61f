package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
)

// MetadataRepository defines the interface for model/field catalog data access
type MetadataRepository interface {
	CreateModel(ctx context.Context, model *domain.ModelMeta) error
	FindModelByID(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error)
	FindModelByName(ctx context.Context, model string) (*domain.ModelMeta, error)
	ListModels(ctx context.Context) ([]*domain.ModelMeta, error)
	CreateField(ctx context.Context, field *domain.FieldMeta) error
	FindFieldByID(ctx context.Context, id uuid.UUID) (*domain.FieldMeta, error)
	FindFieldByModelAndName(ctx context.Context, modelID uuid.UUID, name string) (*domain.FieldMeta, error)
	FindFieldsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.FieldMeta, error)
	ListFieldsByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.FieldMeta, error)
}

// metadataRepositoryImpl is the GORM implementation of MetadataRepository
type metadataRepositoryImpl struct {
	db *gorm.DB
}

// NewMetadataRepository creates a new instance of MetadataRepository
func NewMetadataRepository(db *gorm.DB) MetadataRepository {
	return &metadataRepositoryImpl{db: db}
}

// CreateModel creates a new model catalog entry
func (r *metadataRepositoryImpl) CreateModel(ctx context.Context, model *domain.ModelMeta) error {
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	return nil
}

// FindModelByID finds a model catalog entry by ID
func (r *metadataRepositoryImpl) FindModelByID(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error) {
	var model domain.ModelMeta
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&model).Error; err != nil {
		return nil, err
	}
	return &model, nil
}

// FindModelByName finds a model catalog entry by technical model name.
// Returns (nil, nil) when no entry exists: derivation paths treat a
// missing model as unset, not as an error.
func (r *metadataRepositoryImpl) FindModelByName(ctx context.Context, modelName string) (*domain.ModelMeta, error) {
	var model domain.ModelMeta
	if err := r.db.WithContext(ctx).
		Where("model = ?", modelName).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &model, nil
}

// ListModels lists all model catalog entries ordered by technical name
func (r *metadataRepositoryImpl) ListModels(ctx context.Context) ([]*domain.ModelMeta, error) {
	var models []*domain.ModelMeta
	if err := r.db.WithContext(ctx).
		Order("model ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return models, nil
}

// CreateField creates a new field catalog entry
func (r *metadataRepositoryImpl) CreateField(ctx context.Context, field *domain.FieldMeta) error {
	if err := r.db.WithContext(ctx).Create(field).Error; err != nil {
		return err
	}
	return nil
}

// FindFieldByID finds a field catalog entry by ID
func (r *metadataRepositoryImpl) FindFieldByID(ctx context.Context, id uuid.UUID) (*domain.FieldMeta, error) {
	var field domain.FieldMeta
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&field).Error; err != nil {
		return nil, err
	}
	return &field, nil
}

// FindFieldByModelAndName finds a field catalog entry by owning model and
// technical field name. Returns (nil, nil) when no entry exists.
func (r *metadataRepositoryImpl) FindFieldByModelAndName(ctx context.Context, modelID uuid.UUID, name string) (*domain.FieldMeta, error) {
	var field domain.FieldMeta
	if err := r.db.WithContext(ctx).
		Where("model_id = ? AND name = ?", modelID, name).
		First(&field).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &field, nil
}

// FindFieldsByIDs finds multiple field catalog entries in a single query
func (r *metadataRepositoryImpl) FindFieldsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.FieldMeta, error) {
	if len(ids) == 0 {
		return []*domain.FieldMeta{}, nil
	}

	var fields []*domain.FieldMeta
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

// ListFieldsByModel lists all field catalog entries of a model ordered
// by technical name
func (r *metadataRepositoryImpl) ListFieldsByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.FieldMeta, error) {
	var fields []*domain.FieldMeta
	if err := r.db.WithContext(ctx).
		Where("model_id = ?", modelID).
		Order("name ASC").
		Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}
