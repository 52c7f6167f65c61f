package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
	"export-manager-api/internal/dto"
	"export-manager-api/internal/metrics"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/response"
)

// ExportService defines the interface for export definition business logic
type ExportService interface {
	CreateExport(ctx context.Context, req *dto.CreateExportRequest) (*dto.ExportResponse, error)
	GetExport(ctx context.Context, exportID uuid.UUID) (*dto.ExportResponse, error)
	ListExports(ctx context.Context) ([]*dto.ExportResponse, error)
	DeleteExport(ctx context.Context, exportID uuid.UUID) error
}

// exportServiceImpl is the implementation of ExportService
type exportServiceImpl struct {
	exportRepo   repository.ExportRepository
	metadataRepo repository.MetadataRepository
	metrics      *metrics.Metrics
}

// NewExportService creates a new instance of ExportService
func NewExportService(
	exportRepo repository.ExportRepository,
	metadataRepo repository.MetadataRepository,
	m *metrics.Metrics,
) ExportService {
	return &exportServiceImpl{
		exportRepo:   exportRepo,
		metadataRepo: metadataRepo,
		metrics:      m,
	}
}

// CreateExport creates a new export definition. The target resource must
// be a registered catalog model.
func (s *exportServiceImpl) CreateExport(ctx context.Context, req *dto.CreateExportRequest) (*dto.ExportResponse, error) {
	model, err := s.metadataRepo.FindModelByName(ctx, req.Resource)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch target model", err.Error())
	}
	if model == nil {
		return nil, response.NewValidationError(
			fmt.Sprintf("Model '%s' is not registered in the catalog", req.Resource), "")
	}

	export := &domain.Export{
		Name:     req.Name,
		Resource: req.Resource,
		ModelID:  model.ID,
		Model:    *model,
	}
	if err := s.exportRepo.Create(ctx, export); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create export", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementExportCreated()
	}

	return s.toExportResponse(export), nil
}

// GetExport retrieves an export definition without its lines; line
// responses carry resolved chains and come from ExportLineService
func (s *exportServiceImpl) GetExport(ctx context.Context, exportID uuid.UUID) (*dto.ExportResponse, error) {
	export, err := s.exportRepo.FindByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Export not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch export", err.Error())
	}

	return s.toExportResponse(export), nil
}

// ListExports lists all export definitions
func (s *exportServiceImpl) ListExports(ctx context.Context) ([]*dto.ExportResponse, error) {
	exports, err := s.exportRepo.List(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list exports", err.Error())
	}

	responses := make([]*dto.ExportResponse, len(exports))
	for i, export := range exports {
		responses[i] = s.toExportResponse(export)
	}
	return responses, nil
}

// DeleteExport deletes an export definition and all of its lines
func (s *exportServiceImpl) DeleteExport(ctx context.Context, exportID uuid.UUID) error {
	if _, err := s.exportRepo.FindByID(ctx, exportID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Export not found", "")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to fetch export", err.Error())
	}

	if err := s.exportRepo.Delete(ctx, exportID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete export", err.Error())
	}
	return nil
}

// toExportResponse converts domain.Export to dto.ExportResponse
func (s *exportServiceImpl) toExportResponse(export *domain.Export) *dto.ExportResponse {
	resp := &dto.ExportResponse{
		ExportID:  export.ID,
		Name:      export.Name,
		Resource:  export.Resource,
		CreatedAt: export.CreatedAt,
		UpdatedAt: export.UpdatedAt,
	}
	if export.Model.ID != uuid.Nil {
		resp.Model = &dto.ModelRef{
			ModelID: export.Model.ID,
			Model:   export.Model.Model,
			Label:   export.Model.Label,
		}
	}
	return resp
}
