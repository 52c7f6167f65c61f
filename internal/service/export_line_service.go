package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
	"export-manager-api/internal/dto"
	"export-manager-api/internal/metrics"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/response"
)

// ExportLineService defines the interface for export line business logic.
// Line mutations run the path synchronizer in dependency order: selectors,
// then name, then dependent models, then label, then validation.
type ExportLineService interface {
	CreateLine(ctx context.Context, exportID uuid.UUID, req *dto.CreateExportLineRequest, lang string) (*dto.ExportLineResponse, error)
	GetLine(ctx context.Context, exportID, lineID uuid.UUID, lang string) (*dto.ExportLineResponse, error)
	ListLines(ctx context.Context, exportID uuid.UUID, lang string) ([]*dto.ExportLineResponse, error)
	UpdateLine(ctx context.Context, exportID, lineID uuid.UUID, req *dto.UpdateExportLineRequest, lang string) (*dto.ExportLineResponse, error)
	DeleteLine(ctx context.Context, exportID, lineID uuid.UUID) error
}

// exportLineServiceImpl is the implementation of ExportLineService
type exportLineServiceImpl struct {
	exportRepo repository.ExportRepository
	lineRepo   repository.ExportLineRepository
	sync       PathSynchronizer
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewExportLineService creates a new instance of ExportLineService
func NewExportLineService(
	exportRepo repository.ExportRepository,
	lineRepo repository.ExportLineRepository,
	sync PathSynchronizer,
	m *metrics.Metrics,
	logger *zap.Logger,
) ExportLineService {
	return &exportLineServiceImpl{
		exportRepo: exportRepo,
		lineRepo:   lineRepo,
		sync:       sync,
		metrics:    m,
		logger:     logger,
	}
}

// CreateLine creates a new export line from either a raw dotted path or
// the four field selectors
func (s *exportLineServiceImpl) CreateLine(ctx context.Context, exportID uuid.UUID, req *dto.CreateExportLineRequest, lang string) (*dto.ExportLineResponse, error) {
	export, err := s.findExport(ctx, exportID)
	if err != nil {
		return nil, err
	}

	line := &domain.ExportLine{
		ExportID: exportID,
		Sequence: req.Sequence,
	}
	line.Field1ID = req.Field1ID
	line.Field2ID = req.Field2ID
	line.Field3ID = req.Field3ID
	line.Field4ID = req.Field4ID

	var chain *FieldChain
	if req.Name != nil {
		// Inverse direction: the pasted path wins over any selectors
		line.Name = *req.Name
		chain, err = s.sync.SyncFromName(ctx, line, &export.Model, lang)
	} else {
		chain, err = s.sync.SyncFromSelectors(ctx, line, &export.Model, lang)
	}
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	if err := s.validateLine(ctx, line, uuid.Nil); err != nil {
		s.recordFailure(err)
		return nil, err
	}

	if err := s.lineRepo.Create(ctx, line); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create export line", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementLineCreated()
	}

	s.logger.Info("Export line created",
		zap.String("export_id", exportID.String()),
		zap.String("line_id", line.ID.String()),
		zap.String("name", line.Name),
	)

	return s.toLineResponse(line, chain), nil
}

// GetLine retrieves one export line with its resolved chain
func (s *exportLineServiceImpl) GetLine(ctx context.Context, exportID, lineID uuid.UUID, lang string) (*dto.ExportLineResponse, error) {
	export, err := s.findExport(ctx, exportID)
	if err != nil {
		return nil, err
	}

	line, err := s.findLine(ctx, exportID, lineID)
	if err != nil {
		return nil, err
	}

	return s.resolveForRead(ctx, line, export, lang), nil
}

// ListLines lists all lines of an export in sequence order
func (s *exportLineServiceImpl) ListLines(ctx context.Context, exportID uuid.UUID, lang string) ([]*dto.ExportLineResponse, error) {
	export, err := s.findExport(ctx, exportID)
	if err != nil {
		return nil, err
	}

	lines, err := s.lineRepo.FindByExport(ctx, exportID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list export lines", err.Error())
	}

	responses := make([]*dto.ExportLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = s.resolveForRead(ctx, line, export, lang)
	}
	return responses, nil
}

// UpdateLine updates an export line. A provided name re-derives the
// selectors; otherwise provided selectors re-derive the name.
func (s *exportLineServiceImpl) UpdateLine(ctx context.Context, exportID, lineID uuid.UUID, req *dto.UpdateExportLineRequest, lang string) (*dto.ExportLineResponse, error) {
	export, err := s.findExport(ctx, exportID)
	if err != nil {
		return nil, err
	}

	line, err := s.findLine(ctx, exportID, lineID)
	if err != nil {
		return nil, err
	}

	if req.Sequence != nil {
		line.Sequence = *req.Sequence
	}

	var chain *FieldChain
	if req.Name != nil {
		line.Name = *req.Name
		chain, err = s.sync.SyncFromName(ctx, line, &export.Model, lang)
	} else {
		if req.Field1ID != nil {
			line.Field1ID = req.Field1ID
		}
		if req.Field2ID != nil {
			line.Field2ID = req.Field2ID
		}
		if req.Field3ID != nil {
			line.Field3ID = req.Field3ID
		}
		if req.Field4ID != nil {
			line.Field4ID = req.Field4ID
		}
		chain, err = s.sync.SyncFromSelectors(ctx, line, &export.Model, lang)
	}
	if err != nil {
		s.recordFailure(err)
		return nil, err
	}

	if err := s.validateLine(ctx, line, line.ID); err != nil {
		s.recordFailure(err)
		return nil, err
	}

	if err := s.lineRepo.Update(ctx, line); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update export line", err.Error())
	}

	return s.toLineResponse(line, chain), nil
}

// DeleteLine deletes an export line
func (s *exportLineServiceImpl) DeleteLine(ctx context.Context, exportID, lineID uuid.UUID) error {
	if _, err := s.findLine(ctx, exportID, lineID); err != nil {
		return err
	}

	if err := s.lineRepo.Delete(ctx, lineID); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete export line", err.Error())
	}
	return nil
}

// validateLine runs the full line validation once the chain is complete.
// An empty path is a legitimate intermediate state and is not validated.
func (s *exportLineServiceImpl) validateLine(ctx context.Context, line *domain.ExportLine, excludeID uuid.UUID) error {
	if line.Name == "" {
		return nil
	}

	if line.Label == "" {
		return response.NewValidationError(fmt.Sprintf("Field '%s' does not exist", line.Name), "")
	}

	count, err := s.lineRepo.CountByExportAndName(ctx, line.ExportID, line.Name, excludeID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to check for duplicate lines", err.Error())
	}
	if count > 0 {
		return response.NewAlreadyExistsError(fmt.Sprintf("Field '%s' already exists", line.Name), "")
	}
	return nil
}

// resolveForRead rebuilds the chain for a stored line. A line that no
// longer resolves (renamed or dropped catalog field) degrades to its
// stored values instead of failing the whole read.
func (s *exportLineServiceImpl) resolveForRead(ctx context.Context, line *domain.ExportLine, export *domain.Export, lang string) *dto.ExportLineResponse {
	chain, err := s.sync.SyncFromSelectors(ctx, line, &export.Model, lang)
	if err != nil {
		s.logger.Warn("Export line no longer resolves against the catalog",
			zap.String("line_id", line.ID.String()),
			zap.String("name", line.Name),
			zap.Error(err),
		)
		return s.toLineResponse(line, nil)
	}
	return s.toLineResponse(line, chain)
}

// recordFailure classifies a synchronization error for metrics
func (s *exportLineServiceImpl) recordFailure(err error) {
	if s.metrics == nil {
		return
	}

	var appErr *response.AppError
	if !errors.As(err, &appErr) {
		return
	}
	switch appErr.Code {
	case response.ErrCodeDepthExceeded:
		s.metrics.IncrementResolutionFailure("depth_exceeded")
	case response.ErrCodeAlreadyExists:
		s.metrics.IncrementResolutionFailure("duplicate_name")
	case response.ErrCodeValidation:
		s.metrics.IncrementResolutionFailure("unknown_field")
	}
}

// findExport loads the owning export with its target model
func (s *exportLineServiceImpl) findExport(ctx context.Context, exportID uuid.UUID) (*domain.Export, error) {
	export, err := s.exportRepo.FindByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Export not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch export", err.Error())
	}
	return export, nil
}

// findLine loads a line and checks it belongs to the export
func (s *exportLineServiceImpl) findLine(ctx context.Context, exportID, lineID uuid.UUID) (*domain.ExportLine, error) {
	line, err := s.lineRepo.FindByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Export line not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch export line", err.Error())
	}
	if line.ExportID != exportID {
		return nil, response.NewNotFoundError("Export line not found", "")
	}
	return line, nil
}

// toLineResponse converts a line and its resolved chain to the response DTO
func (s *exportLineServiceImpl) toLineResponse(line *domain.ExportLine, chain *FieldChain) *dto.ExportLineResponse {
	resp := &dto.ExportLineResponse{
		LineID:    line.ID,
		ExportID:  line.ExportID,
		Sequence:  line.Sequence,
		Name:      line.Name,
		Label:     line.Label,
		Fields:    make([]*dto.FieldRef, domain.MaxPathDepth),
		Models:    make([]*dto.ModelRef, domain.MaxPathDepth),
		CreatedAt: line.CreatedAt,
		UpdatedAt: line.UpdatedAt,
	}
	if chain == nil {
		return resp
	}

	for i := 0; i < domain.MaxPathDepth; i++ {
		if field := chain.Fields[i]; field != nil {
			resp.Fields[i] = &dto.FieldRef{
				FieldID:        field.ID,
				Name:           field.Name,
				Relation:       string(field.Relation),
				RelationTarget: field.RelationTarget,
			}
		}
		if model := chain.Models[i]; model != nil {
			resp.Models[i] = &dto.ModelRef{
				ModelID: model.ID,
				Model:   model.Model,
				Label:   model.Label,
			}
		}
	}
	return resp
}
