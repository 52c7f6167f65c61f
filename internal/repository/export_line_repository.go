package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
)

// ExportLineRepository defines the interface for export line data access
type ExportLineRepository interface {
	Create(ctx context.Context, line *domain.ExportLine) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.ExportLine, error)
	FindByExport(ctx context.Context, exportID uuid.UUID) ([]*domain.ExportLine, error)
	FindAll(ctx context.Context) ([]*domain.ExportLine, error)
	CountByExportAndName(ctx context.Context, exportID uuid.UUID, name string, excludeID uuid.UUID) (int64, error)
	Update(ctx context.Context, line *domain.ExportLine) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// exportLineRepositoryImpl is the GORM implementation of ExportLineRepository
type exportLineRepositoryImpl struct {
	db *gorm.DB
}

// NewExportLineRepository creates a new instance of ExportLineRepository
func NewExportLineRepository(db *gorm.DB) ExportLineRepository {
	return &exportLineRepositoryImpl{db: db}
}

// Create creates a new export line
func (r *exportLineRepositoryImpl) Create(ctx context.Context, line *domain.ExportLine) error {
	if err := r.db.WithContext(ctx).Create(line).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an export line by ID with its field selectors preloaded
func (r *exportLineRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.ExportLine, error) {
	var line domain.ExportLine
	if err := r.db.WithContext(ctx).
		Preload("Field1").
		Preload("Field2").
		Preload("Field3").
		Preload("Field4").
		Where("id = ?", id).
		First(&line).Error; err != nil {
		return nil, err
	}
	return &line, nil
}

// FindByExport finds all lines of an export in sequence order
func (r *exportLineRepositoryImpl) FindByExport(ctx context.Context, exportID uuid.UUID) ([]*domain.ExportLine, error) {
	var lines []*domain.ExportLine
	if err := r.db.WithContext(ctx).
		Where("export_id = ?", exportID).
		Order("sequence ASC, id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// FindAll returns every stored export line (used by the revalidation job)
func (r *exportLineRepositoryImpl) FindAll(ctx context.Context) ([]*domain.ExportLine, error) {
	var lines []*domain.ExportLine
	if err := r.db.WithContext(ctx).
		Order("export_id ASC, sequence ASC, id ASC").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// CountByExportAndName counts sibling lines of an export storing the same
// dotted path, excluding the given line ID (uuid.Nil to exclude nothing)
func (r *exportLineRepositoryImpl) CountByExportAndName(ctx context.Context, exportID uuid.UUID, name string, excludeID uuid.UUID) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).
		Model(&domain.ExportLine{}).
		Where("export_id = ? AND name = ?", exportID, name)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Update updates an export line
func (r *exportLineRepositoryImpl) Update(ctx context.Context, line *domain.ExportLine) error {
	if err := r.db.WithContext(ctx).Save(line).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes an export line
func (r *exportLineRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.ExportLine{}, id).Error; err != nil {
		return err
	}
	return nil
}

// Count returns the total number of export lines
func (r *exportLineRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.ExportLine{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
