package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
)

// ExportRepository defines the interface for export definition data access
type ExportRepository interface {
	Create(ctx context.Context, export *domain.Export) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Export, error)
	FindByIDWithLines(ctx context.Context, id uuid.UUID) (*domain.Export, error)
	List(ctx context.Context) ([]*domain.Export, error)
	Update(ctx context.Context, export *domain.Export) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// exportRepositoryImpl is the GORM implementation of ExportRepository
type exportRepositoryImpl struct {
	db *gorm.DB
}

// NewExportRepository creates a new instance of ExportRepository
func NewExportRepository(db *gorm.DB) ExportRepository {
	return &exportRepositoryImpl{db: db}
}

// Create creates a new export definition
func (r *exportRepositoryImpl) Create(ctx context.Context, export *domain.Export) error {
	if err := r.db.WithContext(ctx).Create(export).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an export by ID with its target model preloaded
func (r *exportRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
	var export domain.Export
	if err := r.db.WithContext(ctx).
		Preload("Model").
		Where("id = ?", id).
		First(&export).Error; err != nil {
		return nil, err
	}
	return &export, nil
}

// FindByIDWithLines finds an export by ID with lines preloaded in
// sequence order
func (r *exportRepositoryImpl) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
	var export domain.Export
	if err := r.db.WithContext(ctx).
		Preload("Model").
		Preload("Lines", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC, id ASC")
		}).
		Where("id = ?", id).
		First(&export).Error; err != nil {
		return nil, err
	}
	return &export, nil
}

// List lists all export definitions ordered by name
func (r *exportRepositoryImpl) List(ctx context.Context) ([]*domain.Export, error) {
	var exports []*domain.Export
	if err := r.db.WithContext(ctx).
		Preload("Model").
		Order("name ASC").
		Find(&exports).Error; err != nil {
		return nil, err
	}
	return exports, nil
}

// Update updates an export definition
func (r *exportRepositoryImpl) Update(ctx context.Context, export *domain.Export) error {
	if err := r.db.WithContext(ctx).Save(export).Error; err != nil {
		return err
	}
	return nil
}

// Delete soft deletes an export definition and its lines
func (r *exportRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("export_id = ?", id).Delete(&domain.ExportLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Export{}, id).Error
	})
}

// Count returns the total number of export definitions
func (r *exportRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Export{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
