package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
)

// MockMetadataRepository is a mock implementation of MetadataRepository
type MockMetadataRepository struct {
	CreateModelFunc             func(ctx context.Context, model *domain.ModelMeta) error
	FindModelByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error)
	FindModelByNameFunc         func(ctx context.Context, model string) (*domain.ModelMeta, error)
	ListModelsFunc              func(ctx context.Context) ([]*domain.ModelMeta, error)
	CreateFieldFunc             func(ctx context.Context, field *domain.FieldMeta) error
	FindFieldByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.FieldMeta, error)
	FindFieldByModelAndNameFunc func(ctx context.Context, modelID uuid.UUID, name string) (*domain.FieldMeta, error)
	FindFieldsByIDsFunc         func(ctx context.Context, ids []uuid.UUID) ([]*domain.FieldMeta, error)
	ListFieldsByModelFunc       func(ctx context.Context, modelID uuid.UUID) ([]*domain.FieldMeta, error)
}

func (m *MockMetadataRepository) CreateModel(ctx context.Context, model *domain.ModelMeta) error {
	if m.CreateModelFunc != nil {
		return m.CreateModelFunc(ctx, model)
	}
	return nil
}

func (m *MockMetadataRepository) FindModelByID(ctx context.Context, id uuid.UUID) (*domain.ModelMeta, error) {
	if m.FindModelByIDFunc != nil {
		return m.FindModelByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMetadataRepository) FindModelByName(ctx context.Context, model string) (*domain.ModelMeta, error) {
	if m.FindModelByNameFunc != nil {
		return m.FindModelByNameFunc(ctx, model)
	}
	return nil, nil
}

func (m *MockMetadataRepository) ListModels(ctx context.Context) ([]*domain.ModelMeta, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, nil
}

func (m *MockMetadataRepository) CreateField(ctx context.Context, field *domain.FieldMeta) error {
	if m.CreateFieldFunc != nil {
		return m.CreateFieldFunc(ctx, field)
	}
	return nil
}

func (m *MockMetadataRepository) FindFieldByID(ctx context.Context, id uuid.UUID) (*domain.FieldMeta, error) {
	if m.FindFieldByIDFunc != nil {
		return m.FindFieldByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMetadataRepository) FindFieldByModelAndName(ctx context.Context, modelID uuid.UUID, name string) (*domain.FieldMeta, error) {
	if m.FindFieldByModelAndNameFunc != nil {
		return m.FindFieldByModelAndNameFunc(ctx, modelID, name)
	}
	return nil, nil
}

func (m *MockMetadataRepository) FindFieldsByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.FieldMeta, error) {
	if m.FindFieldsByIDsFunc != nil {
		return m.FindFieldsByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockMetadataRepository) ListFieldsByModel(ctx context.Context, modelID uuid.UUID) ([]*domain.FieldMeta, error) {
	if m.ListFieldsByModelFunc != nil {
		return m.ListFieldsByModelFunc(ctx, modelID)
	}
	return nil, nil
}

// MockExportRepository is a mock implementation of ExportRepository
type MockExportRepository struct {
	CreateFunc            func(ctx context.Context, export *domain.Export) error
	FindByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Export, error)
	FindByIDWithLinesFunc func(ctx context.Context, id uuid.UUID) (*domain.Export, error)
	ListFunc              func(ctx context.Context) ([]*domain.Export, error)
	UpdateFunc            func(ctx context.Context, export *domain.Export) error
	DeleteFunc            func(ctx context.Context, id uuid.UUID) error
	CountFunc             func(ctx context.Context) (int64, error)
}

func (m *MockExportRepository) Create(ctx context.Context, export *domain.Export) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, export)
	}
	return nil
}

func (m *MockExportRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockExportRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
	if m.FindByIDWithLinesFunc != nil {
		return m.FindByIDWithLinesFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockExportRepository) List(ctx context.Context) ([]*domain.Export, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockExportRepository) Update(ctx context.Context, export *domain.Export) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, export)
	}
	return nil
}

func (m *MockExportRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockExportRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockExportLineRepository is a mock implementation of ExportLineRepository
type MockExportLineRepository struct {
	CreateFunc               func(ctx context.Context, line *domain.ExportLine) error
	FindByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.ExportLine, error)
	FindByExportFunc         func(ctx context.Context, exportID uuid.UUID) ([]*domain.ExportLine, error)
	FindAllFunc              func(ctx context.Context) ([]*domain.ExportLine, error)
	CountByExportAndNameFunc func(ctx context.Context, exportID uuid.UUID, name string, excludeID uuid.UUID) (int64, error)
	UpdateFunc               func(ctx context.Context, line *domain.ExportLine) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	CountFunc                func(ctx context.Context) (int64, error)
}

func (m *MockExportLineRepository) Create(ctx context.Context, line *domain.ExportLine) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, line)
	}
	return nil
}

func (m *MockExportLineRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.ExportLine, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockExportLineRepository) FindByExport(ctx context.Context, exportID uuid.UUID) ([]*domain.ExportLine, error) {
	if m.FindByExportFunc != nil {
		return m.FindByExportFunc(ctx, exportID)
	}
	return nil, nil
}

func (m *MockExportLineRepository) FindAll(ctx context.Context) ([]*domain.ExportLine, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockExportLineRepository) CountByExportAndName(ctx context.Context, exportID uuid.UUID, name string, excludeID uuid.UUID) (int64, error) {
	if m.CountByExportAndNameFunc != nil {
		return m.CountByExportAndNameFunc(ctx, exportID, name, excludeID)
	}
	return 0, nil
}

func (m *MockExportLineRepository) Update(ctx context.Context, line *domain.ExportLine) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, line)
	}
	return nil
}

func (m *MockExportLineRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockExportLineRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// memoryCatalog is an in-memory MetadataCatalog for synchronizer tests
type memoryCatalog struct {
	models map[string]*domain.ModelMeta
	fields map[uuid.UUID]map[string]*domain.FieldMeta // model ID -> field name -> field
}

func newMemoryCatalog() *memoryCatalog {
	return &memoryCatalog{
		models: make(map[string]*domain.ModelMeta),
		fields: make(map[uuid.UUID]map[string]*domain.FieldMeta),
	}
}

func (c *memoryCatalog) addModel(name, label string) *domain.ModelMeta {
	model := &domain.ModelMeta{Model: name, Label: label}
	model.ID = uuid.New()
	c.models[name] = model
	c.fields[model.ID] = make(map[string]*domain.FieldMeta)
	return model
}

func (c *memoryCatalog) addField(model *domain.ModelMeta, field *domain.FieldMeta) *domain.FieldMeta {
	field.ID = uuid.New()
	field.ModelID = model.ID
	c.fields[model.ID][field.Name] = field
	return field
}

func (c *memoryCatalog) FindModelByName(ctx context.Context, modelName string) (*domain.ModelMeta, error) {
	return c.models[modelName], nil
}

func (c *memoryCatalog) FindFieldByID(ctx context.Context, id uuid.UUID) (*domain.FieldMeta, error) {
	for _, byName := range c.fields {
		for _, f := range byName {
			if f.ID == id {
				return f, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (c *memoryCatalog) FindFieldByModelAndName(ctx context.Context, modelID uuid.UUID, name string) (*domain.FieldMeta, error) {
	byName, ok := c.fields[modelID]
	if !ok {
		return nil, nil
	}
	return byName[name], nil
}
