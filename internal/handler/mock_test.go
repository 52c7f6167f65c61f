package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"export-manager-api/internal/dto"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// MockMetadataService is a mock implementation of MetadataService
type MockMetadataService struct {
	RegisterModelFunc func(ctx context.Context, req *dto.RegisterModelRequest) (*dto.ModelMetaResponse, error)
	ListModelsFunc    func(ctx context.Context) ([]*dto.ModelMetaResponse, error)
	RegisterFieldFunc func(ctx context.Context, modelName string, req *dto.RegisterFieldRequest) (*dto.FieldMetaResponse, error)
	ListFieldsFunc    func(ctx context.Context, modelName string) ([]*dto.FieldMetaResponse, error)
}

func (m *MockMetadataService) RegisterModel(ctx context.Context, req *dto.RegisterModelRequest) (*dto.ModelMetaResponse, error) {
	if m.RegisterModelFunc != nil {
		return m.RegisterModelFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockMetadataService) ListModels(ctx context.Context) ([]*dto.ModelMetaResponse, error) {
	if m.ListModelsFunc != nil {
		return m.ListModelsFunc(ctx)
	}
	return nil, nil
}

func (m *MockMetadataService) RegisterField(ctx context.Context, modelName string, req *dto.RegisterFieldRequest) (*dto.FieldMetaResponse, error) {
	if m.RegisterFieldFunc != nil {
		return m.RegisterFieldFunc(ctx, modelName, req)
	}
	return nil, nil
}

func (m *MockMetadataService) ListFields(ctx context.Context, modelName string) ([]*dto.FieldMetaResponse, error) {
	if m.ListFieldsFunc != nil {
		return m.ListFieldsFunc(ctx, modelName)
	}
	return nil, nil
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	CreateExportFunc func(ctx context.Context, req *dto.CreateExportRequest) (*dto.ExportResponse, error)
	GetExportFunc    func(ctx context.Context, exportID uuid.UUID) (*dto.ExportResponse, error)
	ListExportsFunc  func(ctx context.Context) ([]*dto.ExportResponse, error)
	DeleteExportFunc func(ctx context.Context, exportID uuid.UUID) error
}

func (m *MockExportService) CreateExport(ctx context.Context, req *dto.CreateExportRequest) (*dto.ExportResponse, error) {
	if m.CreateExportFunc != nil {
		return m.CreateExportFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockExportService) GetExport(ctx context.Context, exportID uuid.UUID) (*dto.ExportResponse, error) {
	if m.GetExportFunc != nil {
		return m.GetExportFunc(ctx, exportID)
	}
	return nil, nil
}

func (m *MockExportService) ListExports(ctx context.Context) ([]*dto.ExportResponse, error) {
	if m.ListExportsFunc != nil {
		return m.ListExportsFunc(ctx)
	}
	return nil, nil
}

func (m *MockExportService) DeleteExport(ctx context.Context, exportID uuid.UUID) error {
	if m.DeleteExportFunc != nil {
		return m.DeleteExportFunc(ctx, exportID)
	}
	return nil
}

// MockExportLineService is a mock implementation of ExportLineService
type MockExportLineService struct {
	CreateLineFunc func(ctx context.Context, exportID uuid.UUID, req *dto.CreateExportLineRequest, lang string) (*dto.ExportLineResponse, error)
	GetLineFunc    func(ctx context.Context, exportID, lineID uuid.UUID, lang string) (*dto.ExportLineResponse, error)
	ListLinesFunc  func(ctx context.Context, exportID uuid.UUID, lang string) ([]*dto.ExportLineResponse, error)
	UpdateLineFunc func(ctx context.Context, exportID, lineID uuid.UUID, req *dto.UpdateExportLineRequest, lang string) (*dto.ExportLineResponse, error)
	DeleteLineFunc func(ctx context.Context, exportID, lineID uuid.UUID) error
}

func (m *MockExportLineService) CreateLine(ctx context.Context, exportID uuid.UUID, req *dto.CreateExportLineRequest, lang string) (*dto.ExportLineResponse, error) {
	if m.CreateLineFunc != nil {
		return m.CreateLineFunc(ctx, exportID, req, lang)
	}
	return nil, nil
}

func (m *MockExportLineService) GetLine(ctx context.Context, exportID, lineID uuid.UUID, lang string) (*dto.ExportLineResponse, error) {
	if m.GetLineFunc != nil {
		return m.GetLineFunc(ctx, exportID, lineID, lang)
	}
	return nil, nil
}

func (m *MockExportLineService) ListLines(ctx context.Context, exportID uuid.UUID, lang string) ([]*dto.ExportLineResponse, error) {
	if m.ListLinesFunc != nil {
		return m.ListLinesFunc(ctx, exportID, lang)
	}
	return nil, nil
}

func (m *MockExportLineService) UpdateLine(ctx context.Context, exportID, lineID uuid.UUID, req *dto.UpdateExportLineRequest, lang string) (*dto.ExportLineResponse, error) {
	if m.UpdateLineFunc != nil {
		return m.UpdateLineFunc(ctx, exportID, lineID, req, lang)
	}
	return nil, nil
}

func (m *MockExportLineService) DeleteLine(ctx context.Context, exportID, lineID uuid.UUID) error {
	if m.DeleteLineFunc != nil {
		return m.DeleteLineFunc(ctx, exportID, lineID)
	}
	return nil
}

// MockTemplateService is a mock implementation of TemplateService
type MockTemplateService struct {
	GenerateTemplateFunc func(ctx context.Context, exportID uuid.UUID, lang string) (*dto.TemplateResponse, error)
}

func (m *MockTemplateService) GenerateTemplate(ctx context.Context, exportID uuid.UUID, lang string) (*dto.TemplateResponse, error) {
	if m.GenerateTemplateFunc != nil {
		return m.GenerateTemplateFunc(ctx, exportID, lang)
	}
	return nil, nil
}
