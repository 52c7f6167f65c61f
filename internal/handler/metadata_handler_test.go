package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"export-manager-api/internal/dto"
	"export-manager-api/internal/response"
)

func TestMetadataHandler_RegisterModel(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		mockService    func(*MockMetadataService)
		expectedStatus int
	}{
		{
			name: "성공: 모델 등록",
			body: `{"model": "sale.order", "label": "Sales Order"}`,
			mockService: func(m *MockMetadataService) {
				m.RegisterModelFunc = func(ctx context.Context, req *dto.RegisterModelRequest) (*dto.ModelMetaResponse, error) {
					return &dto.ModelMetaResponse{
						ModelID: uuid.New(),
						Model:   req.Model,
						Label:   req.Label,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: label 누락",
			body:           `{"model": "sale.order"}`,
			mockService:    func(m *MockMetadataService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "실패: 중복 모델은 409",
			body: `{"model": "sale.order", "label": "Sales Order"}`,
			mockService: func(m *MockMetadataService) {
				m.RegisterModelFunc = func(ctx context.Context, req *dto.RegisterModelRequest) (*dto.ModelMetaResponse, error) {
					return nil, response.NewAlreadyExistsError("Model 'sale.order' is already registered", "")
				}
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockMetadataService{}
			tt.mockService(mockService)
			handler := NewMetadataHandler(mockService)

			router := setupTestRouter()
			router.POST("/models", handler.RegisterModel)

			req := httptest.NewRequest(http.MethodPost, "/models", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("RegisterModel() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestMetadataHandler_RegisterField(t *testing.T) {
	tests := []struct {
		name           string
		model          string
		body           string
		mockService    func(*MockMetadataService)
		expectedStatus int
	}{
		{
			name:  "성공: 관계 필드 등록",
			model: "sale.order",
			body:  `{"name": "partner_id", "description": "Customer", "relation": "to_one", "relationTarget": "res.partner"}`,
			mockService: func(m *MockMetadataService) {
				m.RegisterFieldFunc = func(ctx context.Context, modelName string, req *dto.RegisterFieldRequest) (*dto.FieldMetaResponse, error) {
					if modelName != "sale.order" {
						t.Errorf("Expected model 'sale.order', got '%s'", modelName)
					}
					return &dto.FieldMetaResponse{
						FieldID:        uuid.New(),
						Name:           req.Name,
						Relation:       req.Relation,
						RelationTarget: req.RelationTarget,
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "실패: 잘못된 relation 값",
			model:          "sale.order",
			body:           `{"name": "partner_id", "relation": "many_to_many"}`,
			mockService:    func(m *MockMetadataService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "실패: 등록되지 않은 모델은 404",
			model: "res.unknown",
			body:  `{"name": "partner_id"}`,
			mockService: func(m *MockMetadataService) {
				m.RegisterFieldFunc = func(ctx context.Context, modelName string, req *dto.RegisterFieldRequest) (*dto.FieldMetaResponse, error) {
					return nil, response.NewNotFoundError("Model 'res.unknown' is not registered", "")
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &MockMetadataService{}
			tt.mockService(mockService)
			handler := NewMetadataHandler(mockService)

			router := setupTestRouter()
			router.POST("/models/:model/fields", handler.RegisterField)

			req := httptest.NewRequest(http.MethodPost, "/models/"+tt.model+"/fields", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("RegisterField() status = %v, want %v", w.Code, tt.expectedStatus)
			}
		})
	}
}

func TestMetadataHandler_ListModels(t *testing.T) {
	t.Run("성공: 모델 목록 조회", func(t *testing.T) {
		mockService := &MockMetadataService{
			ListModelsFunc: func(ctx context.Context) ([]*dto.ModelMetaResponse, error) {
				return []*dto.ModelMetaResponse{
					{ModelID: uuid.New(), Model: "sale.order", Label: "Sales Order"},
					{ModelID: uuid.New(), Model: "res.partner", Label: "Contact"},
				}, nil
			},
		}
		handler := NewMetadataHandler(mockService)

		router := setupTestRouter()
		router.GET("/models", handler.ListModels)

		req := httptest.NewRequest(http.MethodGet, "/models", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ListModels() status = %v, want %v", w.Code, http.StatusOK)
		}

		var resp response.SuccessResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		dataBytes, _ := json.Marshal(resp.Data)
		var models []*dto.ModelMetaResponse
		if err := json.Unmarshal(dataBytes, &models); err != nil {
			t.Fatalf("Failed to unmarshal data: %v", err)
		}
		if len(models) != 2 {
			t.Errorf("Expected 2 models, got %d", len(models))
		}
	})
}

func TestMetadataHandler_ListFields(t *testing.T) {
	t.Run("성공: 필드 목록 조회", func(t *testing.T) {
		mockService := &MockMetadataService{
			ListFieldsFunc: func(ctx context.Context, modelName string) ([]*dto.FieldMetaResponse, error) {
				return []*dto.FieldMetaResponse{
					{FieldID: uuid.New(), Name: "partner_id", Relation: "to_one", RelationTarget: "res.partner"},
				}, nil
			},
		}
		handler := NewMetadataHandler(mockService)

		router := setupTestRouter()
		router.GET("/models/:model/fields", handler.ListFields)

		req := httptest.NewRequest(http.MethodGet, "/models/sale.order/fields", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ListFields() status = %v, want %v", w.Code, http.StatusOK)
		}
	})
}
