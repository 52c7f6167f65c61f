package job

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"export-manager-api/internal/domain"
	"export-manager-api/internal/service"
)

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
	return nil, gorm.ErrRecordNotFound
}

func (m *MockExportRepository) FindByIDWithLines(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
	if m.FindByIDWithLinesFunc != nil {
		return m.FindByIDWithLinesFunc(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
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
	return nil, gorm.ErrRecordNotFound
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

// MockPathSynchronizer is a mock implementation of PathSynchronizer
type MockPathSynchronizer struct {
	SyncFromSelectorsFunc func(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error)
	SyncFromNameFunc      func(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error)
	DeriveLabelFunc       func(ctx context.Context, chain *service.FieldChain, name, lang string) (string, error)
}

func (m *MockPathSynchronizer) SyncFromSelectors(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error) {
	if m.SyncFromSelectorsFunc != nil {
		return m.SyncFromSelectorsFunc(ctx, line, root, lang)
	}
	return &service.FieldChain{}, nil
}

func (m *MockPathSynchronizer) SyncFromName(ctx context.Context, line *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error) {
	if m.SyncFromNameFunc != nil {
		return m.SyncFromNameFunc(ctx, line, root, lang)
	}
	return &service.FieldChain{}, nil
}

func (m *MockPathSynchronizer) DeriveLabel(ctx context.Context, chain *service.FieldChain, name, lang string) (string, error) {
	if m.DeriveLabelFunc != nil {
		return m.DeriveLabelFunc(ctx, chain, name, lang)
	}
	return "", nil
}

func newTestExport(name string) *domain.Export {
	export := &domain.Export{Name: name, Resource: "sale.order"}
	export.ID = uuid.New()
	export.Model = domain.ModelMeta{Model: "sale.order", Label: "Sales Order"}
	export.Model.ID = uuid.New()
	return export
}

func TestRevalidateJob_Run(t *testing.T) {
	t.Run("성공: 레이블 변경 라인 재기록", func(t *testing.T) {
		export := newTestExport("Order export")

		line := &domain.ExportLine{
			ExportID: export.ID,
			Name:     "partner_id",
			Label:    "Customer (partner_id)",
		}
		line.ID = uuid.New()

		lineRepo := &MockExportLineRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.ExportLine, error) {
				return []*domain.ExportLine{line}, nil
			},
		}
		exportRepo := &MockExportRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
				return export, nil
			},
		}
		sync := &MockPathSynchronizer{
			SyncFromNameFunc: func(ctx context.Context, l *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error) {
				// 카탈로그 설명이 바뀌어 label이 달라진 상황
				l.Label = "Buyer (partner_id)"
				return &service.FieldChain{}, nil
			},
		}

		var updated *domain.ExportLine
		lineRepo.UpdateFunc = func(ctx context.Context, l *domain.ExportLine) error {
			updated = l
			return nil
		}

		job := NewRevalidateJob(exportRepo, lineRepo, sync, nil, zap.NewNop())
		job.Run()

		if assert.NotNil(t, updated, "Expected the drifted line to be rewritten") {
			assert.Equal(t, "Buyer (partner_id)", updated.Label)
		}
	})

	t.Run("성공: 해석 불가 라인은 업데이트 없이 건너뜀", func(t *testing.T) {
		export := newTestExport("Order export")

		line := &domain.ExportLine{ExportID: export.ID, Name: "ghost_field", Label: "Ghost (ghost_field)"}
		line.ID = uuid.New()

		lineRepo := &MockExportLineRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.ExportLine, error) {
				return []*domain.ExportLine{line}, nil
			},
			UpdateFunc: func(ctx context.Context, l *domain.ExportLine) error {
				t.Error("Unresolvable lines must not be updated")
				return nil
			},
		}
		exportRepo := &MockExportRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
				return export, nil
			},
		}
		sync := &MockPathSynchronizer{
			SyncFromNameFunc: func(ctx context.Context, l *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		job := NewRevalidateJob(exportRepo, lineRepo, sync, nil, zap.NewNop())
		job.Run()
	})

	t.Run("성공: 빈 이름 라인은 검사하지 않음", func(t *testing.T) {
		export := newTestExport("Order export")

		empty := &domain.ExportLine{ExportID: export.ID}
		empty.ID = uuid.New()

		syncCalled := false
		lineRepo := &MockExportLineRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.ExportLine, error) {
				return []*domain.ExportLine{empty}, nil
			},
		}
		sync := &MockPathSynchronizer{
			SyncFromNameFunc: func(ctx context.Context, l *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error) {
				syncCalled = true
				return &service.FieldChain{}, nil
			},
		}

		job := NewRevalidateJob(&MockExportRepository{}, lineRepo, sync, nil, zap.NewNop())
		job.Run()

		assert.False(t, syncCalled, "Empty lines must not be revalidated")
	})

	t.Run("성공: export 루트 모델은 한 번만 조회", func(t *testing.T) {
		export := newTestExport("Order export")

		a := &domain.ExportLine{ExportID: export.ID, Name: "partner_id", Label: "Customer (partner_id)"}
		a.ID = uuid.New()
		b := &domain.ExportLine{ExportID: export.ID, Name: "name", Label: "Order Reference (name)"}
		b.ID = uuid.New()

		findCount := 0
		exportRepo := &MockExportRepository{
			FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Export, error) {
				findCount++
				return export, nil
			},
		}
		lineRepo := &MockExportLineRepository{
			FindAllFunc: func(ctx context.Context) ([]*domain.ExportLine, error) {
				return []*domain.ExportLine{a, b}, nil
			},
		}
		sync := &MockPathSynchronizer{
			SyncFromNameFunc: func(ctx context.Context, l *domain.ExportLine, root *domain.ModelMeta, lang string) (*service.FieldChain, error) {
				return &service.FieldChain{}, nil
			},
		}

		job := NewRevalidateJob(exportRepo, lineRepo, sync, nil, zap.NewNop())
		job.Run()

		assert.Equal(t, 1, findCount, "Root model should be cached per export")
	})
}
