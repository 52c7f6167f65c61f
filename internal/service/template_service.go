package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"export-manager-api/internal/client"
	"export-manager-api/internal/dto"
	"export-manager-api/internal/metrics"
	"export-manager-api/internal/repository"
	"export-manager-api/internal/response"
)

// downloadURLExpiry is how long a generated template link stays valid
const downloadURLExpiry = 5 * time.Minute

// TemplateService renders an export definition into a CSV header template
// (one column per line, labelled) and stores it in S3
type TemplateService interface {
	GenerateTemplate(ctx context.Context, exportID uuid.UUID, lang string) (*dto.TemplateResponse, error)
}

// templateServiceImpl is the implementation of TemplateService
type templateServiceImpl struct {
	exportRepo repository.ExportRepository
	lineRepo   repository.ExportLineRepository
	sync       PathSynchronizer
	s3Client   client.S3ClientInterface
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewTemplateService creates a new instance of TemplateService
func NewTemplateService(
	exportRepo repository.ExportRepository,
	lineRepo repository.ExportLineRepository,
	sync PathSynchronizer,
	s3Client client.S3ClientInterface,
	m *metrics.Metrics,
	logger *zap.Logger,
) TemplateService {
	return &templateServiceImpl{
		exportRepo: exportRepo,
		lineRepo:   lineRepo,
		sync:       sync,
		s3Client:   s3Client,
		metrics:    m,
		logger:     logger,
	}
}

// GenerateTemplate renders the header row from the export's line labels,
// uploads it and returns a presigned download URL. Every line must still
// resolve against the live catalog; stale lines abort the render.
func (s *templateServiceImpl) GenerateTemplate(ctx context.Context, exportID uuid.UUID, lang string) (*dto.TemplateResponse, error) {
	if s.s3Client == nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Template storage is not configured", "")
	}

	export, err := s.exportRepo.FindByID(ctx, exportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Export not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch export", err.Error())
	}

	lines, err := s.lineRepo.FindByExport(ctx, exportID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list export lines", err.Error())
	}
	if len(lines) == 0 {
		return nil, response.NewValidationError("Export has no lines to render", "")
	}

	header := make([]string, 0, len(lines))
	for _, line := range lines {
		chain, err := s.sync.SyncFromSelectors(ctx, line, &export.Model, lang)
		if err != nil {
			return nil, err
		}
		label, err := s.sync.DeriveLabel(ctx, chain, line.Name, lang)
		if err != nil {
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to derive line label", err.Error())
		}
		if label == "" {
			return nil, response.NewValidationError(
				fmt.Sprintf("Field '%s' does not exist", line.Name), "")
		}
		header = append(header, label)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to render template", err.Error())
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to render template", err.Error())
	}

	key := s.s3Client.GenerateTemplateKey(exportID.String())

	start := time.Now()
	_, err = s.s3Client.UploadFile(ctx, key, &buf, "text/csv")
	if s.metrics != nil {
		s.metrics.RecordS3Operation("put_object", time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to upload template", err.Error())
	}

	start = time.Now()
	downloadURL, err := s.s3Client.GenerateDownloadURL(ctx, key, downloadURLExpiry)
	if s.metrics != nil {
		s.metrics.RecordS3Operation("presign_get_object", time.Since(start), err)
	}
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to generate download URL", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementTemplateGenerated()
	}

	s.logger.Info("Export template generated",
		zap.String("export_id", exportID.String()),
		zap.String("file_key", key),
		zap.Int("columns", len(header)),
	)

	return &dto.TemplateResponse{
		FileKey:     key,
		DownloadURL: downloadURL,
		ExpiresIn:   int(downloadURLExpiry.Seconds()),
	}, nil
}
