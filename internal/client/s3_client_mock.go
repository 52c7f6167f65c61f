package client

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockS3Client implements S3ClientInterface for testing without AWS credentials
type MockS3Client struct {
	Bucket   string
	Region   string
	Endpoint string

	// Optional function overrides for custom test behavior
	GenerateTemplateKeyFunc func(exportID string) string
	UploadFileFunc          func(ctx context.Context, key string, file io.Reader, contentType string) (string, error)
	GenerateDownloadURLFunc func(ctx context.Context, key string, expires time.Duration) (string, error)
	DeleteFileFunc          func(ctx context.Context, key string) error
	GetFileURLFunc          func(key string) string
}

// NewMockS3Client creates a new mock S3 client for testing
func NewMockS3Client() *MockS3Client {
	return &MockS3Client{
		Bucket:   "test-bucket",
		Region:   "ap-northeast-2",
		Endpoint: "",
	}
}

// GenerateTemplateKey generates a unique template key
func (m *MockS3Client) GenerateTemplateKey(exportID string) string {
	if m.GenerateTemplateKeyFunc != nil {
		return m.GenerateTemplateKeyFunc(exportID)
	}

	now := time.Now()
	return fmt.Sprintf("export/templates/%s/%d/%02d/%s_%d.csv",
		exportID, now.Year(), now.Month(), uuid.New().String(), now.Unix())
}

// UploadFile simulates file upload
func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	if m.UploadFileFunc != nil {
		return m.UploadFileFunc(ctx, key, file, contentType)
	}
	return m.GetFileURL(key), nil
}

// GenerateDownloadURL generates a mock presigned URL for testing
func (m *MockS3Client) GenerateDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	if m.GenerateDownloadURLFunc != nil {
		return m.GenerateDownloadURLFunc(ctx, key, expires)
	}

	now := time.Now().UTC().Format("20060102T150405Z")
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Date=%s&X-Amz-Expires=%d&X-Amz-SignedHeaders=host&X-Amz-Signature=mocksignature123",
		m.Bucket, m.Region, key, now, int(expires.Seconds())), nil
}

// DeleteFile simulates file deletion
func (m *MockS3Client) DeleteFile(ctx context.Context, key string) error {
	if m.DeleteFileFunc != nil {
		return m.DeleteFileFunc(ctx, key)
	}
	return nil
}

// GetFileURL returns the public URL for a file
func (m *MockS3Client) GetFileURL(key string) string {
	if m.GetFileURLFunc != nil {
		return m.GetFileURLFunc(key)
	}

	if m.Endpoint != "" && !strings.Contains(m.Endpoint, "amazonaws.com") {
		return fmt.Sprintf("%s/%s/%s", m.Endpoint, m.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", m.Bucket, m.Region, key)
}

// Ensure MockS3Client implements S3ClientInterface
var _ S3ClientInterface = (*MockS3Client)(nil)
