package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateExportRequest represents the request to create an export definition
type CreateExportRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Resource string `json:"resource" binding:"required,max=255"`
}

// ExportResponse represents an export definition
type ExportResponse struct {
	ExportID  uuid.UUID             `json:"exportId"`
	Name      string                `json:"name"`
	Resource  string                `json:"resource"`
	Model     *ModelRef             `json:"model,omitempty"`
	Lines     []*ExportLineResponse `json:"lines,omitempty"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

// ModelRef is a shallow reference to a model catalog entry, used by the
// field picker UI to scope each level's selectable fields
type ModelRef struct {
	ModelID uuid.UUID `json:"modelId"`
	Model   string    `json:"model"`
	Label   string    `json:"label"`
}

// TemplateResponse represents a generated export template file
type TemplateResponse struct {
	FileKey     string `json:"fileKey"`
	DownloadURL string `json:"downloadUrl"`
	ExpiresIn   int    `json:"expiresIn"` // seconds
}
