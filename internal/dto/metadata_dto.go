package dto

import (
	"time"

	"github.com/google/uuid"
)

// RegisterModelRequest represents the request to register a model in the catalog
type RegisterModelRequest struct {
	Model string `json:"model" binding:"required,max=255"`
	Label string `json:"label" binding:"required,max=255"`
}

// ModelMetaResponse represents a model catalog entry
type ModelMetaResponse struct {
	ModelID   uuid.UUID `json:"modelId"`
	Model     string    `json:"model"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RegisterFieldRequest represents the request to register a field on a model
type RegisterFieldRequest struct {
	Name           string            `json:"name" binding:"required,max=255"`
	Description    string            `json:"description" binding:"max=255"`
	Translations   map[string]string `json:"translations"`
	Relation       string            `json:"relation" binding:"omitempty,oneof=none to_one to_many"`
	RelationTarget string            `json:"relationTarget" binding:"omitempty,max=255"`
}

// FieldMetaResponse represents a field catalog entry
type FieldMetaResponse struct {
	FieldID        uuid.UUID         `json:"fieldId"`
	ModelID        uuid.UUID         `json:"modelId"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Translations   map[string]string `json:"translations,omitempty"`
	Relation       string            `json:"relation"`
	RelationTarget string            `json:"relationTarget,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
	UpdatedAt      time.Time         `json:"updatedAt"`
}
