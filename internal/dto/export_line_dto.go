package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateExportLineRequest represents the request to create an export line.
// Either the four field selectors or a raw dotted path name may be given;
// when name is present the selectors are derived from it.
type CreateExportLineRequest struct {
	Sequence int        `json:"sequence"`
	Name     *string    `json:"name" binding:"omitempty,max=255"`
	Field1ID *uuid.UUID `json:"field1Id"`
	Field2ID *uuid.UUID `json:"field2Id"`
	Field3ID *uuid.UUID `json:"field3Id"`
	Field4ID *uuid.UUID `json:"field4Id"`
}

// UpdateExportLineRequest represents the request to update an export line
type UpdateExportLineRequest struct {
	Sequence *int       `json:"sequence"`
	Name     *string    `json:"name" binding:"omitempty,max=255"`
	Field1ID *uuid.UUID `json:"field1Id"`
	Field2ID *uuid.UUID `json:"field2Id"`
	Field3ID *uuid.UUID `json:"field3Id"`
	Field4ID *uuid.UUID `json:"field4Id"`
}

// FieldRef is a shallow reference to a field catalog entry
type FieldRef struct {
	FieldID        uuid.UUID `json:"fieldId"`
	Name           string    `json:"name"`
	Relation       string    `json:"relation"`
	RelationTarget string    `json:"relationTarget,omitempty"`
}

// ExportLineResponse represents an export line with its resolved chain.
// Models carries the model each picker level resolves against; a nil
// entry means that level offers no fields.
type ExportLineResponse struct {
	LineID    uuid.UUID   `json:"lineId"`
	ExportID  uuid.UUID   `json:"exportId"`
	Sequence  int         `json:"sequence"`
	Name      string      `json:"name"`
	Label     string      `json:"label,omitempty"`
	Fields    []*FieldRef `json:"fields"`
	Models    []*ModelRef `json:"models"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
