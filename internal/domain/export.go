package domain

import (
	"github.com/google/uuid"
)

// Export is a saved configuration of which fields to include when
// exporting records of a given model
type Export struct {
	BaseModel
	Name     string       `gorm:"type:varchar(255);not null" json:"name"`
	Resource string       `gorm:"type:varchar(255);not null;index:idx_exports_resource" json:"resource"`
	ModelID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_exports_model_id" json:"model_id"`
	Model    ModelMeta    `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"model,omitempty"`
	Lines    []ExportLine `gorm:"foreignKey:ExportID;constraint:OnDelete:CASCADE" json:"lines,omitempty"`
}

// TableName specifies the table name for Export
func (Export) TableName() string {
	return "exports"
}
