package domain

import (
	"github.com/google/uuid"
)

// MaxPathDepth is the maximum number of relation traversals one export
// line may select
const MaxPathDepth = 4

// ExportLine is one field-selector row within an export, corresponding
// to one dotted path like "partner_id/country_id/code"
type ExportLine struct {
	BaseModel
	ExportID uuid.UUID  `gorm:"type:uuid;not null;index:idx_export_lines_export_id" json:"export_id"`
	Sequence int        `gorm:"type:int;not null;default:0;index:idx_export_lines_sequence" json:"sequence"`
	Name     string     `gorm:"type:varchar(255);not null" json:"name"`
	Label    string     `gorm:"type:varchar(512)" json:"label"`
	Field1ID *uuid.UUID `gorm:"type:uuid" json:"field1_id"`
	Field2ID *uuid.UUID `gorm:"type:uuid" json:"field2_id"`
	Field3ID *uuid.UUID `gorm:"type:uuid" json:"field3_id"`
	Field4ID *uuid.UUID `gorm:"type:uuid" json:"field4_id"`
	Export   Export     `gorm:"foreignKey:ExportID;constraint:OnDelete:CASCADE" json:"export,omitempty"`
	Field1   *FieldMeta `gorm:"foreignKey:Field1ID" json:"field1,omitempty"`
	Field2   *FieldMeta `gorm:"foreignKey:Field2ID" json:"field2,omitempty"`
	Field3   *FieldMeta `gorm:"foreignKey:Field3ID" json:"field3,omitempty"`
	Field4   *FieldMeta `gorm:"foreignKey:Field4ID" json:"field4,omitempty"`
}

// FieldIDAt returns the selector at the given 1-based level
func (l *ExportLine) FieldIDAt(n int) *uuid.UUID {
	switch n {
	case 1:
		return l.Field1ID
	case 2:
		return l.Field2ID
	case 3:
		return l.Field3ID
	case 4:
		return l.Field4ID
	default:
		return nil
	}
}

// SetFieldIDAt assigns the selector at the given 1-based level
func (l *ExportLine) SetFieldIDAt(n int, id *uuid.UUID) {
	switch n {
	case 1:
		l.Field1ID = id
	case 2:
		l.Field2ID = id
	case 3:
		l.Field3ID = id
	case 4:
		l.Field4ID = id
	}
}

// TableName specifies the table name for ExportLine
func (ExportLine) TableName() string {
	return "export_lines"
}
