package domain

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RelationKind classifies how a field relates to another model
type RelationKind string

// RelationKind constants
const (
	RelationNone   RelationKind = "none"
	RelationToOne  RelationKind = "to_one"
	RelationToMany RelationKind = "to_many"
)

// ModelMeta is a catalog entry describing an exportable model
type ModelMeta struct {
	BaseModel
	Model string `gorm:"type:varchar(255);not null;uniqueIndex:uq_model_meta_model" json:"model"`
	Label string `gorm:"type:varchar(255);not null" json:"label"`
}

// FieldMeta is a catalog entry describing one field of a model
type FieldMeta struct {
	BaseModel
	ModelID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_field_meta_model_id;uniqueIndex:uq_field_meta_model_name,priority:1" json:"model_id"`
	Name           string            `gorm:"type:varchar(255);not null;uniqueIndex:uq_field_meta_model_name,priority:2" json:"name"`
	Description    string            `gorm:"type:varchar(255)" json:"description"`
	Translations   datatypes.JSONMap `gorm:"type:jsonb" json:"translations"` // lang code -> translated description
	Relation       RelationKind      `gorm:"type:varchar(20);not null;default:'none'" json:"relation"`
	RelationTarget string            `gorm:"type:varchar(255)" json:"relation_target"` // technical model name when relational
	ModelMeta      ModelMeta         `gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE" json:"model_meta,omitempty"`
}

// Relational returns true when the field references another model's records
func (f *FieldMeta) Relational() bool {
	return f.Relation == RelationToOne || f.Relation == RelationToMany
}

// DescriptionIn returns the field description for the given language,
// falling back to the default description. Empty string means the field
// has no human-readable description at all.
func (f *FieldMeta) DescriptionIn(lang string) string {
	if lang != "" && f.Translations != nil {
		if v, ok := f.Translations[lang]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return f.Description
}

// TableName specifies the table name for ModelMeta
func (ModelMeta) TableName() string {
	return "model_meta"
}

// TableName specifies the table name for FieldMeta
func (FieldMeta) TableName() string {
	return "field_meta"
}
