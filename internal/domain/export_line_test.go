package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestExportLine_FieldIDAt(t *testing.T) {
	first := uuid.New()
	third := uuid.New()

	line := &ExportLine{Field1ID: &first, Field3ID: &third}

	assert.Equal(t, &first, line.FieldIDAt(1))
	assert.Nil(t, line.FieldIDAt(2))
	assert.Equal(t, &third, line.FieldIDAt(3))
	assert.Nil(t, line.FieldIDAt(4))

	// 범위 밖 레벨은 nil
	assert.Nil(t, line.FieldIDAt(0))
	assert.Nil(t, line.FieldIDAt(5))
}

func TestExportLine_SetFieldIDAt(t *testing.T) {
	line := &ExportLine{}

	id := uuid.New()
	for level := 1; level <= MaxPathDepth; level++ {
		line.SetFieldIDAt(level, &id)
		assert.Equal(t, &id, line.FieldIDAt(level))
	}

	line.SetFieldIDAt(2, nil)
	assert.Nil(t, line.Field2ID)

	// 범위 밖 레벨은 무시
	line.SetFieldIDAt(0, &id)
	line.SetFieldIDAt(5, &id)
}

func TestFieldMeta_Relational(t *testing.T) {
	tests := []struct {
		relation RelationKind
		want     bool
	}{
		{RelationNone, false},
		{RelationToOne, true},
		{RelationToMany, true},
		{RelationKind(""), false},
	}

	for _, tt := range tests {
		field := &FieldMeta{Relation: tt.relation}
		assert.Equal(t, tt.want, field.Relational(), "relation %q", tt.relation)
	}
}

func TestFieldMeta_DescriptionIn(t *testing.T) {
	field := &FieldMeta{
		Description:  "Customer",
		Translations: datatypes.JSONMap{"ko": "고객", "fr": ""},
	}

	t.Run("번역이 있으면 번역 사용", func(t *testing.T) {
		assert.Equal(t, "고객", field.DescriptionIn("ko"))
	})

	t.Run("빈 번역은 기본 설명으로 대체", func(t *testing.T) {
		assert.Equal(t, "Customer", field.DescriptionIn("fr"))
	})

	t.Run("없는 언어는 기본 설명으로 대체", func(t *testing.T) {
		assert.Equal(t, "Customer", field.DescriptionIn("de"))
	})

	t.Run("빈 lang은 기본 설명", func(t *testing.T) {
		assert.Equal(t, "Customer", field.DescriptionIn(""))
	})

	t.Run("번역 자체가 없는 필드", func(t *testing.T) {
		plain := &FieldMeta{Description: "Country"}
		assert.Equal(t, "Country", plain.DescriptionIn("ko"))
	})

	t.Run("설명이 전혀 없는 필드는 빈 문자열", func(t *testing.T) {
		none := &FieldMeta{}
		assert.Equal(t, "", none.DescriptionIn("ko"))
	})
}
