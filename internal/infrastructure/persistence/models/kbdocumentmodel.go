package models

import (
	"time"

	"gorm.io/datatypes"
)

// KbDocumentModel maps kb_documents. The search_tsv column is maintained by a
// database trigger and is deliberately not mapped.
type KbDocumentModel struct {
	ID        int64                       `gorm:"primaryKey"`
	Title     string                      `gorm:"size:512;not null"`
	Body      string                      `gorm:"type:text;not null"`
	Tags      datatypes.JSONSlice[string] `gorm:"column:tags"`
	Language  string                      `gorm:"size:16;not null;default:ru"`
	Status    string                      `gorm:"size:32;not null;default:active;index"`
	UpdatedAt time.Time                   `gorm:"not null"`
}

func (KbDocumentModel) TableName() string {
	return "kb_documents"
}
