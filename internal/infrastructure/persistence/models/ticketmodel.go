package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketModel struct {
	ID                 int64             `gorm:"primaryKey"`
	Subject            string            `gorm:"size:512;not null;default:''"`
	CustomerEmail      string            `gorm:"size:320;not null;default:''"`
	Status             string            `gorm:"size:32;not null;default:new;index"`
	Category           string            `gorm:"size:128;not null;default:''"`
	Product            string            `gorm:"size:128;not null;default:''"`
	Priority           string            `gorm:"size:32;not null;default:medium"`
	AIConfidence       int               `gorm:"column:ai_confidence;not null;default:0"`
	AISummary          string            `gorm:"column:ai_summary;type:text;not null;default:''"`
	AISuggestedActions datatypes.JSONMap `gorm:"column:ai_suggested_actions"`
	AIDraftReply       string            `gorm:"column:ai_draft_reply;type:text;not null;default:''"`
	CreatedAt          time.Time         `gorm:"not null"`
	UpdatedAt          time.Time         `gorm:"not null;index"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type MessageModel struct {
	ID          int64             `gorm:"primaryKey"`
	TicketID    int64             `gorm:"not null;index"`
	Direction   string            `gorm:"size:16;not null"`
	FromEmail   string            `gorm:"size:320;not null;default:''"`
	ToEmail     string            `gorm:"size:320;not null;default:''"`
	Subject     string            `gorm:"size:512;not null;default:''"`
	RawHeaders  datatypes.JSONMap `gorm:"column:raw_headers"`
	CleanedText string            `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time         `gorm:"not null"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (MessageModel) TableName() string {
	return "messages"
}

type AttachmentModel struct {
	ID          int64  `gorm:"primaryKey"`
	MessageID   int64  `gorm:"not null;index"`
	Filename    string `gorm:"size:512;not null;default:''"`
	MimeType    string `gorm:"size:128;not null;default:''"`
	SizeBytes   int64  `gorm:"not null;default:0"`
	StoragePath string `gorm:"size:1024;not null;default:''"`

	Message *MessageModel `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

type AiRunModel struct {
	ID            int64             `gorm:"primaryKey"`
	TicketID      int64             `gorm:"not null;index"`
	ModelVersions datatypes.JSONMap `gorm:"column:model_versions"`
	Outputs       datatypes.JSONMap `gorm:"column:outputs"`
	Confidence    int               `gorm:"not null;default:0"`
	CreatedAt     time.Time         `gorm:"not null"`

	Ticket *TicketModel `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE"`
}

func (AiRunModel) TableName() string {
	return "ai_runs"
}
