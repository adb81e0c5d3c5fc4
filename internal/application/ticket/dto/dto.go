package dto

import (
	"time"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-ai/helpdesk/internal/shared/mapper"
)

type TicketDTO struct {
	ID                 int64          `json:"id"`
	Subject            string         `json:"subject"`
	CustomerEmail      string         `json:"customer_email"`
	Status             string         `json:"status"`
	Category           string         `json:"category"`
	Product            string         `json:"product"`
	Priority           string         `json:"priority"`
	AIConfidence       int            `json:"ai_confidence"`
	AISummary          string         `json:"ai_summary"`
	AISuggestedActions map[string]any `json:"ai_suggested_actions"`
	AIDraftReply       string         `json:"ai_draft_reply"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type AttachmentDTO struct {
	ID          int64  `json:"id"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mime_type"`
	SizeBytes   int64  `json:"size_bytes"`
	StoragePath string `json:"storage_path"`
}

type MessageDTO struct {
	ID          int64           `json:"id"`
	TicketID    int64           `json:"ticket_id"`
	Direction   string          `json:"direction"`
	FromEmail   string          `json:"from_email"`
	ToEmail     string          `json:"to_email"`
	Subject     string          `json:"subject"`
	CleanedText string          `json:"cleaned_text"`
	RawHeaders  map[string]any  `json:"raw_headers"`
	CreatedAt   time.Time       `json:"created_at"`
	Attachments []AttachmentDTO `json:"attachments,omitempty"`
}

type TicketDetailDTO struct {
	Ticket   *TicketDTO   `json:"ticket"`
	Messages []MessageDTO `json:"messages"`
}

// AttachmentInput describes a file already written to storage by the caller.
type AttachmentInput struct {
	Filename    string `json:"filename" binding:"max=512"`
	MimeType    string `json:"mime_type" binding:"max=128"`
	SizeBytes   int64  `json:"size_bytes" binding:"gte=0"`
	StoragePath string `json:"storage_path" binding:"required,max=1024"`
}

type InboundTicketRequest struct {
	Subject       string            `json:"subject" binding:"max=512"`
	CustomerEmail string            `json:"customer_email" binding:"required,max=320"`
	FromEmail     string            `json:"from_email" binding:"required,max=320"`
	ToEmail       string            `json:"to_email" binding:"required,max=320"`
	CleanedText   string            `json:"cleaned_text"`
	RawHeaders    map[string]any    `json:"raw_headers"`
	Attachments   []AttachmentInput `json:"attachments" binding:"omitempty,dive"`
}

// UpdateTicketRequest is a partial update; nil fields are left unchanged.
type UpdateTicketRequest struct {
	Status   *string `json:"status" binding:"omitempty,ticket_status"`
	Category *string `json:"category" binding:"omitempty,max=128"`
	Product  *string `json:"product" binding:"omitempty,max=128"`
	Priority *string `json:"priority" binding:"omitempty,ticket_priority"`
}

type ApproveSendRequest struct {
	ReplyText string `json:"reply_text" binding:"required"`
	ToEmail   string `json:"to_email" binding:"max=320"`
	Subject   string `json:"subject" binding:"max=998"`
}

type RequestInfoRequest struct {
	Questions []string `json:"questions" binding:"required,min=1,dive,required"`
	ToEmail   string   `json:"to_email" binding:"max=320"`
	Subject   string   `json:"subject" binding:"max=998"`
}

type EscalateRequest struct {
	Note string `json:"note"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	return &TicketDTO{
		ID:                 t.ID(),
		Subject:            t.Subject(),
		CustomerEmail:      t.CustomerEmail(),
		Status:             t.Status().String(),
		Category:           t.Category(),
		Product:            t.Product(),
		Priority:           t.Priority().String(),
		AIConfidence:       t.AIConfidence(),
		AISummary:          t.AISummary(),
		AISuggestedActions: t.AISuggestedActions(),
		AIDraftReply:       t.AIDraftReply(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlicePtrSkipNil(tickets, ToTicketDTO)
}

func ToAttachmentDTO(a *ticket.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:          a.ID(),
		Filename:    a.Filename(),
		MimeType:    a.MimeType(),
		SizeBytes:   a.SizeBytes(),
		StoragePath: a.StoragePath(),
	}
}

func ToMessageDTO(m *ticket.Message, attachments []*ticket.Attachment) MessageDTO {
	return MessageDTO{
		ID:          m.ID(),
		TicketID:    m.TicketID(),
		Direction:   m.Direction().String(),
		FromEmail:   m.FromEmail(),
		ToEmail:     m.ToEmail(),
		Subject:     m.Subject(),
		CleanedText: m.CleanedText(),
		RawHeaders:  m.RawHeaders(),
		CreatedAt:   m.CreatedAt(),
		Attachments: mapper.MapSlice(attachments, ToAttachmentDTO),
	}
}
