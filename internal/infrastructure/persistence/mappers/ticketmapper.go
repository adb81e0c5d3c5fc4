package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket aggregate entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	MessageToModel(m *ticket.Message) *models.MessageModel
	MessageToDomain(model *models.MessageModel) (*ticket.Message, error)

	AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel
	AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment

	AiRunToModel(r *ticket.AiRun) *models.AiRunModel
	AiRunToDomain(model *models.AiRunModel) *ticket.AiRun
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.ID(),
		Subject:            t.Subject(),
		CustomerEmail:      t.CustomerEmail(),
		Status:             t.Status().String(),
		Category:           t.Category(),
		Product:            t.Product(),
		Priority:           t.Priority().String(),
		AIConfidence:       t.AIConfidence(),
		AISummary:          t.AISummary(),
		AISuggestedActions: datatypes.JSONMap(t.AISuggestedActions()),
		AIDraftReply:       t.AIDraftReply(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

// ToDomain converts a ticket persistence model to a domain entity.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Subject,
		model.CustomerEmail,
		status,
		model.Category,
		model.Product,
		priority,
		model.AIConfidence,
		model.AISummary,
		map[string]any(model.AISuggestedActions),
		model.AIDraftReply,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *TicketMapperImpl) MessageToModel(msg *ticket.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:          msg.ID(),
		TicketID:    msg.TicketID(),
		Direction:   msg.Direction().String(),
		FromEmail:   msg.FromEmail(),
		ToEmail:     msg.ToEmail(),
		Subject:     msg.Subject(),
		RawHeaders:  datatypes.JSONMap(msg.RawHeaders()),
		CleanedText: msg.CleanedText(),
		CreatedAt:   msg.CreatedAt(),
	}
}

func (m *TicketMapperImpl) MessageToDomain(model *models.MessageModel) (*ticket.Message, error) {
	direction, err := vo.NewDirection(model.Direction)
	if err != nil {
		return nil, fmt.Errorf("message %d: %w", model.ID, err)
	}

	return ticket.ReconstructMessage(
		model.ID,
		model.TicketID,
		direction,
		model.FromEmail,
		model.ToEmail,
		model.Subject,
		map[string]any(model.RawHeaders),
		model.CleanedText,
		model.CreatedAt.UTC(),
	)
}

func (m *TicketMapperImpl) AttachmentToModel(a *ticket.Attachment) *models.AttachmentModel {
	return &models.AttachmentModel{
		ID:          a.ID(),
		MessageID:   a.MessageID(),
		Filename:    a.Filename(),
		MimeType:    a.MimeType(),
		SizeBytes:   a.SizeBytes(),
		StoragePath: a.StoragePath(),
	}
}

func (m *TicketMapperImpl) AttachmentToDomain(model *models.AttachmentModel) *ticket.Attachment {
	return ticket.ReconstructAttachment(
		model.ID,
		model.MessageID,
		model.Filename,
		model.MimeType,
		model.SizeBytes,
		model.StoragePath,
	)
}

func (m *TicketMapperImpl) AiRunToModel(r *ticket.AiRun) *models.AiRunModel {
	return &models.AiRunModel{
		ID:            r.ID(),
		TicketID:      r.TicketID(),
		ModelVersions: datatypes.JSONMap(r.ModelVersions()),
		Outputs:       datatypes.JSONMap(r.Outputs()),
		Confidence:    r.Confidence(),
		CreatedAt:     r.CreatedAt(),
	}
}

func (m *TicketMapperImpl) AiRunToDomain(model *models.AiRunModel) *ticket.AiRun {
	return ticket.ReconstructAiRun(
		model.ID,
		model.TicketID,
		map[string]any(model.ModelVersions),
		map[string]any(model.Outputs),
		model.Confidence,
		model.CreatedAt.UTC(),
	)
}
