package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID int64
}

// GetTicketUseCase returns a ticket with its thread, oldest message first.
type GetTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	messageRepo    ticket.MessageRepository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:     ticketRepo,
		messageRepo:    messageRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID <= 0 {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket messages", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	messageDTOs := make([]dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		attachments, err := uc.attachmentRepo.ListByMessageID(ctx, m.ID())
		if err != nil {
			uc.logger.Errorw("failed to load attachments", "message_id", m.ID(), "error", err)
			return nil, err
		}
		messageDTOs = append(messageDTOs, dto.ToMessageDTO(m, attachments))
	}

	return &dto.TicketDetailDTO{
		Ticket:   dto.ToTicketDTO(t),
		Messages: messageDTOs,
	}, nil
}
