package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

func TestGetTicketUseCase_Execute(t *testing.T) {
	tk := existingTicket(t, 1, "Ошибка оплаты", "a@b.com", vo.StatusNeedsInfo)
	msg := inboundMessage(t, 1, map[string]any{"Message-ID": "<m1@x>"})

	tickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID int64) (*ticket.Ticket, error) { return tk, nil },
	}
	messages := &mockMessageRepository{
		ListByTicketIDFunc: func(ctx context.Context, ticketID int64) ([]*ticket.Message, error) {
			return []*ticket.Message{msg}, nil
		},
	}
	attachments := &mockAttachmentRepository{
		ListByMessageIDFunc: func(ctx context.Context, messageID int64) ([]*ticket.Attachment, error) {
			return []*ticket.Attachment{
				ticket.ReconstructAttachment(4, messageID, "log.txt", "text/plain", 12, "/data/1/log.txt"),
			}, nil
		},
	}

	detail, err := NewGetTicketUseCase(tickets, messages, attachments, logger.NewNopLogger()).
		Execute(context.Background(), GetTicketQuery{TicketID: 1})

	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.Ticket.ID)
	assert.Equal(t, "needs_info", detail.Ticket.Status)
	require.Len(t, detail.Messages, 1)
	assert.Equal(t, "inbound", detail.Messages[0].Direction)
	require.Len(t, detail.Messages[0].Attachments, 1)
	assert.Equal(t, "log.txt", detail.Messages[0].Attachments[0].Filename)
}

func TestGetTicketUseCase_Execute_NotFound(t *testing.T) {
	tickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID int64) (*ticket.Ticket, error) {
			return nil, errors.NewNotFoundError("Ticket not found")
		},
	}

	_, err := NewGetTicketUseCase(tickets, &mockMessageRepository{}, &mockAttachmentRepository{}, logger.NewNopLogger()).
		Execute(context.Background(), GetTicketQuery{TicketID: 1})

	assert.True(t, errors.IsNotFoundError(err))
}
