package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	emaildto "github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type replyFixture struct {
	tickets  *mockTicketRepository
	messages *mockMessageRepository
	sender   *mockEmailSender
	stored   *ticket.Ticket
	created  []*ticket.Message
	updated  []*ticket.Ticket
}

func newReplyFixture(t *testing.T, tk *ticket.Ticket, inbound *ticket.Message) *replyFixture {
	f := &replyFixture{stored: tk, sender: &mockEmailSender{}}
	f.tickets = &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, ticketID int64) (*ticket.Ticket, error) {
			if f.stored == nil || ticketID != f.stored.ID() {
				return nil, errors.NewNotFoundError("Ticket not found")
			}
			return f.stored, nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			f.updated = append(f.updated, tk)
			return nil
		},
	}
	f.messages = &mockMessageRepository{
		LatestInboundFunc: func(ctx context.Context, ticketID int64) (*ticket.Message, error) {
			return inbound, nil
		},
		CreateFunc: func(ctx context.Context, msg *ticket.Message) error {
			f.created = append(f.created, msg)
			return nil
		},
	}
	f.sender.On("FromAddress").Return("support@example.com").Maybe()
	return f
}

func (f *replyFixture) approveUseCase(t *testing.T) *ApproveSendUseCase {
	return NewApproveSendUseCase(f.tickets, f.messages, f.sender, newTxManager(t), logger.NewNopLogger())
}

func TestApproveSendUseCase_Execute_Success(t *testing.T) {
	tk := existingTicket(t, 1, "Ошибка оплаты", "a@b.com", vo.StatusNeedsInfo)
	f := newReplyFixture(t, tk, nil)
	f.sender.On("Send", mock.Anything, emaildto.OutboundEmail{
		To:       "a@b.com",
		Subject:  "Ошибка оплаты",
		BodyText: "Готово, платеж прошел.",
	}).Return(nil).Once()

	err := f.approveUseCase(t).Execute(context.Background(), ApproveSendCommand{
		TicketID:  1,
		ReplyText: "Готово, платеж прошел.",
	})

	require.NoError(t, err)
	f.sender.AssertExpectations(t)
	assert.Equal(t, vo.StatusWaitingCustomer, tk.Status())
	require.Len(t, f.updated, 1)
	require.Len(t, f.created, 1)

	out := f.created[0]
	assert.Equal(t, vo.DirectionOutbound, out.Direction())
	assert.Equal(t, "support@example.com", out.FromEmail())
	assert.Equal(t, "a@b.com", out.ToEmail())
	assert.Equal(t, "Готово, платеж прошел.", out.CleanedText())
}

func TestApproveSendUseCase_Execute_Overrides(t *testing.T) {
	tk := existingTicket(t, 1, "Ошибка оплаты", "a@b.com", vo.StatusNew)
	f := newReplyFixture(t, tk, nil)
	f.sender.On("Send", mock.Anything, mock.MatchedBy(func(e emaildto.OutboundEmail) bool {
		return e.To == "boss@b.com" && e.Subject == "Re: оплата"
	})).Return(nil).Once()

	err := f.approveUseCase(t).Execute(context.Background(), ApproveSendCommand{
		TicketID:  1,
		ReplyText: "ok",
		ToEmail:   "boss@b.com",
		Subject:   "Re: оплата",
	})

	require.NoError(t, err)
	f.sender.AssertExpectations(t)
}

func TestApproveSendUseCase_Execute_SubjectFallback(t *testing.T) {
	tk := existingTicket(t, 1, "", "a@b.com", vo.StatusNew)
	f := newReplyFixture(t, tk, nil)
	f.sender.On("Send", mock.Anything, mock.MatchedBy(func(e emaildto.OutboundEmail) bool {
		return e.Subject == "Support request"
	})).Return(nil).Once()

	err := f.approveUseCase(t).Execute(context.Background(), ApproveSendCommand{TicketID: 1, ReplyText: "ok"})

	require.NoError(t, err)
	f.sender.AssertExpectations(t)
}

func TestApproveSendUseCase_Execute_ThreadsReply(t *testing.T) {
	tk := existingTicket(t, 1, "Ошибка оплаты", "a@b.com", vo.StatusNew)
	inbound := inboundMessage(t, 1, map[string]any{
		"message-id": "<m2@example.com>",
		"References": "<m1@example.com>",
	})
	f := newReplyFixture(t, tk, inbound)
	f.sender.On("Send", mock.Anything, mock.MatchedBy(func(e emaildto.OutboundEmail) bool {
		return e.InReplyTo == "<m2@example.com>" && e.References == "<m1@example.com> <m2@example.com>"
	})).Return(nil).Once()

	err := f.approveUseCase(t).Execute(context.Background(), ApproveSendCommand{TicketID: 1, ReplyText: "ok"})

	require.NoError(t, err)
	f.sender.AssertExpectations(t)
	require.Len(t, f.created, 1)
	assert.Equal(t, "<m2@example.com>", f.created[0].Header("In-Reply-To"))
}

func TestApproveSendUseCase_Execute_SendFailure(t *testing.T) {
	tk := existingTicket(t, 1, "Ошибка оплаты", "a@b.com", vo.StatusNeedsInfo)
	f := newReplyFixture(t, tk, nil)
	f.sender.On("Send", mock.Anything, mock.Anything).
		Return(errors.NewTransportError("failed to send email", "connection refused")).Once()

	err := f.approveUseCase(t).Execute(context.Background(), ApproveSendCommand{TicketID: 1, ReplyText: "ok"})

	require.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
	assert.Equal(t, vo.StatusNeedsInfo, tk.Status())
	assert.Empty(t, f.created)
	assert.Empty(t, f.updated)
}

func TestApproveSendUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ApproveSendCommand
		checkFn func(error) bool
	}{
		{"unknown ticket", ApproveSendCommand{TicketID: 99, ReplyText: "ok"}, errors.IsNotFoundError},
		{"zero id", ApproveSendCommand{TicketID: 0, ReplyText: "ok"}, errors.IsNotFoundError},
		{"blank reply", ApproveSendCommand{TicketID: 1, ReplyText: "  "}, errors.IsValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := existingTicket(t, 1, "s", "a@b.com", vo.StatusNew)
			f := newReplyFixture(t, tk, nil)

			err := f.approveUseCase(t).Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, tt.checkFn(err), fmt.Sprintf("unexpected error: %v", err))
			f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestApproveSendUseCase_Execute_NoRecipient(t *testing.T) {
	tk := existingTicket(t, 1, "s", "", vo.StatusNew)
	f := newReplyFixture(t, tk, nil)

	err := f.approveUseCase(t).Execute(context.Background(), ApproveSendCommand{TicketID: 1, ReplyText: "ok"})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestThreadHeaders(t *testing.T) {
	tests := []struct {
		name        string
		headers     map[string]any
		wantReplyTo string
		wantRefs    string
	}{
		{"no message id", map[string]any{}, "", ""},
		{"message id only", map[string]any{"Message-ID": "<a@x>"}, "<a@x>", "<a@x>"},
		{"with references", map[string]any{"Message-ID": "<b@x>", "References": "<a@x>"}, "<b@x>", "<a@x> <b@x>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inReplyTo, refs := threadHeaders(inboundMessage(t, 1, tt.headers))
			assert.Equal(t, tt.wantReplyTo, inReplyTo)
			assert.Equal(t, tt.wantRefs, refs)
		})
	}
}
