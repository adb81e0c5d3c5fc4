package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	emaildto "github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/testutil"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
)

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID int64) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	ListAllFunc func(ctx context.Context) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID int64) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

type mockMessageRepository struct {
	CreateFunc         func(ctx context.Context, msg *ticket.Message) error
	ListByTicketIDFunc func(ctx context.Context, ticketID int64) ([]*ticket.Message, error)
	LatestInboundFunc  func(ctx context.Context, ticketID int64) (*ticket.Message, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *ticket.Message) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Message, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockMessageRepository) LatestInbound(ctx context.Context, ticketID int64) (*ticket.Message, error) {
	if m.LatestInboundFunc != nil {
		return m.LatestInboundFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockAttachmentRepository struct {
	CreateFunc          func(ctx context.Context, a *ticket.Attachment) error
	ListByMessageIDFunc func(ctx context.Context, messageID int64) ([]*ticket.Attachment, error)
}

func (m *mockAttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, a)
	}
	return nil
}

func (m *mockAttachmentRepository) ListByMessageID(ctx context.Context, messageID int64) ([]*ticket.Attachment, error) {
	if m.ListByMessageIDFunc != nil {
		return m.ListByMessageIDFunc(ctx, messageID)
	}
	return nil, nil
}

type mockSearcher struct {
	SearchFunc func(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error)
	calls      []knowledge.SearchQuery
}

func (m *mockSearcher) Search(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error) {
	m.calls = append(m.calls, q)
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return nil, nil
}

type mockEmailSender struct {
	mock.Mock
}

func (m *mockEmailSender) Send(ctx context.Context, email emaildto.OutboundEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *mockEmailSender) FromAddress() string {
	args := m.Called()
	return args.String(0)
}

func newTxManager(t *testing.T) *db.TransactionManager {
	t.Helper()
	return db.NewTransactionManager(testutil.NewSQLiteDB(t))
}

func existingTicket(t *testing.T, id int64, subject, email string, status vo.TicketStatus) *ticket.Ticket {
	t.Helper()
	created := time.Now().Add(-time.Hour).UTC()
	tk, err := ticket.ReconstructTicket(
		id,
		subject,
		email,
		status,
		"billing",
		"",
		vo.PriorityHigh,
		70,
		"summary",
		map[string]any{"next_step": "request_info"},
		"draft",
		created,
		created,
	)
	require.NoError(t, err)
	return tk
}

func inboundMessage(t *testing.T, ticketID int64, headers map[string]any) *ticket.Message {
	t.Helper()
	msg, err := ticket.ReconstructMessage(10, ticketID, vo.DirectionInbound, "a@b.com", "support@example.com",
		"Ошибка оплаты", headers, "body", time.Now().UTC())
	require.NoError(t, err)
	return msg
}
