package ticket

import (
	"context"

	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
)

// TicketRepository stores tickets. Get and Update return a not-found AppError
// for unknown IDs.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID int64) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	// ListAll returns every ticket ordered by updated_at desc.
	ListAll(ctx context.Context) ([]*Ticket, error)
}

// TicketFilter narrows List. Query matches subject or customer email
// case-insensitively. Results are ordered by updated_at desc.
type TicketFilter struct {
	Status   *vo.TicketStatus
	Priority *vo.Priority
	Query    string
	Limit    int
	Offset   int
}

type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	// ListByTicketID returns the thread oldest first.
	ListByTicketID(ctx context.Context, ticketID int64) ([]*Message, error)
	// LatestInbound returns nil without error when the ticket has no inbound message.
	LatestInbound(ctx context.Context, ticketID int64) (*Message, error)
}

type AttachmentRepository interface {
	Create(ctx context.Context, attachment *Attachment) error
	ListByMessageID(ctx context.Context, messageID int64) ([]*Attachment, error)
}

type AiRunRepository interface {
	Create(ctx context.Context, run *AiRun) error
	ListByTicketID(ctx context.Context, ticketID int64) ([]*AiRun, error)
}
