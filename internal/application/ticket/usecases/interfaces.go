package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/analyzer"
	emaildto "github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
)

type IngestInboundExecutor interface {
	Execute(ctx context.Context, cmd IngestInboundCommand) (*IngestInboundResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error)
}

type ApproveSendExecutor interface {
	Execute(ctx context.Context, cmd ApproveSendCommand) error
}

type RequestInfoExecutor interface {
	Execute(ctx context.Context, cmd RequestInfoCommand) error
}

type EscalateTicketExecutor interface {
	Execute(ctx context.Context, cmd EscalateTicketCommand) error
}

// MessageAnalyzer classifies an inbound message. It must not fail.
type MessageAnalyzer interface {
	Analyze(subject, body string) analyzer.Result
}

// EmailSender delivers agent replies to customers.
type EmailSender interface {
	Send(ctx context.Context, email emaildto.OutboundEmail) error
	FromAddress() string
}
