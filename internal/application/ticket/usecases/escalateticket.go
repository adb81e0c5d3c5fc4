package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// EscalateTicketCommand carries an optional note. The note is logged but not
// stored on the ticket.
type EscalateTicketCommand struct {
	TicketID int64
	Note     string
}

type EscalateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewEscalateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *EscalateTicketUseCase {
	return &EscalateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *EscalateTicketUseCase) Execute(ctx context.Context, cmd EscalateTicketCommand) error {
	if cmd.TicketID <= 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	oldStatus := t.Status()
	if err := t.ChangeStatus(vo.StatusEscalated); err != nil {
		return err
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to escalate ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket escalated",
		"ticket_id", cmd.TicketID,
		"old_status", oldStatus,
		"note", cmd.Note,
	)
	return nil
}
