package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// UpdateTicketCommand is a partial update; nil fields are left unchanged.
type UpdateTicketCommand struct {
	TicketID int64
	Status   *string
	Category *string
	Product  *string
	Priority *string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID <= 0 {
		return nil, errors.NewNotFoundError("Ticket not found")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.apply(t, cmd); err != nil {
		uc.logger.Warnw("invalid ticket update", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "status", t.Status())
	return dto.ToTicketDTO(t), nil
}

func (uc *UpdateTicketUseCase) apply(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if cmd.Status != nil {
		status, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return err
		}
		if err := t.ChangeStatus(status); err != nil {
			return err
		}
	}
	if cmd.Category != nil {
		if err := t.ChangeCategory(*cmd.Category); err != nil {
			return err
		}
	}
	if cmd.Product != nil {
		if err := t.ChangeProduct(*cmd.Product); err != nil {
			return err
		}
	}
	if cmd.Priority != nil {
		priority, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return err
		}
		if err := t.ChangePriority(priority); err != nil {
			return err
		}
	}
	return nil
}
