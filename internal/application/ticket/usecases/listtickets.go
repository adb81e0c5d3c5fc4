package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// ListTicketsQuery expects Limit and Offset already clamped by the caller.
// Empty Status, Priority or Query do not filter.
type ListTicketsQuery struct {
	Status   string
	Priority string
	Query    string
	Limit    int
	Offset   int
}

type ListTicketsResult struct {
	Items  []*dto.TicketDTO
	Total  int64
	Limit  int
	Offset int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{
		Query:  query.Query,
		Limit:  query.Limit,
		Offset: query.Offset,
	}

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	items := dto.ToTicketDTOList(tickets)
	if items == nil {
		items = []*dto.TicketDTO{}
	}

	return &ListTicketsResult{
		Items:  items,
		Total:  total,
		Limit:  query.Limit,
		Offset: query.Offset,
	}, nil
}
