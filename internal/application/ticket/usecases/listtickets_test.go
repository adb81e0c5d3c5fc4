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

func TestListTicketsUseCase_Execute(t *testing.T) {
	var got ticket.TicketFilter
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			got = filter
			return []*ticket.Ticket{existingTicket(t, 2, "s", "a@b.com", vo.StatusNeedsInfo)}, 7, nil
		},
	}

	result, err := NewListTicketsUseCase(repo, logger.NewNopLogger()).Execute(context.Background(), ListTicketsQuery{
		Status:   "needs_info",
		Priority: "high",
		Query:    "оплат",
		Limit:    1,
		Offset:   3,
	})

	require.NoError(t, err)
	require.NotNil(t, got.Status)
	require.NotNil(t, got.Priority)
	assert.Equal(t, vo.StatusNeedsInfo, *got.Status)
	assert.Equal(t, vo.PriorityHigh, *got.Priority)
	assert.Equal(t, "оплат", got.Query)
	assert.Equal(t, 1, got.Limit)
	assert.Equal(t, 3, got.Offset)

	assert.Equal(t, int64(7), result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(2), result.Items[0].ID)
}

func TestListTicketsUseCase_Execute_EmptyResult(t *testing.T) {
	repo := &mockTicketRepository{}

	result, err := NewListTicketsUseCase(repo, logger.NewNopLogger()).
		Execute(context.Background(), ListTicketsQuery{Limit: 20})

	require.NoError(t, err)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
}

func TestListTicketsUseCase_Execute_InvalidFilters(t *testing.T) {
	repo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
			t.Fatal("repository must not be called")
			return nil, 0, nil
		},
	}
	uc := NewListTicketsUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Status: "open"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Priority: "critical"})
	assert.True(t, errors.IsValidationError(err))
}
