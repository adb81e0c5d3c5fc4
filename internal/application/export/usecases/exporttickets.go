package usecases

import (
	"context"
	"strconv"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/export"
	"github.com/helpdesk-ai/helpdesk/internal/shared/biztime"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

var ticketColumns = []string{
	"id", "subject", "customer_email", "status", "category",
	"product", "priority", "ai_confidence", "updated_at",
}

type TableEncoder interface {
	Encode(table export.Table) ([]byte, error)
	ContentType() string
	Extension() string
}

type ExportTicketsExecutor interface {
	Execute(ctx context.Context, format string) (*ExportResult, error)
}

type ExportResult struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportTicketsUseCase dumps every ticket, newest update first.
type ExportTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	encoders   map[string]TableEncoder
	logger     logger.Interface
}

func NewExportTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		encoders: map[string]TableEncoder{
			FormatCSV:  export.NewCSVEncoder(),
			FormatXLSX: export.NewXLSXEncoder("tickets"),
		},
		logger: logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, format string) (*ExportResult, error) {
	enc, ok := uc.encoders[format]
	if !ok {
		return nil, errors.NewValidationError("unsupported export format: " + format)
	}

	tickets, err := uc.ticketRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load tickets for export", "error", err)
		return nil, err
	}

	data, err := enc.Encode(ticketTable(tickets))
	if err != nil {
		uc.logger.Errorw("failed to encode tickets", "format", format, "error", err)
		return nil, errors.NewInternalError("failed to export tickets", err.Error())
	}

	uc.logger.Infow("tickets exported", "format", format, "count", len(tickets))
	return &ExportResult{
		Filename:    "tickets." + enc.Extension(),
		ContentType: enc.ContentType(),
		Data:        data,
	}, nil
}

func ticketTable(tickets []*ticket.Ticket) export.Table {
	rows := make([][]string, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, []string{
			strconv.FormatInt(t.ID(), 10),
			t.Subject(),
			t.CustomerEmail(),
			t.Status().String(),
			t.Category(),
			t.Product(),
			t.Priority().String(),
			strconv.Itoa(t.AIConfidence()),
			biztime.FormatRFC3339(t.UpdatedAt()),
		})
	}
	return export.Table{Header: ticketColumns, Rows: rows}
}
