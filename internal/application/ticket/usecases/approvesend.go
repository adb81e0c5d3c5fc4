package usecases

import (
	"context"
	"strings"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// ApproveSendCommand sends ReplyText. ToEmail falls back to the customer
// email; Subject to the ticket subject, then to a fixed default.
type ApproveSendCommand struct {
	TicketID  int64
	ReplyText string
	ToEmail   string
	Subject   string
}

type ApproveSendUseCase struct {
	ticketRepo ticket.TicketRepository
	replies    *replyDispatcher
	logger     logger.Interface
}

func NewApproveSendUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	sender EmailSender,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *ApproveSendUseCase {
	return &ApproveSendUseCase{
		ticketRepo: ticketRepo,
		replies: &replyDispatcher{
			ticketRepo:  ticketRepo,
			messageRepo: messageRepo,
			sender:      sender,
			txMgr:       txMgr,
			logger:      logger,
		},
		logger: logger,
	}
}

func (uc *ApproveSendUseCase) Execute(ctx context.Context, cmd ApproveSendCommand) error {
	uc.logger.Infow("executing approve send use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID <= 0 {
		return errors.NewNotFoundError("Ticket not found")
	}
	if strings.TrimSpace(cmd.ReplyText) == "" {
		return errors.NewValidationError("reply_text is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	return uc.replies.dispatch(ctx, t, outboundReply{
		toEmail:   cmd.ToEmail,
		subject:   cmd.Subject,
		body:      cmd.ReplyText,
		newStatus: vo.StatusWaitingCustomer,
	})
}
