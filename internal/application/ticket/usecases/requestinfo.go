package usecases

import (
	"context"
	"strings"

	"github.com/helpdesk-ai/helpdesk/internal/application/analyzer"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type RequestInfoCommand struct {
	TicketID  int64
	Questions []string
	ToEmail   string
	Subject   string
}

// RequestInfoUseCase mails the customer a fixed template listing the
// questions and moves the ticket to needs_info.
type RequestInfoUseCase struct {
	ticketRepo ticket.TicketRepository
	replies    *replyDispatcher
	logger     logger.Interface
}

func NewRequestInfoUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	sender EmailSender,
	txMgr *db.TransactionManager,
	logger logger.Interface,
) *RequestInfoUseCase {
	return &RequestInfoUseCase{
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

func (uc *RequestInfoUseCase) Execute(ctx context.Context, cmd RequestInfoCommand) error {
	uc.logger.Infow("executing request info use case", "ticket_id", cmd.TicketID, "questions", len(cmd.Questions))

	if cmd.TicketID <= 0 {
		return errors.NewNotFoundError("Ticket not found")
	}

	questions := make([]string, 0, len(cmd.Questions))
	for _, q := range cmd.Questions {
		if q = strings.TrimSpace(q); q != "" {
			questions = append(questions, q)
		}
	}
	if len(questions) == 0 {
		return errors.NewValidationError("at least one question is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	return uc.replies.dispatch(ctx, t, outboundReply{
		toEmail:   cmd.ToEmail,
		subject:   cmd.Subject,
		body:      RequestInfoBody(questions),
		newStatus: vo.StatusNeedsInfo,
	})
}

// RequestInfoBody renders the clarification request sent to the customer.
func RequestInfoBody(questions []string) string {
	return "Здравствуйте!\n\n" +
		"Чтобы быстрее помочь, уточните, пожалуйста:\n" +
		analyzer.BulletList(questions) +
		"\n\n" + analyzer.Signature
}
