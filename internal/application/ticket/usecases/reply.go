package usecases

import (
	"context"
	"strings"

	emaildto "github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type outboundReply struct {
	toEmail   string
	subject   string
	body      string
	newStatus vo.TicketStatus
}

// replyDispatcher sends an agent reply and then records it. The email goes
// out first; the outbound message and the status change are committed
// together afterwards. A failed send leaves the ticket untouched.
type replyDispatcher struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	sender      EmailSender
	txMgr       *db.TransactionManager
	logger      logger.Interface
}

func (d *replyDispatcher) dispatch(ctx context.Context, t *ticket.Ticket, r outboundReply) error {
	to := t.ReplyRecipient(r.toEmail)
	subject := t.ReplySubject(r.subject, constants.DefaultReplySubject)
	if strings.TrimSpace(to) == "" {
		return errors.NewValidationError("ticket has no customer email and no to_email was given")
	}

	email := emaildto.OutboundEmail{
		To:       to,
		Subject:  subject,
		BodyText: r.body,
	}

	inbound, err := d.messageRepo.LatestInbound(ctx, t.ID())
	if err != nil {
		return err
	}
	if inbound != nil {
		email.InReplyTo, email.References = threadHeaders(inbound)
	}

	if err := d.sender.Send(ctx, email); err != nil {
		d.logger.Errorw("failed to send reply", "ticket_id", t.ID(), "to", to, "error", err)
		return err
	}

	headers := map[string]any{"From": d.sender.FromAddress()}
	if email.InReplyTo != "" {
		headers[constants.MailHeaderInReplyTo] = email.InReplyTo
	}
	if email.References != "" {
		headers[constants.MailHeaderReferences] = email.References
	}

	err = d.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		msg, err := ticket.NewOutboundMessage(t.ID(), d.sender.FromAddress(), to, subject, r.body, headers)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}
		if err := d.messageRepo.Create(txCtx, msg); err != nil {
			return err
		}
		if err := t.ChangeStatus(r.newStatus); err != nil {
			return err
		}
		return d.ticketRepo.Update(txCtx, t)
	})
	if err != nil {
		d.logger.Errorw("reply sent but not recorded", "ticket_id", t.ID(), "to", to, "error", err)
		return err
	}

	d.logger.Infow("reply sent", "ticket_id", t.ID(), "to", to, "status", r.newStatus)
	return nil
}

// threadHeaders builds In-Reply-To and References for a reply to msg.
func threadHeaders(msg *ticket.Message) (inReplyTo, references string) {
	messageID := strings.TrimSpace(msg.Header(constants.MailHeaderMessageID))
	if messageID == "" {
		return "", ""
	}

	refs := strings.TrimSpace(msg.Header(constants.MailHeaderReferences))
	if refs == "" {
		return messageID, messageID
	}
	return messageID, refs + " " + messageID
}
