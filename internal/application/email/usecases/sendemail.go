package usecases

import (
	"context"
	"strings"

	"github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

// EmailSender delivers one message. Implementations return a transport
// AppError when the remote server rejects or cannot be reached.
type EmailSender interface {
	Send(ctx context.Context, email dto.OutboundEmail) error
	FromAddress() string
}

type SendEmailExecutor interface {
	Execute(ctx context.Context, cmd dto.OutboundEmail) error
}

type SendEmailUseCase struct {
	sender EmailSender
	logger logger.Interface
}

func NewSendEmailUseCase(sender EmailSender, logger logger.Interface) *SendEmailUseCase {
	return &SendEmailUseCase{
		sender: sender,
		logger: logger,
	}
}

func (uc *SendEmailUseCase) Execute(ctx context.Context, cmd dto.OutboundEmail) error {
	if strings.TrimSpace(cmd.To) == "" {
		return errors.NewValidationError("to_email is required")
	}
	if strings.ContainsAny(cmd.To+cmd.Subject+cmd.InReplyTo+cmd.References, "\r\n") {
		return errors.NewValidationError("email headers must not contain line breaks")
	}

	uc.logger.Infow("sending email", "to", cmd.To, "has_in_reply_to", cmd.InReplyTo != "")

	if err := uc.sender.Send(ctx, cmd); err != nil {
		uc.logger.Errorw("failed to send email", "to", cmd.To, "error", err)
		return err
	}

	uc.logger.Infow("email sent", "to", cmd.To)
	return nil
}
