package email

import (
	"context"
	"crypto/tls"

	"gopkg.in/gomail.v2"

	"github.com/helpdesk-ai/helpdesk/internal/application/email/dto"
	"github.com/helpdesk-ai/helpdesk/internal/shared/config"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/services/markdown"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPEmailService sends replies through one SMTP relay. Every message has a
// text/plain body and a sanitized text/html alternative rendered from it.
type SMTPEmailService struct {
	config   config.EmailConfig
	dialer   dialer
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewSMTPEmailService(cfg config.EmailConfig, md markdown.MarkdownService, log logger.Interface) *SMTPEmailService {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, "", "")
	// gomail logs in whenever a username is set; only authenticate with both.
	if cfg.SMTPUser != "" && cfg.SMTPPassword != "" {
		d.Username = cfg.SMTPUser
		d.Password = cfg.SMTPPassword
	}
	// gomail uses implicit TLS on 465 and STARTTLS elsewhere when offered;
	// use_tls pins the handshake to TLS 1.2+ with hostname verification.
	if cfg.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}
	}

	return &SMTPEmailService{
		config:   cfg,
		dialer:   d,
		markdown: md,
		logger:   log,
	}
}

func (s *SMTPEmailService) FromAddress() string {
	return s.config.Sender()
}

// Send dials per message; there is no pooled connection and no retry.
func (s *SMTPEmailService) Send(ctx context.Context, email dto.OutboundEmail) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := s.buildMessage(email)

	if err := s.dialer.DialAndSend(m); err != nil {
		s.logger.Errorw("smtp delivery failed",
			"host", s.config.SMTPHost,
			"port", s.config.SMTPPort,
			"to", email.To,
			"error", err,
		)
		return errors.NewTransportError("failed to send email", err.Error())
	}

	return nil
}

func (s *SMTPEmailService) buildMessage(email dto.OutboundEmail) *gomail.Message {
	m := gomail.NewMessage()
	if s.config.FromName != "" {
		m.SetAddressHeader("From", s.config.Sender(), s.config.FromName)
	} else {
		m.SetHeader("From", s.config.Sender())
	}
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)

	if email.InReplyTo != "" {
		m.SetHeader(constants.MailHeaderInReplyTo, email.InReplyTo)
	}
	if email.References != "" {
		m.SetHeader(constants.MailHeaderReferences, email.References)
	}

	m.SetBody("text/plain", email.BodyText)

	htmlBody, err := s.markdown.ToHTMLSanitized(email.BodyText)
	if err != nil {
		s.logger.Warnw("failed to render html alternative, sending plain text only", "error", err)
		return m
	}
	m.AddAlternative("text/html", htmlBody)

	return m
}

