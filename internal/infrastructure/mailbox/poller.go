package mailbox

import (
	"context"
	"crypto/tls"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/shared/config"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils"
	"github.com/helpdesk-ai/helpdesk/internal/shared/utils/logutil"
)

const logSubjectMaxLen = 80

// imapSession is the subset of *client.Client the poller uses.
type imapSession interface {
	Login(username, password string) error
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
	UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	UidStore(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error
	Logout() error
}

type dialFunc func(cfg *config.MailboxConfig) (imapSession, error)

// Deduplicator claims Message-IDs; nil disables deduplication.
type Deduplicator interface {
	TryClaim(ctx context.Context, messageID string) (bool, error)
	Release(ctx context.Context, messageID string) error
}

// Poller fetches unseen messages, ingests each one and marks it \Seen.
// A message that can never be ingested (unparsable, oversized attachment,
// rejected by validation) is marked seen as well so it cannot block the
// batch. Any other failure leaves the message unseen for the next poll.
type Poller struct {
	cfg    *config.MailboxConfig
	ingest usecases.IngestInboundExecutor
	store  *AttachmentStore
	dedup  Deduplicator
	dial   dialFunc
	logger logger.Interface
}

func NewPoller(
	cfg *config.MailboxConfig,
	ingest usecases.IngestInboundExecutor,
	dedup Deduplicator,
	logger logger.Interface,
) *Poller {
	return &Poller{
		cfg:    cfg,
		ingest: ingest,
		store:  NewAttachmentStore(cfg.AttachmentsDir),
		dedup:  dedup,
		dial:   dialIMAP,
		logger: logger.With("component", "mailbox.poller"),
	}
}

func dialIMAP(cfg *config.MailboxConfig) (imapSession, error) {
	if cfg.UseTLS {
		return client.DialTLS(cfg.GetAddr(), &tls.Config{ServerName: cfg.IMAPHost})
	}
	return client.Dial(cfg.GetAddr())
}

// PollOnce runs one fetch cycle and returns the number of tickets created.
func (p *Poller) PollOnce(ctx context.Context) (int, error) {
	c, err := p.dial(p.cfg)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to imap server: %w", err)
	}
	defer func() {
		if err := c.Logout(); err != nil {
			p.logger.Debugw("imap logout failed", "error", err)
		}
	}()

	if err := c.Login(p.cfg.IMAPUser, p.cfg.IMAPPassword); err != nil {
		return 0, fmt.Errorf("imap login failed: %w", err)
	}

	folder := p.cfg.Folder
	if folder == "" {
		folder = "INBOX"
	}
	if _, err := c.Select(folder, false); err != nil {
		return 0, fmt.Errorf("failed to select folder %s: %w", folder, err)
	}

	criteria := imap.NewSearchCriteria()
	criteria.WithoutFlags = []string{imap.SeenFlag}
	uids, err := c.UidSearch(criteria)
	if err != nil {
		return 0, fmt.Errorf("imap search failed: %w", err)
	}
	if len(uids) == 0 {
		return 0, nil
	}
	if p.cfg.BatchSize > 0 && len(uids) > p.cfg.BatchSize {
		uids = uids[:p.cfg.BatchSize]
	}

	p.logger.Debugw("fetching unseen messages", "count", len(uids))

	raw, err := p.fetch(c, uids)
	if err != nil {
		return 0, err
	}

	created := 0
	done := new(imap.SeqSet)
	for _, uid := range uids {
		if err := ctx.Err(); err != nil {
			break
		}
		body, ok := raw[uid]
		if !ok {
			continue
		}
		handled, err := p.handle(ctx, uid, body)
		if err != nil {
			var rejected *rejectedError
			if !stderrors.As(err, &rejected) {
				p.logger.Errorw("failed to ingest message, will retry", "uid", uid, "error", err)
				continue
			}
			p.logger.Warnw("rejecting message", "uid", uid, "error", rejected.err)
		}
		if handled {
			created++
		}
		done.AddNum(uid)
	}

	if !done.Empty() {
		flags := []interface{}{imap.SeenFlag}
		if err := c.UidStore(done, imap.FormatFlagsOp(imap.AddFlags, true), flags, nil); err != nil {
			return created, fmt.Errorf("failed to mark messages seen: %w", err)
		}
	}
	return created, nil
}

func (p *Poller) fetch(c imapSession, uids []uint32) (map[uint32]string, error) {
	seqset := new(imap.SeqSet)
	seqset.AddNum(uids...)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchUid, section.FetchItem()}

	messages := make(chan *imap.Message, len(uids))
	errCh := make(chan error, 1)
	go func() {
		errCh <- c.UidFetch(seqset, items, messages)
	}()

	raw := make(map[uint32]string, len(uids))
	for msg := range messages {
		r := msg.GetBody(section)
		if r == nil {
			continue
		}
		b, err := io.ReadAll(r)
		if err != nil {
			p.logger.Warnw("failed to read message body", "uid", msg.Uid, "error", err)
			continue
		}
		raw[msg.Uid] = string(b)
	}
	if err := <-errCh; err != nil {
		return nil, fmt.Errorf("imap fetch failed: %w", err)
	}
	return raw, nil
}

// rejectedError marks a message that would fail the same way on every poll.
type rejectedError struct {
	err error
}

func (e *rejectedError) Error() string { return e.err.Error() }
func (e *rejectedError) Unwrap() error { return e.err }

// handle ingests one raw message. It reports false without error for
// duplicates, which are still marked seen.
func (p *Poller) handle(ctx context.Context, uid uint32, raw string) (bool, error) {
	parsed, err := Parse(strings.NewReader(raw))
	if err != nil {
		return false, &rejectedError{err: err}
	}

	if p.dedup != nil && parsed.MessageID != "" {
		claimed, err := p.dedup.TryClaim(ctx, parsed.MessageID)
		if err != nil {
			return false, err
		}
		if !claimed {
			p.logger.Infow("skipping duplicate message", "uid", uid, "message_id", parsed.MessageID)
			return false, nil
		}
	}

	attachments := make([]dto.AttachmentInput, 0, len(parsed.Attachments))
	for _, att := range parsed.Attachments {
		in, err := p.store.Save(att)
		if err != nil {
			p.store.Remove(attachments)
			p.release(ctx, parsed.MessageID)
			return false, err
		}
		attachments = append(attachments, in)
	}

	result, err := p.ingest.Execute(ctx, usecases.IngestInboundCommand{
		Subject:       parsed.Subject,
		CustomerEmail: parsed.FromEmail,
		FromEmail:     parsed.FromEmail,
		ToEmail:       p.recipient(parsed),
		CleanedText:   parsed.Text,
		RawHeaders:    parsed.Headers,
		Attachments:   attachments,
	})
	if err != nil {
		p.store.Remove(attachments)
		p.release(ctx, parsed.MessageID)
		if errors.IsValidationError(err) {
			return false, &rejectedError{err: err}
		}
		return false, err
	}

	p.logger.Infow("inbound email ingested",
		"uid", uid,
		"ticket_id", result.TicketID,
		"from", utils.MaskEmail(parsed.FromEmail),
		"subject", logutil.TruncateForLog(parsed.Subject, logSubjectMaxLen),
		"attachments", len(attachments),
	)
	return true, nil
}

// recipient falls back to the mailbox login when To is missing, as with Bcc delivery.
func (p *Poller) recipient(parsed *ParsedEmail) string {
	if parsed.ToEmail != "" {
		return parsed.ToEmail
	}
	return p.cfg.IMAPUser
}

func (p *Poller) release(ctx context.Context, messageID string) {
	if p.dedup == nil || messageID == "" {
		return
	}
	if err := p.dedup.Release(ctx, messageID); err != nil {
		p.logger.Warnw("failed to release message id", "message_id", messageID, "error", err)
	}
}
