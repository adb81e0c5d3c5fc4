package mailbox

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/emersion/go-imap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdesk-ai/helpdesk/internal/shared/config"
	apperrors "github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type fakeSession struct {
	messages map[uint32]string
	loggedIn bool
	selected string
	seen     []uint32
}

func (s *fakeSession) Login(username, password string) error {
	s.loggedIn = true
	return nil
}

func (s *fakeSession) Select(name string, readOnly bool) (*imap.MailboxStatus, error) {
	s.selected = name
	return &imap.MailboxStatus{Name: name}, nil
}

// UidSearch honors the \Seen exclusion the poller asks for.
func (s *fakeSession) UidSearch(criteria *imap.SearchCriteria) ([]uint32, error) {
	var uids []uint32
	for uid := uint32(1); uid <= uint32(len(s.messages)); uid++ {
		if _, ok := s.messages[uid]; ok && !slices.Contains(s.seen, uid) {
			uids = append(uids, uid)
		}
	}
	return uids, nil
}

func (s *fakeSession) UidFetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error {
	defer close(ch)
	section, err := imap.ParseBodySectionName(imap.FetchItem("BODY[]"))
	if err != nil {
		return err
	}
	for uid, raw := range s.messages {
		if !seqset.Contains(uid) {
			continue
		}
		msg := imap.NewMessage(uid, items)
		msg.Uid = uid
		msg.Body = map[*imap.BodySectionName]imap.Literal{section: strings.NewReader(raw)}
		ch <- msg
	}
	return nil
}

func (s *fakeSession) UidStore(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error {
	for uid := range s.messages {
		if seqset.Contains(uid) {
			s.seen = append(s.seen, uid)
		}
	}
	return nil
}

func (s *fakeSession) Logout() error { return nil }

type fakeIngest struct {
	commands  []usecases.IngestInboundCommand
	failFor   string
	rejectFor string
}

func (f *fakeIngest) Execute(ctx context.Context, cmd usecases.IngestInboundCommand) (*usecases.IngestInboundResult, error) {
	if f.failFor != "" && cmd.Subject == f.failFor {
		return nil, fmt.Errorf("db down")
	}
	if cmd.CustomerEmail == "" {
		return nil, apperrors.NewValidationError("customer_email is required")
	}
	if f.rejectFor != "" && cmd.Subject == f.rejectFor {
		return nil, apperrors.NewValidationError("subject is too long")
	}
	f.commands = append(f.commands, cmd)
	return &usecases.IngestInboundResult{TicketID: int64(len(f.commands))}, nil
}

type memDedup struct {
	claimed map[string]bool
}

func (d *memDedup) TryClaim(ctx context.Context, id string) (bool, error) {
	if d.claimed[id] {
		return false, nil
	}
	d.claimed[id] = true
	return true, nil
}

func (d *memDedup) Release(ctx context.Context, id string) error {
	delete(d.claimed, id)
	return nil
}

func rawEmail(subject, messageID, body string) string {
	return crlf(fmt.Sprintf("From: a@b.com\nTo: support@example.com\nSubject: %s\nMessage-ID: %s\n\n%s\n",
		subject, messageID, body))
}

func newTestPoller(t *testing.T, session *fakeSession, ingest *fakeIngest, dedup Deduplicator) *Poller {
	cfg := &config.MailboxConfig{IMAPUser: "support@example.com", AttachmentsDir: t.TempDir()}
	p := NewPoller(cfg, ingest, dedup, logger.NewNopLogger())
	p.dial = func(*config.MailboxConfig) (imapSession, error) { return session, nil }
	return p
}

func TestPoller_PollOnce(t *testing.T) {
	session := &fakeSession{messages: map[uint32]string{
		1: rawEmail("Ошибка оплаты", "<m1@b.com>", "Срочно! error E502"),
		2: rawEmail("Вопрос", "<m2@b.com>", "Как сделать экспорт?"),
	}}
	ingest := &fakeIngest{}

	created, err := newTestPoller(t, session, ingest, nil).PollOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.True(t, session.loggedIn)
	assert.Equal(t, "INBOX", session.selected)
	assert.ElementsMatch(t, []uint32{1, 2}, session.seen)
	require.Len(t, ingest.commands, 2)

	for _, cmd := range ingest.commands {
		assert.Equal(t, "a@b.com", cmd.CustomerEmail)
		assert.Equal(t, "support@example.com", cmd.ToEmail)
		assert.NotEmpty(t, cmd.RawHeaders["Message-Id"])
	}
}

func TestPoller_FailedIngestStaysUnseen(t *testing.T) {
	session := &fakeSession{messages: map[uint32]string{
		1: rawEmail("ok", "<m1@b.com>", "body"),
		2: rawEmail("broken", "<m2@b.com>", "body"),
	}}
	ingest := &fakeIngest{failFor: "broken"}
	dedup := &memDedup{claimed: map[string]bool{}}

	created, err := newTestPoller(t, session, ingest, dedup).PollOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, created)
	assert.Equal(t, []uint32{1}, session.seen)
	assert.False(t, dedup.claimed["<m2@b.com>"], "failed message must be released for retry")
}

func TestPoller_SkipsDuplicates(t *testing.T) {
	session := &fakeSession{messages: map[uint32]string{
		1: rawEmail("dup", "<m1@b.com>", "body"),
	}}
	ingest := &fakeIngest{}
	dedup := &memDedup{claimed: map[string]bool{"<m1@b.com>": true}}

	created, err := newTestPoller(t, session, ingest, dedup).PollOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, ingest.commands)
	assert.Equal(t, []uint32{1}, session.seen)
}

func TestPoller_StoresAttachments(t *testing.T) {
	raw := crlf(`From: a@b.com
To: support@example.com
Subject: Logs
Message-ID: <m9@b.com>
Content-Type: multipart/mixed; boundary=b

--b
Content-Type: text/plain

see attached
--b
Content-Type: text/plain
Content-Disposition: attachment; filename="app.log"

boom
--b--
`)
	session := &fakeSession{messages: map[uint32]string{1: raw}}
	ingest := &fakeIngest{}

	_, err := newTestPoller(t, session, ingest, nil).PollOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, ingest.commands, 1)
	atts := ingest.commands[0].Attachments
	require.Len(t, atts, 1)
	assert.Equal(t, "app.log", atts[0].Filename)

	data, err := os.ReadFile(atts[0].StoragePath)
	require.NoError(t, err)
	assert.Equal(t, "boom", strings.TrimSpace(string(data)))
}

func TestPoller_RejectedMessagesDoNotBlockBatch(t *testing.T) {
	noSender := crlf("To: support@example.com\nSubject: no sender\nMessage-ID: <m1@b.com>\n\nbody\n")
	session := &fakeSession{messages: map[uint32]string{
		1: noSender,
		2: rawEmail("rejected", "<m2@b.com>", "body"),
		3: rawEmail("valid", "<m3@b.com>", "body"),
	}}
	ingest := &fakeIngest{rejectFor: "rejected"}
	p := newTestPoller(t, session, ingest, &memDedup{claimed: map[string]bool{}})
	p.cfg.BatchSize = 2

	created, err := p.PollOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, created)
	assert.ElementsMatch(t, []uint32{1, 2}, session.seen)

	created, err = p.PollOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, created)
	require.Len(t, ingest.commands, 1)
	assert.Equal(t, "valid", ingest.commands[0].Subject)
	assert.ElementsMatch(t, []uint32{1, 2, 3}, session.seen)
}

func TestPoller_OversizedAttachmentIsRejected(t *testing.T) {
	raw := crlf("From: a@b.com\nTo: support@example.com\nSubject: big\nMessage-ID: <m5@b.com>\n" +
		"Content-Type: multipart/mixed; boundary=b\n\n--b\nContent-Type: text/plain\n\nsee attached\n" +
		"--b\nContent-Type: application/octet-stream\nContent-Disposition: attachment; filename=\"dump.bin\"\n\n" +
		strings.Repeat("x", maxAttachmentBytes+1) + "\n--b--\n")
	session := &fakeSession{messages: map[uint32]string{1: raw}}
	ingest := &fakeIngest{}

	created, err := newTestPoller(t, session, ingest, nil).PollOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, created)
	assert.Empty(t, ingest.commands)
	assert.Equal(t, []uint32{1}, session.seen)
}
