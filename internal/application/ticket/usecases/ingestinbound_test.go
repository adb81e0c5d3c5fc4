package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/application/analyzer"
	"github.com/helpdesk-ai/helpdesk/internal/application/ticket/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/testutil"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/repository"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type ingestFixture struct {
	gdb      *gorm.DB
	searcher *mockSearcher
	uc       *IngestInboundUseCase
	tickets  *repository.TicketRepository
}

func newIngestFixture(t *testing.T) *ingestFixture {
	t.Helper()
	gdb := testutil.NewSQLiteDB(t)
	searcher := &mockSearcher{}
	tickets := repository.NewTicketRepository(gdb)

	uc := NewIngestInboundUseCase(
		tickets,
		repository.NewMessageRepository(gdb),
		repository.NewAttachmentRepository(gdb),
		repository.NewAiRunRepository(gdb),
		searcher,
		analyzer.New(analyzer.LegacyPriority),
		db.NewTransactionManager(gdb),
		"russian",
		logger.NewNopLogger(),
	)
	return &ingestFixture{gdb: gdb, searcher: searcher, uc: uc, tickets: tickets}
}

func (f *ingestFixture) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.gdb.Model(model).Count(&n).Error)
	return n
}

func billingCommand() IngestInboundCommand {
	return IngestInboundCommand{
		Subject:       "Ошибка оплаты",
		CustomerEmail: "a@b.com",
		FromEmail:     "a@b.com",
		ToEmail:       "support@example.com",
		CleanedText:   "Срочно! Не проходит платеж, error E502",
		RawHeaders:    map[string]any{"Message-ID": "<m1@example.com>"},
	}
}

func TestIngestInboundUseCase_Execute_BillingScenario(t *testing.T) {
	f := newIngestFixture(t)
	f.searcher.SearchFunc = func(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error) {
		return []knowledge.SearchHit{{ID: 7, Title: "Платежи", Rank: 0.4, Snippet: "…платеж…"}}, nil
	}

	result, err := f.uc.Execute(context.Background(), billingCommand())
	require.NoError(t, err)
	require.NotZero(t, result.TicketID)

	tk, err := f.tickets.GetByID(context.Background(), result.TicketID)
	require.NoError(t, err)
	assert.Equal(t, "billing", tk.Category())
	assert.Equal(t, vo.PriorityHigh, tk.Priority())
	assert.Equal(t, 70, tk.AIConfidence())
	assert.Equal(t, vo.StatusNeedsInfo, tk.Status())
	assert.NotEmpty(t, tk.AIDraftReply())

	actions := tk.AISuggestedActions()
	assert.Equal(t, "request_info", actions["next_step"])
	require.Contains(t, actions, "kb_hits")
	assert.Len(t, actions["kb_hits"], 1)
	entities, ok := actions["entities"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"E502"}, entities["error_codes"])

	assert.Equal(t, int64(1), f.count(t, &models.TicketModel{}))
	assert.Equal(t, int64(1), f.count(t, &models.MessageModel{}))
	assert.Equal(t, int64(1), f.count(t, &models.AiRunModel{}))

	require.Len(t, f.searcher.calls, 1)
	assert.Equal(t, 5, f.searcher.calls[0].Limit)
	assert.Equal(t, "russian", f.searcher.calls[0].TSConfig)
	assert.Equal(t, "Ошибка оплаты\nСрочно! Не проходит платеж, error E502", f.searcher.calls[0].Text)
}

func TestIngestInboundUseCase_Execute_AiRunOutputs(t *testing.T) {
	f := newIngestFixture(t)

	result, err := f.uc.Execute(context.Background(), billingCommand())
	require.NoError(t, err)

	runs, err := repository.NewAiRunRepository(f.gdb).ListByTicketID(context.Background(), result.TicketID)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, 70, run.Confidence())
	assert.Equal(t, "heuristics-v1", run.ModelVersions()["mvp"])
	for _, key := range []string{"summary", "draft_reply", "entities", "missing_info", "kb_hits"} {
		assert.Contains(t, run.Outputs(), key)
	}
	assert.NotEmpty(t, run.Outputs()["missing_info"])
}

func TestIngestInboundUseCase_Execute_SearchFailureRollsBack(t *testing.T) {
	f := newIngestFixture(t)
	f.searcher.SearchFunc = func(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error) {
		return nil, fmt.Errorf("failed to search kb documents: relation does not exist")
	}

	result, err := f.uc.Execute(context.Background(), billingCommand())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Zero(t, f.count(t, &models.TicketModel{}))
	assert.Zero(t, f.count(t, &models.MessageModel{}))
	assert.Zero(t, f.count(t, &models.AiRunModel{}))
}

func TestIngestInboundUseCase_Execute_WithAttachments(t *testing.T) {
	f := newIngestFixture(t)
	cmd := billingCommand()
	cmd.Attachments = []dto.AttachmentInput{
		{Filename: "screen.png", MimeType: "image/png", SizeBytes: 2048, StoragePath: "/data/attachments/1/screen.png"},
	}

	result, err := f.uc.Execute(context.Background(), cmd)
	require.NoError(t, err)

	atts, err := repository.NewAttachmentRepository(f.gdb).ListByMessageID(context.Background(), result.MessageID)
	require.NoError(t, err)
	require.Len(t, atts, 1)
	assert.Equal(t, "screen.png", atts[0].Filename())
	assert.Equal(t, int64(2048), atts[0].SizeBytes())
}

func TestIngestInboundUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cmd *IngestInboundCommand)
	}{
		{"missing customer email", func(cmd *IngestInboundCommand) { cmd.CustomerEmail = "" }},
		{"missing from email", func(cmd *IngestInboundCommand) { cmd.FromEmail = " " }},
		{"missing to email", func(cmd *IngestInboundCommand) { cmd.ToEmail = "" }},
		{"attachment without path", func(cmd *IngestInboundCommand) {
			cmd.Attachments = []dto.AttachmentInput{{Filename: "a.txt"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t)
			cmd := billingCommand()
			tt.modify(&cmd)

			_, err := f.uc.Execute(context.Background(), cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Empty(t, f.searcher.calls)
			assert.Zero(t, f.count(t, &models.TicketModel{}))
		})
	}
}

func TestIngestInboundUseCase_Execute_EmptyTextStillClassified(t *testing.T) {
	f := newIngestFixture(t)

	result, err := f.uc.Execute(context.Background(), IngestInboundCommand{
		CustomerEmail: "a@b.com",
		FromEmail:     "a@b.com",
		ToEmail:       "support@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, "general", result.Category)
	assert.Equal(t, "medium", result.Priority)
	assert.Equal(t, "needs_info", result.Status)
}

func TestKBQuery_TruncatesRunes(t *testing.T) {
	body := strings.Repeat("ж", 1000)

	q := kbQuery("Тема", body)

	assert.Equal(t, 800, utf8.RuneCountInString(q))
	assert.True(t, strings.HasPrefix(q, "Тема\n"))
	assert.True(t, utf8.ValidString(q))
	assert.Equal(t, "a\nb", kbQuery("a", "b"))
}
