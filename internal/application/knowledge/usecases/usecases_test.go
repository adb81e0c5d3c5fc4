package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/testutil"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/repository"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type mockSearcher struct {
	SearchFunc func(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error)
	last       knowledge.SearchQuery
}

func (m *mockSearcher) Search(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error) {
	m.last = q
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, q)
	}
	return nil, nil
}

func TestCreateThenGetDocument(t *testing.T) {
	repo := repository.NewKbDocumentRepository(testutil.NewSQLiteDB(t))
	log := logger.NewNopLogger()
	ctx := context.Background()

	created, err := NewCreateDocumentUseCase(repo, log).Execute(ctx, dto.KbDocumentRequest{
		Title:    "Возврат средств",
		Body:     "Возврат оформляется в течение 5 рабочих дней.",
		Tags:     []string{"billing", "refund"},
		Language: "ru",
		Status:   "active",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := NewGetDocumentUseCase(repo, log).Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)
	assert.Equal(t, created.Body, got.Body)
	assert.Equal(t, []string{"billing", "refund"}, got.Tags)
	assert.Equal(t, "ru", got.Language)
	assert.Equal(t, "active", got.Status)
}

func TestCreateDocument_Defaults(t *testing.T) {
	repo := repository.NewKbDocumentRepository(testutil.NewSQLiteDB(t))

	created, err := NewCreateDocumentUseCase(repo, logger.NewNopLogger()).
		Execute(context.Background(), dto.KbDocumentRequest{Title: "FAQ"})

	require.NoError(t, err)
	assert.Equal(t, []string{}, created.Tags)
	assert.Equal(t, "ru", created.Language)
	assert.Equal(t, "active", created.Status)
}

func TestCreateDocument_Invalid(t *testing.T) {
	repo := repository.NewKbDocumentRepository(testutil.NewSQLiteDB(t))
	uc := NewCreateDocumentUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), dto.KbDocumentRequest{Title: "x", Status: "draft"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), dto.KbDocumentRequest{Title: "   "})
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateDocument(t *testing.T) {
	repo := repository.NewKbDocumentRepository(testutil.NewSQLiteDB(t))
	log := logger.NewNopLogger()
	ctx := context.Background()

	created, err := NewCreateDocumentUseCase(repo, log).Execute(ctx, dto.KbDocumentRequest{
		Title: "Вход", Body: "old", Tags: []string{"login"},
	})
	require.NoError(t, err)

	updated, err := NewUpdateDocumentUseCase(repo, log).Execute(ctx, UpdateDocumentCommand{
		ID: created.ID,
		Request: dto.KbDocumentRequest{
			Title: "Login help", Body: "new", Language: "en", Status: "archived",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Login help", updated.Title)
	assert.Equal(t, []string{}, updated.Tags)

	got, err := NewGetDocumentUseCase(repo, log).Execute(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Body)
	assert.Equal(t, "en", got.Language)
	assert.Equal(t, "archived", got.Status)
}

func TestUpdateAndGetDocument_NotFound(t *testing.T) {
	repo := repository.NewKbDocumentRepository(testutil.NewSQLiteDB(t))
	log := logger.NewNopLogger()

	_, err := NewUpdateDocumentUseCase(repo, log).Execute(context.Background(), UpdateDocumentCommand{
		ID: 404, Request: dto.KbDocumentRequest{Title: "x"},
	})
	assert.True(t, errors.IsNotFoundError(err))

	_, err = NewGetDocumentUseCase(repo, log).Execute(context.Background(), 404)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSearchDocuments(t *testing.T) {
	tests := []struct {
		name      string
		query     SearchDocumentsQuery
		wantLimit int
		wantCfg   string
	}{
		{"defaults", SearchDocumentsQuery{Text: "пароль", Limit: 5}, 5, "russian"},
		{"limit clamped high", SearchDocumentsQuery{Text: "q", Limit: 500}, 20, "russian"},
		{"limit clamped low", SearchDocumentsQuery{Text: "q", Limit: 0}, 1, "russian"},
		{"language code override", SearchDocumentsQuery{Text: "q", Limit: 5, Language: "en-US"}, 5, "english"},
		{"config name override", SearchDocumentsQuery{Text: "q", Limit: 5, Language: "german"}, 5, "german"},
		{"unknown override falls back", SearchDocumentsQuery{Text: "q", Limit: 5, Language: "klingon"}, 5, "russian"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &mockSearcher{}
			uc := NewSearchDocumentsUseCase(searcher, "russian", logger.NewNopLogger())

			resp, err := uc.Execute(context.Background(), tt.query)

			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, searcher.last.Limit)
			assert.Equal(t, tt.wantCfg, searcher.last.TSConfig)
			assert.Equal(t, tt.query.Text, resp.Query)
			assert.NotNil(t, resp.Hits)
		})
	}
}

func TestSearchDocuments_MapsHits(t *testing.T) {
	searcher := &mockSearcher{
		SearchFunc: func(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error) {
			return []knowledge.SearchHit{{ID: 1, Title: "Сброс пароля", Rank: 0.2, Snippet: "<b>пароль</b>"}}, nil
		},
	}

	resp, err := NewSearchDocumentsUseCase(searcher, "simple", logger.NewNopLogger()).
		Execute(context.Background(), SearchDocumentsQuery{Text: "пароль", Limit: 5})

	require.NoError(t, err)
	require.Len(t, resp.Hits, 1)
	assert.Equal(t, dto.KbSearchHitDTO{ID: 1, Title: "Сброс пароля", Rank: 0.2, Snippet: "<b>пароль</b>"}, resp.Hits[0])
}

const importYAML = `
documents:
  - title: Сброс пароля
    body: Нажмите «Забыли пароль» на странице входа.
    tags: [login]
  - title: Refunds
    body: Refunds take 5 business days.
    tags: [billing]
    language: en
`

func TestImportDocuments_Upsert(t *testing.T) {
	gdb := testutil.NewSQLiteDB(t)
	repo := repository.NewKbDocumentRepository(gdb)
	uc := NewImportDocumentsUseCase(repo, db.NewTransactionManager(gdb), logger.NewNopLogger())
	ctx := context.Background()

	res, err := uc.Execute(ctx, []byte(importYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)
	assert.Zero(t, res.Updated)

	res, err = uc.Execute(ctx, []byte(`
documents:
  - title: Refunds
    body: Refunds take 10 business days.
    language: en
    status: archived
`))
	require.NoError(t, err)
	assert.Zero(t, res.Created)
	assert.Equal(t, 1, res.Updated)

	doc, err := repo.GetByTitle(ctx, "Refunds")
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "Refunds take 10 business days.", doc.Body())
	assert.Equal(t, "archived", doc.Status().String())
}

func TestImportDocuments_InvalidFileWritesNothing(t *testing.T) {
	gdb := testutil.NewSQLiteDB(t)
	repo := repository.NewKbDocumentRepository(gdb)
	uc := NewImportDocumentsUseCase(repo, db.NewTransactionManager(gdb), logger.NewNopLogger())
	ctx := context.Background()

	_, err := uc.Execute(ctx, []byte("documents:\n  - titel: typo\n"))
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(ctx, []byte(`
documents:
  - title: First
  - title: Second
    status: draft
`))
	require.Error(t, err)

	doc, err := repo.GetByTitle(ctx, "First")
	require.NoError(t, err)
	assert.Nil(t, doc)
}
