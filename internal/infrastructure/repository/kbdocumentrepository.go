package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	apperrors "github.com/helpdesk-ai/helpdesk/internal/shared/errors"
)

// kbSearchSQL ranks active documents with PostgreSQL full-text search. The
// query text is parsed with websearch_to_tsquery, so quotes, "or" and "-" work
// the way users expect from web search boxes.
const kbSearchSQL = `
WITH q AS (
  SELECT websearch_to_tsquery(CAST(@cfg AS regconfig), @query) AS query
)
SELECT
  d.id,
  d.title,
  ts_rank_cd(d.search_tsv, q.query) AS rank,
  ts_headline(CAST(@cfg AS regconfig), d.body, q.query,
    'MaxWords=28, MinWords=10, ShortWord=3, MaxFragments=2, FragmentDelimiter= … ') AS snippet
FROM kb_documents d, q
WHERE d.status = 'active'
  AND d.search_tsv @@ q.query
ORDER BY rank DESC, d.id ASC
LIMIT @limit`

type KbDocumentRepository struct {
	db     *gorm.DB
	mapper mappers.KbDocumentMapper
}

func NewKbDocumentRepository(db *gorm.DB) *KbDocumentRepository {
	return &KbDocumentRepository{
		db:     db,
		mapper: mappers.NewKbDocumentMapper(),
	}
}

func (r *KbDocumentRepository) Create(ctx context.Context, doc *knowledge.Document) error {
	model := r.mapper.ToModel(doc)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save kb document: %w", err)
	}

	return doc.SetID(model.ID)
}

func (r *KbDocumentRepository) Update(ctx context.Context, doc *knowledge.Document) error {
	model := r.mapper.ToModel(doc)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.KbDocumentModel{}).
		Where("id = ?", model.ID).
		Select("title", "body", "tags", "language", "status", "updated_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update kb document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("KB document not found")
	}

	return nil
}

func (r *KbDocumentRepository) GetByID(ctx context.Context, id int64) (*knowledge.Document, error) {
	var model models.KbDocumentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("KB document not found")
		}
		return nil, fmt.Errorf("failed to find kb document: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *KbDocumentRepository) GetByTitle(ctx context.Context, title string) (*knowledge.Document, error) {
	var model models.KbDocumentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("title = ?", title).Order("id ASC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find kb document: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

type kbSearchRow struct {
	ID      int64
	Title   string
	Rank    float64
	Snippet string
}

// Search requires PostgreSQL. It joins the caller's transaction when there is one.
func (r *KbDocumentRepository) Search(ctx context.Context, q knowledge.SearchQuery) ([]knowledge.SearchHit, error) {
	var rows []kbSearchRow

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Raw(kbSearchSQL, map[string]any{
		"cfg":   q.TSConfig,
		"query": q.Text,
		"limit": q.Limit,
	}).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search kb documents: %w", err)
	}

	hits := make([]knowledge.SearchHit, len(rows))
	for i, row := range rows {
		hits[i] = knowledge.SearchHit{
			ID:      row.ID,
			Title:   row.Title,
			Rank:    row.Rank,
			Snippet: row.Snippet,
		}
	}
	return hits, nil
}
