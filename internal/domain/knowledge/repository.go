package knowledge

import "context"

// SearchHit is one ranked match with a highlighted body excerpt.
type SearchHit struct {
	ID      int64
	Title   string
	Rank    float64
	Snippet string
}

// SearchQuery is a natural-language query against active documents.
// TSConfig must already be resolved to a known text search configuration.
type SearchQuery struct {
	Text     string
	Limit    int
	TSConfig string
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	Update(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id int64) (*Document, error)
	// GetByTitle returns nil without error when no document has that title.
	GetByTitle(ctx context.Context, title string) (*Document, error)
}

// Searcher ranks active documents against a query. Zero hits is not an error.
type Searcher interface {
	Search(ctx context.Context, query SearchQuery) ([]SearchHit, error)
}
