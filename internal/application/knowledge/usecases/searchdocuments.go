package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/constants"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
	"github.com/helpdesk-ai/helpdesk/internal/shared/mapper"
)

// SearchDocumentsQuery carries a free-text query. Language is an optional
// override: a text search configuration name or a language code.
type SearchDocumentsQuery struct {
	Text     string
	Limit    int
	Language string
}

type SearchDocumentsUseCase struct {
	searcher knowledge.Searcher
	tsConfig string
	logger   logger.Interface
}

// NewSearchDocumentsUseCase takes the configured default text search
// configuration used when a query has no usable language override.
func NewSearchDocumentsUseCase(searcher knowledge.Searcher, tsConfig string, logger logger.Interface) *SearchDocumentsUseCase {
	return &SearchDocumentsUseCase{
		searcher: searcher,
		tsConfig: tsConfig,
		logger:   logger,
	}
}

func (uc *SearchDocumentsUseCase) Execute(ctx context.Context, query SearchDocumentsQuery) (*dto.KbSearchResponse, error) {
	limit := query.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > constants.MaxKBSearchLimit {
		limit = constants.MaxKBSearchLimit
	}

	cfg := vo.ResolveTextSearchConfig(query.Language, uc.tsConfig)

	hits, err := uc.searcher.Search(ctx, knowledge.SearchQuery{
		Text:     query.Text,
		Limit:    limit,
		TSConfig: cfg,
	})
	if err != nil {
		uc.logger.Errorw("kb search failed", "ts_config", cfg, "error", err)
		return nil, err
	}

	uc.logger.Debugw("kb search completed", "ts_config", cfg, "limit", limit, "hits", len(hits))

	items := mapper.MapSlice(hits, dto.ToKbSearchHitDTO)
	if items == nil {
		items = []dto.KbSearchHitDTO{}
	}

	return &dto.KbSearchResponse{
		Query: query.Text,
		Hits:  items,
	}, nil
}
