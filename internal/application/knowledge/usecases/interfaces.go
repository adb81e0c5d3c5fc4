package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
)

type CreateDocumentExecutor interface {
	Execute(ctx context.Context, req dto.KbDocumentRequest) (*dto.KbDocumentDTO, error)
}

type UpdateDocumentExecutor interface {
	Execute(ctx context.Context, cmd UpdateDocumentCommand) (*dto.KbDocumentDTO, error)
}

type GetDocumentExecutor interface {
	Execute(ctx context.Context, id int64) (*dto.KbDocumentDTO, error)
}

type SearchDocumentsExecutor interface {
	Execute(ctx context.Context, query SearchDocumentsQuery) (*dto.KbSearchResponse, error)
}
