package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type GetDocumentUseCase struct {
	repo   knowledge.DocumentRepository
	logger logger.Interface
}

func NewGetDocumentUseCase(repo knowledge.DocumentRepository, logger logger.Interface) *GetDocumentUseCase {
	return &GetDocumentUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *GetDocumentUseCase) Execute(ctx context.Context, id int64) (*dto.KbDocumentDTO, error) {
	if id <= 0 {
		return nil, errors.NewNotFoundError("KB document not found")
	}

	doc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToKbDocumentDTO(doc), nil
}
