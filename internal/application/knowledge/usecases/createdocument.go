package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type CreateDocumentUseCase struct {
	repo   knowledge.DocumentRepository
	logger logger.Interface
}

func NewCreateDocumentUseCase(repo knowledge.DocumentRepository, logger logger.Interface) *CreateDocumentUseCase {
	return &CreateDocumentUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *CreateDocumentUseCase) Execute(ctx context.Context, req dto.KbDocumentRequest) (*dto.KbDocumentDTO, error) {
	uc.logger.Infow("executing create kb document use case", "title", req.Title)

	f, err := parseDocumentRequest(req)
	if err != nil {
		return nil, err
	}

	doc, err := knowledge.NewDocument(f.title, f.body, f.tags, f.language, f.status)
	if err != nil {
		uc.logger.Warnw("invalid kb document", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, doc); err != nil {
		uc.logger.Errorw("failed to create kb document", "error", err)
		return nil, err
	}

	uc.logger.Infow("kb document created", "id", doc.ID())
	return dto.ToKbDocumentDTO(doc), nil
}
