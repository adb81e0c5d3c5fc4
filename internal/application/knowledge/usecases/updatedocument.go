package usecases

import (
	"context"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type UpdateDocumentCommand struct {
	ID      int64
	Request dto.KbDocumentRequest
}

// UpdateDocumentUseCase replaces every editable field of a document.
type UpdateDocumentUseCase struct {
	repo   knowledge.DocumentRepository
	logger logger.Interface
}

func NewUpdateDocumentUseCase(repo knowledge.DocumentRepository, logger logger.Interface) *UpdateDocumentUseCase {
	return &UpdateDocumentUseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UpdateDocumentUseCase) Execute(ctx context.Context, cmd UpdateDocumentCommand) (*dto.KbDocumentDTO, error) {
	uc.logger.Infow("executing update kb document use case", "id", cmd.ID)

	if cmd.ID <= 0 {
		return nil, errors.NewNotFoundError("KB document not found")
	}

	f, err := parseDocumentRequest(cmd.Request)
	if err != nil {
		return nil, err
	}

	doc, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	if err := doc.Update(f.title, f.body, f.tags, f.language, f.status); err != nil {
		uc.logger.Warnw("invalid kb document update", "id", cmd.ID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Update(ctx, doc); err != nil {
		uc.logger.Errorw("failed to update kb document", "id", cmd.ID, "error", err)
		return nil, err
	}

	uc.logger.Infow("kb document updated", "id", doc.ID())
	return dto.ToKbDocumentDTO(doc), nil
}
