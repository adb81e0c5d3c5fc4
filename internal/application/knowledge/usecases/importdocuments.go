package usecases

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
	"github.com/helpdesk-ai/helpdesk/internal/shared/logger"
)

type ImportDocumentsResult struct {
	Created int
	Updated int
}

// ImportDocumentsUseCase upserts documents from a YAML seed file, matching
// existing documents by title. The whole file is applied in one transaction.
type ImportDocumentsUseCase struct {
	repo   knowledge.DocumentRepository
	txMgr  *db.TransactionManager
	logger logger.Interface
}

func NewImportDocumentsUseCase(repo knowledge.DocumentRepository, txMgr *db.TransactionManager, logger logger.Interface) *ImportDocumentsUseCase {
	return &ImportDocumentsUseCase{
		repo:   repo,
		txMgr:  txMgr,
		logger: logger,
	}
}

func (uc *ImportDocumentsUseCase) Execute(ctx context.Context, data []byte) (*ImportDocumentsResult, error) {
	var file dto.ImportFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, errors.NewValidationError("invalid import file", err.Error())
	}

	for i, req := range file.Documents {
		if strings.TrimSpace(req.Title) == "" {
			return nil, errors.NewValidationError(fmt.Sprintf("document %d: title is required", i+1))
		}
	}

	result := &ImportDocumentsResult{}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for i, req := range file.Documents {
			created, err := uc.upsert(txCtx, req)
			if err != nil {
				return fmt.Errorf("document %d (%s): %w", i+1, req.Title, err)
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("kb import failed", "error", err)
		return nil, err
	}

	uc.logger.Infow("kb import completed", "created", result.Created, "updated", result.Updated)
	return result, nil
}

func (uc *ImportDocumentsUseCase) upsert(ctx context.Context, req dto.KbDocumentRequest) (bool, error) {
	f, err := parseDocumentRequest(req)
	if err != nil {
		return false, err
	}

	existing, err := uc.repo.GetByTitle(ctx, f.title)
	if err != nil {
		return false, err
	}

	if existing == nil {
		doc, err := knowledge.NewDocument(f.title, f.body, f.tags, f.language, f.status)
		if err != nil {
			return false, errors.NewValidationError(err.Error())
		}
		return true, uc.repo.Create(ctx, doc)
	}

	if err := existing.Update(f.title, f.body, f.tags, f.language, f.status); err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	return false, uc.repo.Update(ctx, existing)
}
