package usecases

import (
	"github.com/helpdesk-ai/helpdesk/internal/application/knowledge/dto"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/shared/errors"
)

type documentFields struct {
	title    string
	body     string
	tags     []string
	language string
	status   vo.DocumentStatus
}

func parseDocumentRequest(req dto.KbDocumentRequest) (documentFields, error) {
	f := documentFields{
		title:    req.Title,
		body:     req.Body,
		tags:     req.Tags,
		language: req.Language,
	}
	if f.tags == nil {
		f.tags = []string{}
	}

	if req.Status != "" {
		status, err := vo.NewDocumentStatus(req.Status)
		if err != nil {
			return documentFields{}, errors.NewValidationError(err.Error())
		}
		f.status = status
	}
	return f, nil
}
