package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/helpdesk-ai/helpdesk/internal/domain/knowledge"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/knowledge/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
)

type KbDocumentMapper interface {
	ToModel(doc *knowledge.Document) *models.KbDocumentModel
	ToDomain(model *models.KbDocumentModel) (*knowledge.Document, error)
}

type KbDocumentMapperImpl struct{}

func NewKbDocumentMapper() KbDocumentMapper {
	return &KbDocumentMapperImpl{}
}

func (m *KbDocumentMapperImpl) ToModel(doc *knowledge.Document) *models.KbDocumentModel {
	return &models.KbDocumentModel{
		ID:        doc.ID(),
		Title:     doc.Title(),
		Body:      doc.Body(),
		Tags:      datatypes.NewJSONSlice(doc.Tags()),
		Language:  doc.Language(),
		Status:    doc.Status().String(),
		UpdatedAt: doc.UpdatedAt(),
	}
}

func (m *KbDocumentMapperImpl) ToDomain(model *models.KbDocumentModel) (*knowledge.Document, error) {
	status, err := vo.NewDocumentStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("kb document %d: %w", model.ID, err)
	}

	return knowledge.ReconstructDocument(
		model.ID,
		model.Title,
		model.Body,
		[]string(model.Tags),
		model.Language,
		status,
		model.UpdatedAt.UTC(),
	)
}
