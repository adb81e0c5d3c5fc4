package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-ai/helpdesk/internal/shared/mapper"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAttachmentRepository(db *gorm.DB) *AttachmentRepository {
	return &AttachmentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *AttachmentRepository) ListByMessageID(ctx context.Context, messageID int64) ([]*ticket.Attachment, error) {
	var attachmentModels []models.AttachmentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("message_id = ?", messageID).
		Order("id ASC").
		Find(&attachmentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find attachments: %w", err)
	}

	return mapper.MapRefs(attachmentModels, r.mapper.AttachmentToDomain), nil
}
