package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-ai/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-ai/helpdesk/internal/shared/mapper"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *MessageRepository) Create(ctx context.Context, m *ticket.Message) error {
	model := r.mapper.MessageToModel(m)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return m.SetID(model.ID)
}

func (r *MessageRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.Message, error) {
	var messageModels []models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&messageModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find messages: %w", err)
	}

	return mapper.MapRefsWithError(messageModels, r.mapper.MessageToDomain)
}

func (r *MessageRepository) LatestInbound(ctx context.Context, ticketID int64) (*ticket.Message, error) {
	var model models.MessageModel

	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.
		Where("ticket_id = ? AND direction = ?", ticketID, vo.DirectionInbound.String()).
		Order("created_at DESC").
		Order("id DESC").
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find latest inbound message: %w", err)
	}

	return r.mapper.MessageToDomain(&model)
}
