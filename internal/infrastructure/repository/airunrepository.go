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

// AiRunRepository is append-only: there is no update or delete.
type AiRunRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewAiRunRepository(db *gorm.DB) *AiRunRepository {
	return &AiRunRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *AiRunRepository) Create(ctx context.Context, run *ticket.AiRun) error {
	model := r.mapper.AiRunToModel(run)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ai run: %w", err)
	}

	return run.SetID(model.ID)
}

func (r *AiRunRepository) ListByTicketID(ctx context.Context, ticketID int64) ([]*ticket.AiRun, error) {
	var runModels []models.AiRunModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&runModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find ai runs: %w", err)
	}

	return mapper.MapRefs(runModels, r.mapper.AiRunToDomain), nil
}
