package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/helpdesk-ai/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-ai/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-ai/helpdesk/internal/shared/mapper"
	"github.com/helpdesk-ai/helpdesk/internal/shared/db"
	apperrors "github.com/helpdesk-ai/helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes every column, including zero values such as an empty category.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at", clause.Associations).
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Ticket not found")
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("Ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.TicketFilter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Query != "" {
		query = r.matchSubjectOrEmail(query, filter.Query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var ticketModels []models.TicketModel
	if err := query.
		Scopes(db.NewestFirst(), db.Paginate(filter.Limit, filter.Offset)).
		Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets, err := r.toDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Scopes(db.NewestFirst()).Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(ticketModels)
}

// matchSubjectOrEmail applies a case-insensitive substring match. PostgreSQL
// gets ILIKE; other dialects (SQLite in tests) fall back to LOWER() LIKE.
func (r *TicketRepository) matchSubjectOrEmail(query *gorm.DB, q string) *gorm.DB {
	pattern := "%" + q + "%"
	if r.db.Dialector.Name() == "postgres" {
		return query.Where("subject ILIKE ? OR customer_email ILIKE ?", pattern, pattern)
	}
	return query.Where("LOWER(subject) LIKE LOWER(?) OR LOWER(customer_email) LIKE LOWER(?)", pattern, pattern)
}

func (r *TicketRepository) toDomainList(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	return mapper.MapRefsWithError(ticketModels, r.mapper.ToDomain)
}
