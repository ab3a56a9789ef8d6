package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/db"
	"helpdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(database *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     database,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update persists the ticket guarded by its version counter. The domain
// entity increments the version on every successful transition, so the
// stored row must still carry version-1; anything else means a concurrent
// writer advanced the ticket since it was read.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":    model.Status,
			"stage":     model.Stage,
			"value":     model.Value,
			"version":   model.Version,
			"closed_at": model.ClosedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Count(&exists).Error; err != nil {
			return fmt.Errorf("failed to check ticket existence: %w", err)
		}
		if exists == 0 {
			return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", model.ID))
		}
		return errors.NewStaleWriteError(fmt.Sprintf("ticket %d was modified concurrently", model.ID))
	}

	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, pred authorization.Predicate, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	query := tx.Model(&models.TicketModel{}).Scopes(pred.GormScope())
	if filter.CompanyKey != nil {
		query = query.Where("company_key = ?", *filter.CompanyKey)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Stage != nil {
		query = query.Where("stage = ?", filter.Stage.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	var rows []models.TicketModel
	if err := query.Order("id DESC").Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(rows))
	for i := range rows {
		t, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	stats := &ticket.Stats{}

	if err := tx.Model(&models.TicketModel{}).Count(&stats.TotalTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("status = ?", vo.StatusOpen.String()).
		Count(&stats.OpenTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to count open tickets: %w", err)
	}

	if err := tx.Model(&models.TicketModel{}).
		Where("stage = ?", vo.StagePending.String()).
		Count(&stats.PendingTickets).Error; err != nil {
		return nil, fmt.Errorf("failed to count pending tickets: %w", err)
	}

	var revenue *float64
	if err := tx.Model(&models.TicketModel{}).
		Select("SUM(value)").
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum ticket values: %w", err)
	}
	if revenue != nil {
		stats.TotalRevenue = *revenue
	}

	return stats, nil
}
