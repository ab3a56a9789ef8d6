package usecases

import (
	"context"
	"fmt"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type TicketResult struct {
	TicketID    uint
	CompanyKey  string
	Author      string
	Description string
	Status      string
	Stage       string
	Value       float64
	OpenedAt    time.Time
	ClosedAt    *time.Time
}

type GetTicketQuery struct {
	Identity authorization.Identity
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error) {
	existing, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	// A ticket outside the caller's company reads as absent: the response
	// must not confirm it exists.
	if !authorization.CanReadTicketOf(query.Identity, existing.CompanyKey()) {
		uc.logger.Warnw("cross-company ticket read refused",
			"username", query.Identity.Username,
			"ticket_id", query.TicketID,
		)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}

	result := toTicketResult(existing)
	return &result, nil
}

func toTicketResult(t *ticket.Ticket) TicketResult {
	return TicketResult{
		TicketID:    t.ID(),
		CompanyKey:  t.CompanyKey(),
		Author:      t.Author(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Stage:       t.Stage().String(),
		Value:       t.Value(),
		OpenedAt:    t.OpenedAt(),
		ClosedAt:    t.ClosedAt(),
	}
}
