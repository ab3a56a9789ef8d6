package usecases

import (
	"context"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetDashboardStatsQuery struct {
	Identity authorization.Identity
}

type GetDashboardStatsResult struct {
	TotalTickets   int64
	OpenTickets    int64
	PendingTickets int64
	TotalRevenue   float64
	TotalCompanies int64
}

// GetDashboardStatsUseCase aggregates the numbers the operations dashboard
// shows: ticket volume, backlog and the revenue recorded on closed work.
type GetDashboardStatsUseCase struct {
	ticketRepo  ticket.Repository
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetDashboardStatsUseCase(
	ticketRepo ticket.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *GetDashboardStatsUseCase {
	return &GetDashboardStatsUseCase{
		ticketRepo:  ticketRepo,
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetDashboardStatsUseCase) Execute(ctx context.Context, query GetDashboardStatsQuery) (*GetDashboardStatsResult, error) {
	if !query.Identity.IsAdmin() {
		return nil, errors.NewForbiddenError("only administrators can view the dashboard")
	}

	stats, err := uc.ticketRepo.Stats(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load ticket stats", "error", err)
		return nil, err
	}

	companies, err := uc.companyRepo.Count(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count companies", "error", err)
		return nil, err
	}

	return &GetDashboardStatsResult{
		TotalTickets:   stats.TotalTickets,
		OpenTickets:    stats.OpenTickets,
		PendingTickets: stats.PendingTickets,
		TotalRevenue:   stats.TotalRevenue,
		TotalCompanies: companies,
	}, nil
}
