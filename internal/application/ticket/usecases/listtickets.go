package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Identity   authorization.Identity
	CompanyKey *string
	Status     *string
	Stage      *string
}

type ListTicketsResult struct {
	Tickets []TicketResult
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	pred, err := authorization.Scope(query.Identity, authorization.EntityTicket)
	if err != nil {
		return nil, err
	}

	filter := ticket.Filter{CompanyKey: query.CompanyKey}

	if query.Status != nil {
		status, err := vo.NewTicketStatus(*query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}

	if query.Stage != nil {
		stage, err := vo.NewStage(*query.Stage)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Stage = &stage
	}

	tickets, total, err := uc.ticketRepo.List(ctx, pred, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	results := make([]TicketResult, 0, len(tickets))
	for _, t := range tickets {
		results = append(results, toTicketResult(t))
	}

	return &ListTicketsResult{
		Tickets: results,
		Total:   total,
	}, nil
}
