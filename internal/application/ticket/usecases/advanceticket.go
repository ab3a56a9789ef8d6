package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type AdvanceTicketCommand struct {
	Identity authorization.Identity
	TicketID uint
	Stage    string
	Value    float64
}

type AdvanceTicketResult struct {
	TicketID uint
	Status   string
	Stage    string
	Value    float64
	ClosedAt *time.Time
}

type AdvanceTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAdvanceTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *AdvanceTicketUseCase {
	return &AdvanceTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AdvanceTicketUseCase) Execute(ctx context.Context, cmd AdvanceTicketCommand) (*AdvanceTicketResult, error) {
	if !authorization.CanAdvanceTickets(cmd.Identity) {
		uc.logger.Warnw("ticket advance refused", "username", cmd.Identity.Username, "ticket_id", cmd.TicketID)
		return nil, errors.NewForbiddenError("only administrators can advance tickets")
	}

	stage, err := vo.NewStage(cmd.Stage)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	existing, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := existing.Advance(stage, cmd.Value); err != nil {
		switch {
		case stderrors.Is(err, ticket.ErrTicketClosed):
			return nil, errors.NewInvalidTransitionError("ticket is closed and accepts no further changes")
		case stderrors.Is(err, ticket.ErrNegativeValue):
			return nil, errors.NewInvalidValueError("value must not be negative")
		default:
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket advanced",
		"ticket_id", existing.ID(),
		"stage", existing.Stage().String(),
		"status", existing.Status().String(),
		"value", existing.Value(),
	)

	return &AdvanceTicketResult{
		TicketID: existing.ID(),
		Status:   existing.Status().String(),
		Stage:    existing.Stage().String(),
		Value:    existing.Value(),
		ClosedAt: existing.ClosedAt(),
	}, nil
}
