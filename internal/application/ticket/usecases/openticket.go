package usecases

import (
	"context"
	stderrors "errors"
	"time"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

type OpenTicketCommand struct {
	Identity    authorization.Identity
	Description string
	// CompanyKey is optional for client contacts, whose tickets always
	// land on their own company. Administrators must name the company
	// they are opening on behalf of.
	CompanyKey string
}

type OpenTicketResult struct {
	TicketID   uint
	CompanyKey string
	Author     string
	Status     string
	Stage      string
	OpenedAt   time.Time
}

type OpenTicketUseCase struct {
	ticketRepo  ticket.Repository
	companyRepo company.Repository
	notifier    TicketNotifier
	logger      logger.Interface
}

func NewOpenTicketUseCase(
	ticketRepo ticket.Repository,
	companyRepo company.Repository,
	notifier TicketNotifier,
	logger logger.Interface,
) *OpenTicketUseCase {
	return &OpenTicketUseCase{
		ticketRepo:  ticketRepo,
		companyRepo: companyRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (uc *OpenTicketUseCase) Execute(ctx context.Context, cmd OpenTicketCommand) (*OpenTicketResult, error) {
	companyKey := cmd.CompanyKey
	if companyKey == "" {
		companyKey = cmd.Identity.CompanyKey
	}
	if companyKey == "" {
		return nil, errors.NewValidationError("company key is required")
	}

	if !authorization.CanOpenTicketFor(cmd.Identity, companyKey) {
		uc.logger.Warnw("ticket opening refused",
			"username", cmd.Identity.Username,
			"company_key", companyKey,
		)
		return nil, errors.NewForbiddenError("cannot open tickets for another company")
	}

	if _, err := uc.companyRepo.GetByKey(ctx, companyKey); err != nil {
		return nil, err
	}

	// The author attribute is the human-readable display name, not the
	// login name.
	newTicket, err := ticket.NewTicket(companyKey, cmd.Identity.DisplayName, cmd.Description)
	if err != nil {
		if stderrors.Is(err, ticket.ErrEmptyDescription) {
			return nil, errors.NewEmptyDescriptionError()
		}
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "company_key", companyKey)
		return nil, err
	}

	uc.logger.Infow("ticket opened",
		"ticket_id", newTicket.ID(),
		"company_key", companyKey,
		"author", newTicket.Author(),
	)

	uc.notifyOpened(newTicket)

	return &OpenTicketResult{
		TicketID:   newTicket.ID(),
		CompanyKey: newTicket.CompanyKey(),
		Author:     newTicket.Author(),
		Status:     newTicket.Status().String(),
		Stage:      newTicket.Stage().String(),
		OpenedAt:   newTicket.OpenedAt(),
	}, nil
}

func (uc *OpenTicketUseCase) notifyOpened(t *ticket.Ticket) {
	if uc.notifier == nil {
		return
	}

	ticketID := t.ID()
	companyKey := t.CompanyKey()
	author := t.Author()
	description := t.Description()

	goroutine.SafeGo(uc.logger, "ticket-opened-notification", func() {
		if err := uc.notifier.SendTicketOpened(ticketID, companyKey, author, description); err != nil {
			uc.logger.Warnw("failed to send ticket notification", "error", err, "ticket_id", ticketID)
		}
	})
}
