package ticket

import (
	"context"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	// Update persists the ticket using its version counter as an optimistic
	// lock: the write applies only when the stored version still matches
	// the version the ticket was read at.
	Update(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// List returns tickets passing both the access predicate and the
	// explicit filters, newest first.
	List(ctx context.Context, pred authorization.Predicate, filter Filter) ([]*Ticket, int64, error)
	Stats(ctx context.Context) (*Stats, error)
}

type Filter struct {
	CompanyKey *string
	Status     *vo.TicketStatus
	Stage      *vo.Stage
}

// Stats is the dashboard aggregate over the ticket table.
type Stats struct {
	TotalTickets   int64
	OpenTickets    int64
	PendingTickets int64
	TotalRevenue   float64
}
