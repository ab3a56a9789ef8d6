package usecases

import "context"

type OpenTicketExecutor interface {
	Execute(ctx context.Context, cmd OpenTicketCommand) (*OpenTicketResult, error)
}

type AdvanceTicketExecutor interface {
	Execute(ctx context.Context, cmd AdvanceTicketCommand) (*AdvanceTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*TicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type GetDashboardStatsExecutor interface {
	Execute(ctx context.Context, query GetDashboardStatsQuery) (*GetDashboardStatsResult, error)
}

// TicketNotifier tells the operations mailbox about a freshly opened
// ticket. Delivery is best-effort and never blocks the request.
type TicketNotifier interface {
	SendTicketOpened(ticketID uint, companyKey, author, description string) error
}
