package usecases

import (
	"context"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc    func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, pred authorization.Predicate, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	StatsFunc   func(ctx context.Context) (*ticket.Stats, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, pred authorization.Predicate, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, pred, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Stats(ctx context.Context) (*ticket.Stats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx)
	}
	return &ticket.Stats{}, nil
}

type mockCompanyRepository struct {
	SaveFunc          func(ctx context.Context, c *company.Company) error
	UpdateFunc        func(ctx context.Context, c *company.Company) error
	DeleteFunc        func(ctx context.Context, key string) error
	GetByKeyFunc      func(ctx context.Context, key string) (*company.Company, error)
	ListFunc          func(ctx context.Context, pred authorization.Predicate, filter company.Filter) ([]*company.Company, int64, error)
	CountFunc         func(ctx context.Context) (int64, error)
	HasDependentsFunc func(ctx context.Context, key string) (bool, error)
}

func (m *mockCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Update(ctx context.Context, c *company.Company) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCompanyRepository) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

func (m *mockCompanyRepository) GetByKey(ctx context.Context, key string) (*company.Company, error) {
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}
	return nil, nil
}

func (m *mockCompanyRepository) List(ctx context.Context, pred authorization.Predicate, filter company.Filter) ([]*company.Company, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, pred, filter)
	}
	return nil, 0, nil
}

func (m *mockCompanyRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

func (m *mockCompanyRepository) HasDependents(ctx context.Context, key string) (bool, error) {
	if m.HasDependentsFunc != nil {
		return m.HasDependentsFunc(ctx, key)
	}
	return false, nil
}

type mockNotifier struct {
	SendTicketOpenedFunc func(ticketID uint, companyKey, author, description string) error
}

func (m *mockNotifier) SendTicketOpened(ticketID uint, companyKey, author, description string) error {
	if m.SendTicketOpenedFunc != nil {
		return m.SendTicketOpenedFunc(ticketID, companyKey, author, description)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
