package usecases

import (
	"context"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type mockUserRepository struct {
	SaveFunc                func(ctx context.Context, u *user.User) error
	UpdateFunc              func(ctx context.Context, u *user.User) error
	DeleteFunc              func(ctx context.Context, username string) error
	GetByUsernameFunc       func(ctx context.Context, username string) (*user.User, error)
	ListFunc                func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error)
	CountAdministratorsFunc func(ctx context.Context) (int64, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, username string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, username)
	}
	return nil
}

func (m *mockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockUserRepository) CountAdministrators(ctx context.Context) (int64, error) {
	if m.CountAdministratorsFunc != nil {
		return m.CountAdministratorsFunc(ctx)
	}
	return 0, nil
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

type mockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) error
}

func (m *mockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockPasswordHasher) Verify(password, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, hash)
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
