package usecases

import "context"

type CreateCompanyExecutor interface {
	Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error)
}

type UpdateCompanyExecutor interface {
	Execute(ctx context.Context, cmd UpdateCompanyCommand) (*UpdateCompanyResult, error)
}

type DeleteCompanyExecutor interface {
	Execute(ctx context.Context, cmd DeleteCompanyCommand) (*DeleteCompanyResult, error)
}

type GetCompanyExecutor interface {
	Execute(ctx context.Context, query GetCompanyQuery) (*CompanyResult, error)
}

type ListCompaniesExecutor interface {
	Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error)
}

// TransactionManager runs a function within a database transaction.
// Satisfied by db.TransactionManager.
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
