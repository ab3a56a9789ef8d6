package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

type CompanyResult struct {
	Key         string
	Name        string
	City        string
	ManagerName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ListCompaniesQuery struct {
	Identity authorization.Identity
	City     *string
}

type ListCompaniesResult struct {
	Companies []CompanyResult
	Total     int64
}

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error) {
	pred, err := authorization.Scope(query.Identity, authorization.EntityCompany)
	if err != nil {
		return nil, err
	}

	companies, total, err := uc.companyRepo.List(ctx, pred, company.Filter{City: query.City})
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, err
	}

	results := make([]CompanyResult, 0, len(companies))
	for _, c := range companies {
		results = append(results, toCompanyResult(c))
	}

	return &ListCompaniesResult{
		Companies: results,
		Total:     total,
	}, nil
}

func toCompanyResult(c *company.Company) CompanyResult {
	return CompanyResult{
		Key:         c.Key(),
		Name:        c.Name(),
		City:        c.City(),
		ManagerName: c.ManagerName(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}
