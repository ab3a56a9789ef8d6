package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type GetCompanyQuery struct {
	Identity authorization.Identity
	Key      string
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*CompanyResult, error) {
	pred, err := authorization.Scope(query.Identity, authorization.EntityCompany)
	if err != nil {
		return nil, err
	}

	// Out-of-scope keys read as absent so the response does not confirm
	// the company exists.
	if !pred.Allows(query.Key) {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %s not found", query.Key))
	}

	existing, err := uc.companyRepo.GetByKey(ctx, query.Key)
	if err != nil {
		return nil, err
	}

	result := toCompanyResult(existing)
	return &result, nil
}
