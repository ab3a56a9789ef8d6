package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateCompanyCommand struct {
	Identity    authorization.Identity
	Key         string
	Name        string
	City        string
	ManagerName string
}

type CreateCompanyResult struct {
	Key       string
	Name      string
	CreatedAt time.Time
}

type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CreateCompanyResult, error) {
	if !authorization.CanManageCompanies(cmd.Identity) {
		uc.logger.Warnw("company creation refused", "username", cmd.Identity.Username)
		return nil, errors.NewForbiddenError("only administrators can manage companies")
	}

	newCompany, err := company.NewCompany(cmd.Key, cmd.Name, cmd.City, cmd.ManagerName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Save(ctx, newCompany); err != nil {
		uc.logger.Errorw("failed to save company", "error", err, "key", cmd.Key)
		return nil, err
	}

	uc.logger.Infow("company created", "key", newCompany.Key(), "name", newCompany.Name())

	return &CreateCompanyResult{
		Key:       newCompany.Key(),
		Name:      newCompany.Name(),
		CreatedAt: newCompany.CreatedAt(),
	}, nil
}
