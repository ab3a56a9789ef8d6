package usecases

import (
	"context"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	Identity    authorization.Identity
	Key         string
	Name        string
	City        string
	ManagerName string
}

type UpdateCompanyResult struct {
	Key  string
	Name string
}

type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*UpdateCompanyResult, error) {
	if !authorization.CanManageCompanies(cmd.Identity) {
		uc.logger.Warnw("company update refused", "username", cmd.Identity.Username, "key", cmd.Key)
		return nil, errors.NewForbiddenError("only administrators can manage companies")
	}

	existing, err := uc.companyRepo.GetByKey(ctx, cmd.Key)
	if err != nil {
		return nil, err
	}

	if err := existing.UpdateDetails(cmd.Name, cmd.City, cmd.ManagerName); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update company", "error", err, "key", cmd.Key)
		return nil, err
	}

	uc.logger.Infow("company updated", "key", existing.Key())

	return &UpdateCompanyResult{
		Key:  existing.Key(),
		Name: existing.Name(),
	}, nil
}
