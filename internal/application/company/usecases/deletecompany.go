package usecases

import (
	"context"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteCompanyCommand struct {
	Identity authorization.Identity
	Key      string
}

type DeleteCompanyResult struct {
	Key string
}

type DeleteCompanyUseCase struct {
	companyRepo company.Repository
	txMgr       TransactionManager
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(companyRepo company.Repository, txMgr TransactionManager, logger logger.Interface) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
		txMgr:       txMgr,
		logger:      logger,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) (*DeleteCompanyResult, error) {
	if !authorization.CanManageCompanies(cmd.Identity) {
		uc.logger.Warnw("company deletion refused", "username", cmd.Identity.Username, "key", cmd.Key)
		return nil, errors.NewForbiddenError("only administrators can manage companies")
	}

	if _, err := uc.companyRepo.GetByKey(ctx, cmd.Key); err != nil {
		return nil, err
	}

	// Dependent check and delete run in one transaction so a user or
	// ticket created in between cannot be orphaned.
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		hasDependents, err := uc.companyRepo.HasDependents(txCtx, cmd.Key)
		if err != nil {
			uc.logger.Errorw("failed to check company dependents", "error", err, "key", cmd.Key)
			return err
		}
		if hasDependents {
			return errors.NewConflictError("company still has users or tickets")
		}

		if err := uc.companyRepo.Delete(txCtx, cmd.Key); err != nil {
			uc.logger.Errorw("failed to delete company", "error", err, "key", cmd.Key)
			return err
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	uc.logger.Infow("company deleted", "key", cmd.Key)

	return &DeleteCompanyResult{Key: cmd.Key}, nil
}
