package usecases

import (
	"context"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteUserCommand struct {
	Identity authorization.Identity
	Username string
}

type DeleteUserResult struct {
	Username string
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) (*DeleteUserResult, error) {
	if !authorization.CanManageUsers(cmd.Identity) {
		uc.logger.Warnw("user deletion refused", "username", cmd.Identity.Username)
		return nil, errors.NewForbiddenError("only administrators can manage users")
	}

	if cmd.Username == cmd.Identity.Username {
		return nil, errors.NewConflictError("cannot delete the account you are logged in as")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}

	if existing.IsAdmin() {
		adminCount, err := uc.userRepo.CountAdministrators(ctx)
		if err != nil {
			uc.logger.Errorw("failed to count administrators", "error", err)
			return nil, err
		}
		if adminCount <= 1 {
			return nil, errors.NewConflictError("cannot delete the last administrator")
		}
	}

	if err := uc.userRepo.Delete(ctx, cmd.Username); err != nil {
		uc.logger.Errorw("failed to delete user", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("user deleted", "username", cmd.Username)

	return &DeleteUserResult{Username: cmd.Username}, nil
}
