package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Identity authorization.Identity
	Username string
	Password string
}

type ResetPasswordResult struct {
	Username string
}

type ResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) (*ResetPasswordResult, error) {
	if !authorization.CanManageUsers(cmd.Identity) {
		uc.logger.Warnw("password reset refused", "username", cmd.Identity.Username)
		return nil, errors.NewForbiddenError("only administrators can manage users")
	}

	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		return nil, err
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := existing.ChangePasswordHash(passwordHash); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("password reset", "username", cmd.Username, "by", cmd.Identity.Username)

	return &ResetPasswordResult{Username: cmd.Username}, nil
}
