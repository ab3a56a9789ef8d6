package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type BootstrapAdminCommand struct {
	Username    string
	Password    string
	DisplayName string
}

type BootstrapAdminResult struct {
	Username    string
	Role        string
	DisplayName string
}

// BootstrapAdminUseCase creates the first administrator account. The path
// stays open only while the user table holds zero administrators; the count
// is re-queried on every call so the window closes the moment one exists.
type BootstrapAdminUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewBootstrapAdminUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *BootstrapAdminUseCase {
	return &BootstrapAdminUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *BootstrapAdminUseCase) Execute(ctx context.Context, cmd BootstrapAdminCommand) (*BootstrapAdminResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	adminCount, err := uc.userRepo.CountAdministrators(ctx)
	if err != nil {
		uc.logger.Errorw("failed to count administrators", "error", err)
		return nil, fmt.Errorf("failed to count administrators: %w", err)
	}

	if adminCount > 0 {
		uc.logger.Warnw("bootstrap attempted with administrators present", "username", cmd.Username)
		return nil, errors.NewForbiddenError("an administrator account already exists")
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin, err := user.NewAdministrator(cmd.Username, passwordHash, cmd.DisplayName)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, admin); err != nil {
		uc.logger.Errorw("failed to save administrator", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("bootstrap administrator created", "username", admin.Username())

	return &BootstrapAdminResult{
		Username:    admin.Username(),
		Role:        admin.Role().String(),
		DisplayName: admin.DisplayName(),
	}, nil
}

func (uc *BootstrapAdminUseCase) validateCommand(cmd BootstrapAdminCommand) error {
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}

	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	if cmd.DisplayName == "" {
		return errors.NewValidationError("display name is required")
	}

	return nil
}
