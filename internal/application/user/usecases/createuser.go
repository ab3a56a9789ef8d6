package usecases

import (
	"context"
	"fmt"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Identity    authorization.Identity
	Username    string
	Password    string
	DisplayName string
	Role        string
	// CompanyKey binds a client contact to its company. It must be empty
	// for administrator accounts.
	CompanyKey string
}

type CreateUserResult struct {
	Username    string
	Role        string
	CompanyKey  string
	DisplayName string
}

type CreateUserUseCase struct {
	userRepo       user.Repository
	companyRepo    company.Repository
	passwordHasher user.PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	companyRepo company.Repository,
	passwordHasher user.PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		passwordHasher: passwordHasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if !authorization.CanManageUsers(cmd.Identity) {
		uc.logger.Warnw("user creation refused", "username", cmd.Identity.Username)
		return nil, errors.NewForbiddenError("only administrators can manage users")
	}

	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	role := authorization.ParseUserRole(cmd.Role)

	if role.IsClient() {
		// The company must exist before a contact can be attached to it.
		if _, err := uc.companyRepo.GetByKey(ctx, cmd.CompanyKey); err != nil {
			return nil, err
		}
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var newUser *user.User
	if role.IsAdmin() {
		newUser, err = user.NewAdministrator(cmd.Username, passwordHash, cmd.DisplayName)
	} else {
		newUser, err = user.NewClientContact(cmd.Username, passwordHash, cmd.CompanyKey, cmd.DisplayName)
	}
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err, "username", cmd.Username)
		return nil, err
	}

	uc.logger.Infow("user created", "username", newUser.Username(), "role", newUser.Role().String())

	result := &CreateUserResult{
		Username:    newUser.Username(),
		Role:        newUser.Role().String(),
		DisplayName: newUser.DisplayName(),
	}
	if key := newUser.CompanyKey(); key != nil {
		result.CompanyKey = *key
	}
	return result, nil
}

func (uc *CreateUserUseCase) validateCommand(cmd CreateUserCommand) error {
	if cmd.Username == "" {
		return errors.NewValidationError("username is required")
	}

	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}

	role := authorization.ParseUserRole(cmd.Role)
	if role.IsAdmin() && cmd.CompanyKey != "" {
		return errors.NewValidationError("administrator accounts must not carry a company key")
	}
	if role.IsClient() && cmd.CompanyKey == "" {
		return errors.NewValidationError("client contacts require a company key")
	}

	return nil
}
