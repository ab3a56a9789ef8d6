package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService interface {
	Generate(identity authorization.Identity, sessionID string) (*TokenPair, error)
	Refresh(refreshToken string) (*TokenPair, error)
}

type AuthenticateCommand struct {
	Username string
	Password string
}

type AuthenticateResult struct {
	Username     string
	Role         string
	CompanyKey   string
	DisplayName  string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type AuthenticateUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewAuthenticateUseCase(
	userRepo user.Repository,
	passwordHasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *AuthenticateUseCase {
	return &AuthenticateUseCase{
		userRepo:       userRepo,
		passwordHasher: passwordHasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *AuthenticateUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewAuthFailureError()
	}

	existingUser, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil {
		if errors.IsType(err, errors.ErrorTypeNotFound) {
			// Same response whether the account or the password is wrong,
			// so login probes cannot enumerate usernames.
			uc.logger.Warnw("login attempt for unknown account", "username", cmd.Username)
			return nil, errors.NewAuthFailureError()
		}
		uc.logger.Errorw("failed to get user by username", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existingUser.PasswordHash()); err != nil {
		uc.logger.Warnw("password verification failed", "username", cmd.Username)
		return nil, errors.NewAuthFailureError()
	}

	identity := existingUser.Identity()
	sessionID := uuid.New().String()

	tokens, err := uc.jwtService.Generate(identity, sessionID)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "username", cmd.Username)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in", "username", cmd.Username, "role", identity.Role.String(), "session_id", sessionID)

	return &AuthenticateResult{
		Username:     identity.Username,
		Role:         identity.Role.String(),
		CompanyKey:   identity.CompanyKey,
		DisplayName:  identity.DisplayName,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
