package usecases

import (
	"context"
	"time"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/logger"
)

// UserResult never carries the password hash; account credentials stay
// inside the domain layer.
type UserResult struct {
	Username    string
	Role        string
	CompanyKey  string
	DisplayName string
	CreatedAt   time.Time
}

type ListUsersQuery struct {
	Identity   authorization.Identity
	CompanyKey *string
	Role       *string
}

type ListUsersResult struct {
	Users []UserResult
	Total int64
}

type ListUsersUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewListUsersUseCase(userRepo user.Repository, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	// Scope refuses user records for client identities outright; contacts
	// must never see other accounts, not even within their own company.
	if _, err := authorization.Scope(query.Identity, authorization.EntityUser); err != nil {
		return nil, err
	}

	users, total, err := uc.userRepo.List(ctx, user.Filter{
		CompanyKey: query.CompanyKey,
		Role:       query.Role,
	})
	if err != nil {
		uc.logger.Errorw("failed to list users", "error", err)
		return nil, err
	}

	results := make([]UserResult, 0, len(users))
	for _, u := range users {
		results = append(results, toUserResult(u))
	}

	return &ListUsersResult{
		Users: results,
		Total: total,
	}, nil
}

func toUserResult(u *user.User) UserResult {
	result := UserResult{
		Username:    u.Username(),
		Role:        u.Role().String(),
		DisplayName: u.DisplayName(),
		CreatedAt:   u.CreatedAt(),
	}
	if key := u.CompanyKey(); key != nil {
		result.CompanyKey = *key
	}
	return result
}
