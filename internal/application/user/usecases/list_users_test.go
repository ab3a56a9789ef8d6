package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
)

func reconstructContact(t *testing.T, username, companyKey string) *user.User {
	t.Helper()

	key := companyKey
	u, err := user.ReconstructUser(
		username, "hashed:pw", &key, "Contact "+username,
		authorization.RoleClient, time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func TestListUsersUseCase_Execute_Admin(t *testing.T) {
	mockUsers := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
			return []*user.User{
				reconstructContact(t, "maria", "acme"),
				reconstructContact(t, "joao", "globex"),
			}, 2, nil
		},
	}

	useCase := NewListUsersUseCase(mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListUsersQuery{Identity: adminIdentity()})

	require.NoError(t, err)
	assert.Len(t, result.Users, 2)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, "maria", result.Users[0].Username)
	assert.Equal(t, "acme", result.Users[0].CompanyKey)
}

func TestListUsersUseCase_Execute_ClientForbidden(t *testing.T) {
	listCalled := false
	mockUsers := &mockUserRepository{
		ListFunc: func(ctx context.Context, filter user.Filter) ([]*user.User, int64, error) {
			listCalled = true
			return nil, 0, nil
		},
	}

	useCase := NewListUsersUseCase(mockUsers, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListUsersQuery{Identity: clientIdentity("acme")})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	assert.False(t, listCalled)
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	t.Run("admin deletes a contact", func(t *testing.T) {
		deleted := ""
		mockUsers := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return reconstructContact(t, username, "acme"), nil
			},
			DeleteFunc: func(ctx context.Context, username string) error {
				deleted = username
				return nil
			},
		}

		useCase := NewDeleteUserUseCase(mockUsers, &mockLogger{})
		result, err := useCase.Execute(context.Background(), DeleteUserCommand{
			Identity: adminIdentity(),
			Username: "maria",
		})

		require.NoError(t, err)
		assert.Equal(t, "maria", result.Username)
		assert.Equal(t, "maria", deleted)
	})

	t.Run("cannot delete own account", func(t *testing.T) {
		useCase := NewDeleteUserUseCase(&mockUserRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), DeleteUserCommand{
			Identity: adminIdentity(),
			Username: "root",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
	})

	t.Run("cannot delete the last administrator", func(t *testing.T) {
		admin, err := user.ReconstructUser(
			"other-admin", "hashed:pw", nil, "Other Admin",
			authorization.RoleAdmin, time.Now(), time.Now(),
		)
		require.NoError(t, err)

		mockUsers := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return admin, nil
			},
			CountAdministratorsFunc: func(ctx context.Context) (int64, error) {
				return 1, nil
			},
		}

		useCase := NewDeleteUserUseCase(mockUsers, &mockLogger{})
		_, err = useCase.Execute(context.Background(), DeleteUserCommand{
			Identity: adminIdentity(),
			Username: "other-admin",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
	})

	t.Run("client forbidden", func(t *testing.T) {
		useCase := NewDeleteUserUseCase(&mockUserRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), DeleteUserCommand{
			Identity: clientIdentity("acme"),
			Username: "maria",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	})
}

func TestResetPasswordUseCase_Execute(t *testing.T) {
	t.Run("admin resets a contact password", func(t *testing.T) {
		contact := reconstructContact(t, "maria", "acme")

		var updated *user.User
		mockUsers := &mockUserRepository{
			GetByUsernameFunc: func(ctx context.Context, username string) (*user.User, error) {
				return contact, nil
			},
			UpdateFunc: func(ctx context.Context, u *user.User) error {
				updated = u
				return nil
			},
		}

		useCase := NewResetPasswordUseCase(mockUsers, &mockPasswordHasher{}, &mockLogger{})
		result, err := useCase.Execute(context.Background(), ResetPasswordCommand{
			Identity: adminIdentity(),
			Username: "maria",
			Password: "new-password",
		})

		require.NoError(t, err)
		assert.Equal(t, "maria", result.Username)

		require.NotNil(t, updated)
		assert.Equal(t, "hashed:new-password", updated.PasswordHash())
	})

	t.Run("short password rejected", func(t *testing.T) {
		useCase := NewResetPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), ResetPasswordCommand{
			Identity: adminIdentity(),
			Username: "maria",
			Password: "short",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	})

	t.Run("client forbidden", func(t *testing.T) {
		useCase := NewResetPasswordUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), ResetPasswordCommand{
			Identity: clientIdentity("acme"),
			Username: "maria",
			Password: "new-password",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	})
}
