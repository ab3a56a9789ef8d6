package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
)

func TestBootstrapAdminUseCase_Execute_Success(t *testing.T) {
	var saved *user.User
	mockRepo := &mockUserRepository{
		CountAdministratorsFunc: func(ctx context.Context) (int64, error) {
			return 0, nil
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saved = u
			return nil
		},
	}

	useCase := NewBootstrapAdminUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), BootstrapAdminCommand{
		Username:    "root",
		Password:    "first-admin-pass",
		DisplayName: "Root Admin",
	})

	require.NoError(t, err)
	assert.Equal(t, "root", result.Username)
	assert.Equal(t, "admin", result.Role)

	require.NotNil(t, saved)
	assert.True(t, saved.IsAdmin())
	assert.Nil(t, saved.CompanyKey())
	assert.Equal(t, "hashed:first-admin-pass", saved.PasswordHash())
}

func TestBootstrapAdminUseCase_Execute_ClosedOnceAdminExists(t *testing.T) {
	saveCalled := false
	mockRepo := &mockUserRepository{
		CountAdministratorsFunc: func(ctx context.Context) (int64, error) {
			return 1, nil
		},
		SaveFunc: func(ctx context.Context, u *user.User) error {
			saveCalled = true
			return nil
		},
	}

	useCase := NewBootstrapAdminUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), BootstrapAdminCommand{
		Username:    "intruder",
		Password:    "whatever-pass",
		DisplayName: "Intruder",
	})

	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	assert.False(t, saveCalled)
}

func TestBootstrapAdminUseCase_Execute_CountQueriedEveryCall(t *testing.T) {
	countCalls := 0
	mockRepo := &mockUserRepository{
		CountAdministratorsFunc: func(ctx context.Context) (int64, error) {
			countCalls++
			if countCalls == 1 {
				return 0, nil
			}
			return 1, nil
		},
	}

	useCase := NewBootstrapAdminUseCase(mockRepo, &mockPasswordHasher{}, &mockLogger{})

	cmd := BootstrapAdminCommand{Username: "root", Password: "first-admin-pass", DisplayName: "Root"}

	_, err := useCase.Execute(context.Background(), cmd)
	require.NoError(t, err)

	// A second call must re-check the count and be refused.
	_, err = useCase.Execute(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	assert.Equal(t, 2, countCalls)
}

func TestBootstrapAdminUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  BootstrapAdminCommand
	}{
		{
			name: "missing username",
			cmd:  BootstrapAdminCommand{Password: "first-admin-pass", DisplayName: "Root"},
		},
		{
			name: "short password",
			cmd:  BootstrapAdminCommand{Username: "root", Password: "short", DisplayName: "Root"},
		},
		{
			name: "missing display name",
			cmd:  BootstrapAdminCommand{Username: "root", Password: "first-admin-pass"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewBootstrapAdminUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockLogger{})
			_, err := useCase.Execute(context.Background(), tt.cmd)

			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
		})
	}
}
