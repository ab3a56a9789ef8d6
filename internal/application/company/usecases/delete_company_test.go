package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/shared/errors"
)

func reconstructCompany(t *testing.T, key, name string) *company.Company {
	t.Helper()

	c, err := company.ReconstructCompany(key, name, "Campinas", "Carlos", time.Now().Add(-time.Hour), time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return c
}

func TestDeleteCompanyUseCase_Execute_Success(t *testing.T) {
	deleted := ""
	mockRepo := &mockCompanyRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*company.Company, error) {
			return reconstructCompany(t, key, "Acme Ltda"), nil
		},
		HasDependentsFunc: func(ctx context.Context, key string) (bool, error) {
			return false, nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			deleted = key
			return nil
		},
	}

	useCase := NewDeleteCompanyUseCase(mockRepo, &mockTransactionManager{}, &mockLogger{})
	result, err := useCase.Execute(context.Background(), DeleteCompanyCommand{
		Identity: adminIdentity(),
		Key:      "acme",
	})

	require.NoError(t, err)
	assert.Equal(t, "acme", result.Key)
	assert.Equal(t, "acme", deleted)
}

func TestDeleteCompanyUseCase_Execute_RunsInTransaction(t *testing.T) {
	type txMarker struct{}

	inTx := 0
	mockRepo := &mockCompanyRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*company.Company, error) {
			return reconstructCompany(t, key, "Acme Ltda"), nil
		},
		HasDependentsFunc: func(ctx context.Context, key string) (bool, error) {
			if ctx.Value(txMarker{}) != nil {
				inTx++
			}
			return false, nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			if ctx.Value(txMarker{}) != nil {
				inTx++
			}
			return nil
		},
	}
	txMgr := &mockTransactionManager{
		RunInTransactionFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(context.WithValue(ctx, txMarker{}, true))
		},
	}

	useCase := NewDeleteCompanyUseCase(mockRepo, txMgr, &mockLogger{})
	_, err := useCase.Execute(context.Background(), DeleteCompanyCommand{
		Identity: adminIdentity(),
		Key:      "acme",
	})

	require.NoError(t, err)
	assert.Equal(t, 2, inTx)
}

func TestDeleteCompanyUseCase_Execute_RefusedWithDependents(t *testing.T) {
	deleteCalled := false
	mockRepo := &mockCompanyRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*company.Company, error) {
			return reconstructCompany(t, key, "Acme Ltda"), nil
		},
		HasDependentsFunc: func(ctx context.Context, key string) (bool, error) {
			return true, nil
		},
		DeleteFunc: func(ctx context.Context, key string) error {
			deleteCalled = true
			return nil
		},
	}

	useCase := NewDeleteCompanyUseCase(mockRepo, &mockTransactionManager{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), DeleteCompanyCommand{
		Identity: adminIdentity(),
		Key:      "acme",
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConflict))
	assert.False(t, deleteCalled)
}

func TestDeleteCompanyUseCase_Execute_NotFound(t *testing.T) {
	mockRepo := &mockCompanyRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*company.Company, error) {
			return nil, errors.NewNotFoundError("company missing not found")
		},
	}

	useCase := NewDeleteCompanyUseCase(mockRepo, &mockTransactionManager{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), DeleteCompanyCommand{
		Identity: adminIdentity(),
		Key:      "missing",
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}

func TestDeleteCompanyUseCase_Execute_ClientForbidden(t *testing.T) {
	useCase := NewDeleteCompanyUseCase(&mockCompanyRepository{}, &mockTransactionManager{}, &mockLogger{})
	_, err := useCase.Execute(context.Background(), DeleteCompanyCommand{
		Identity: clientIdentity("acme"),
		Key:      "acme",
	})

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}

func TestUpdateCompanyUseCase_Execute(t *testing.T) {
	t.Run("admin updates details", func(t *testing.T) {
		existing := reconstructCompany(t, "acme", "Acme Ltda")

		var updated *company.Company
		mockRepo := &mockCompanyRepository{
			GetByKeyFunc: func(ctx context.Context, key string) (*company.Company, error) {
				return existing, nil
			},
			UpdateFunc: func(ctx context.Context, c *company.Company) error {
				updated = c
				return nil
			},
		}

		useCase := NewUpdateCompanyUseCase(mockRepo, &mockLogger{})
		result, err := useCase.Execute(context.Background(), UpdateCompanyCommand{
			Identity:    adminIdentity(),
			Key:         "acme",
			Name:        "Acme Holdings",
			City:        "Sao Paulo",
			ManagerName: "Ana",
		})

		require.NoError(t, err)
		assert.Equal(t, "Acme Holdings", result.Name)

		require.NotNil(t, updated)
		assert.Equal(t, "Sao Paulo", updated.City())
		assert.Equal(t, "Ana", updated.ManagerName())
	})

	t.Run("client forbidden", func(t *testing.T) {
		useCase := NewUpdateCompanyUseCase(&mockCompanyRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), UpdateCompanyCommand{
			Identity: clientIdentity("acme"),
			Key:      "acme",
			Name:     "Hijacked",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	})
}
