package company

import (
	"context"

	"helpdesk/internal/shared/authorization"
)

type Repository interface {
	Save(ctx context.Context, c *Company) error
	Update(ctx context.Context, c *Company) error
	Delete(ctx context.Context, key string) error
	GetByKey(ctx context.Context, key string) (*Company, error)
	List(ctx context.Context, pred authorization.Predicate, filter Filter) ([]*Company, int64, error)
	Count(ctx context.Context) (int64, error)
	// HasDependents reports whether any user or ticket still references
	// the company key. Deletion is refused while dependents exist.
	HasDependents(ctx context.Context, key string) (bool, error)
}

type Filter struct {
	City *string
}
