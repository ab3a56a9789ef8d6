package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, username string) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int64, error)
	// CountAdministrators reports how many administrator accounts exist.
	// The bootstrap path re-queries this on every call; it is never cached.
	CountAdministrators(ctx context.Context) (int64, error)
}

type Filter struct {
	CompanyKey *string
	Role       *string
}
