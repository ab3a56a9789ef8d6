package usecases

import "context"

type AuthenticateExecutor interface {
	Execute(ctx context.Context, cmd AuthenticateCommand) (*AuthenticateResult, error)
}

type RefreshTokenExecutor interface {
	Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error)
}

type BootstrapAdminExecutor interface {
	Execute(ctx context.Context, cmd BootstrapAdminCommand) (*BootstrapAdminResult, error)
}
