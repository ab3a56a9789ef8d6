// Package http wires repositories, use cases and handlers into the Gin
// engine that serves the helpdesk API.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	companyusecases "helpdesk/internal/application/company/usecases"
	identityusecases "helpdesk/internal/application/identity/usecases"
	ticketusecases "helpdesk/internal/application/ticket/usecases"
	userusecases "helpdesk/internal/application/user/usecases"
	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/email"
	"helpdesk/internal/infrastructure/repository"
	companyhandler "helpdesk/internal/interfaces/http/handlers/company"
	identityhandler "helpdesk/internal/interfaces/http/handlers/identity"
	tickethandler "helpdesk/internal/interfaces/http/handlers/ticket"
	userhandler "helpdesk/internal/interfaces/http/handlers/user"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/interfaces/http/routes"
	"helpdesk/internal/shared/authorization"
	shareddb "helpdesk/internal/shared/db"
	"helpdesk/internal/shared/logger"
)

type Router struct {
	engine         *gin.Engine
	authHandler    *identityhandler.AuthHandler
	companyHandler *companyhandler.CompanyHandler
	userHandler    *userhandler.UserHandler
	ticketHandler  *tickethandler.TicketHandler
	authMiddleware *middleware.AuthMiddleware
}

// jwtServiceAdapter bridges the infrastructure token service to the type
// the identity use cases expect.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(identity authorization.Identity, sessionID string) (*identityusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(identity, sessionID)
	if err != nil {
		return nil, err
	}
	return &identityusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) Refresh(refreshToken string) (*identityusecases.TokenPair, error) {
	pair, err := a.JWTService.Refresh(refreshToken)
	if err != nil {
		return nil, err
	}
	return &identityusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

// NewRouter creates the HTTP router with all dependencies wired.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	companyRepo := repository.NewCompanyRepository(db)
	userRepo := repository.NewUserRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	txMgr := shareddb.NewTransactionManager(db)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtSvc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays)
	jwtService := &jwtServiceAdapter{jwtSvc}

	var notifier ticketusecases.TicketNotifier
	if cfg.Email.Enabled {
		notifier = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        cfg.Email.SMTPHost,
			Port:        cfg.Email.SMTPPort,
			Username:    cfg.Email.SMTPUser,
			Password:    cfg.Email.SMTPPassword,
			FromAddress: cfg.Email.FromAddress,
			FromName:    cfg.Email.FromName,
			OpsAddress:  cfg.Email.OpsAddress,
		})
	} else {
		notifier = email.NoopNotifier{}
	}

	authenticateUC := identityusecases.NewAuthenticateUseCase(userRepo, hasher, jwtService, log)
	refreshTokenUC := identityusecases.NewRefreshTokenUseCase(jwtService, log)
	bootstrapAdminUC := identityusecases.NewBootstrapAdminUseCase(userRepo, hasher, log)

	createCompanyUC := companyusecases.NewCreateCompanyUseCase(companyRepo, log)
	updateCompanyUC := companyusecases.NewUpdateCompanyUseCase(companyRepo, log)
	deleteCompanyUC := companyusecases.NewDeleteCompanyUseCase(companyRepo, txMgr, log)
	getCompanyUC := companyusecases.NewGetCompanyUseCase(companyRepo, log)
	listCompaniesUC := companyusecases.NewListCompaniesUseCase(companyRepo, log)

	createUserUC := userusecases.NewCreateUserUseCase(userRepo, companyRepo, hasher, log)
	listUsersUC := userusecases.NewListUsersUseCase(userRepo, log)
	deleteUserUC := userusecases.NewDeleteUserUseCase(userRepo, log)
	resetPasswordUC := userusecases.NewResetPasswordUseCase(userRepo, hasher, log)

	openTicketUC := ticketusecases.NewOpenTicketUseCase(ticketRepo, companyRepo, notifier, log)
	advanceTicketUC := ticketusecases.NewAdvanceTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	getDashboardStatsUC := ticketusecases.NewGetDashboardStatsUseCase(ticketRepo, companyRepo, log)

	return &Router{
		engine: engine,
		authHandler: identityhandler.NewAuthHandler(
			authenticateUC, refreshTokenUC, bootstrapAdminUC, log,
		),
		companyHandler: companyhandler.NewCompanyHandler(
			createCompanyUC, updateCompanyUC, deleteCompanyUC, getCompanyUC, listCompaniesUC, log,
		),
		userHandler: userhandler.NewUserHandler(
			createUserUC, listUsersUC, deleteUserUC, resetPasswordUC, log,
		),
		ticketHandler: tickethandler.NewTicketHandler(
			openTicketUC, advanceTicketUC, getTicketUC, listTicketsUC, getDashboardStatsUC, log,
		),
		authMiddleware: middleware.NewAuthMiddleware(jwtSvc, log),
	}
}

// SetupRoutes configures middleware and all HTTP routes.
func (r *Router) SetupRoutes(cfg *config.Config, log logger.Interface) {
	r.engine.Use(middleware.Recovery(log))
	r.engine.Use(middleware.Logger(log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler: r.authHandler,
	})
	routes.SetupCompanyRoutes(r.engine, &routes.CompanyRouteConfig{
		CompanyHandler: r.companyHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupUserRoutes(r.engine, &routes.UserRouteConfig{
		UserHandler:    r.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
	routes.SetupTicketRoutes(r.engine, &routes.TicketRouteConfig{
		TicketHandler:  r.ticketHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// Engine exposes the underlying Gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
