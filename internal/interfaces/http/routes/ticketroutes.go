package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "helpdesk/internal/interfaces/http/handlers/ticket"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket and dashboard routes.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.POST("", cfg.TicketHandler.OpenTicket)
		tickets.GET("", cfg.TicketHandler.ListTickets)

		// Specific action endpoints come before the generic /:id route.
		tickets.PATCH("/:id/stage",
			authorization.RequireAdmin(),
			cfg.TicketHandler.AdvanceTicket)

		tickets.GET("/:id", cfg.TicketHandler.GetTicket)
	}

	stats := engine.Group("/stats")
	stats.Use(cfg.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		stats.GET("/dashboard", cfg.TicketHandler.GetDashboardStats)
	}
}
