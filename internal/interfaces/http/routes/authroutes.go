package routes

import (
	"github.com/gin-gonic/gin"

	identityhandlers "helpdesk/internal/interfaces/http/handlers/identity"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler *identityhandlers.AuthHandler
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
		// Open only while zero administrators exist.
		auth.POST("/bootstrap", cfg.AuthHandler.Bootstrap)
	}
}
