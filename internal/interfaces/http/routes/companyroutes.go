package routes

import (
	"github.com/gin-gonic/gin"

	companyhandlers "helpdesk/internal/interfaces/http/handlers/company"
	"helpdesk/internal/interfaces/http/middleware"
	"helpdesk/internal/shared/authorization"
)

// CompanyRouteConfig holds dependencies for company routes.
type CompanyRouteConfig struct {
	CompanyHandler *companyhandlers.CompanyHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupCompanyRoutes configures company routes. Reads are scoped per
// caller; mutations are restricted to administrators.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	companies := engine.Group("/companies")
	companies.Use(cfg.AuthMiddleware.RequireAuth())
	{
		companies.GET("", cfg.CompanyHandler.ListCompanies)
		companies.GET("/:key", cfg.CompanyHandler.GetCompany)

		companies.POST("",
			authorization.RequireAdmin(),
			cfg.CompanyHandler.CreateCompany)
		companies.PUT("/:key",
			authorization.RequireAdmin(),
			cfg.CompanyHandler.UpdateCompany)
		companies.DELETE("/:key",
			authorization.RequireAdmin(),
			cfg.CompanyHandler.DeleteCompany)
	}
}
