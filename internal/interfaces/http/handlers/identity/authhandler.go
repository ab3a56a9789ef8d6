package identity

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/identity/usecases"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	authenticateUC   usecases.AuthenticateExecutor
	refreshTokenUC   usecases.RefreshTokenExecutor
	bootstrapAdminUC usecases.BootstrapAdminExecutor
	logger           logger.Interface
}

func NewAuthHandler(
	authenticateUC usecases.AuthenticateExecutor,
	refreshTokenUC usecases.RefreshTokenExecutor,
	bootstrapAdminUC usecases.BootstrapAdminExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		authenticateUC:   authenticateUC,
		refreshTokenUC:   refreshTokenUC,
		bootstrapAdminUC: bootstrapAdminUC,
		logger:           logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.authenticateUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, LoginResponse{
		Username:     result.Username,
		Role:         result.Role,
		CompanyKey:   result.CompanyKey,
		DisplayName:  result.DisplayName,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.refreshTokenUC.Execute(c.Request.Context(), usecases.RefreshTokenCommand{
		RefreshToken: req.RefreshToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, TokenResponse{
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Bootstrap handles POST /auth/bootstrap
func (h *AuthHandler) Bootstrap(c *gin.Context) {
	var req BootstrapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.bootstrapAdminUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, BootstrapResponse{
		Username:    result.Username,
		Role:        result.Role,
		DisplayName: result.DisplayName,
	}, "Administrator account created")
}
