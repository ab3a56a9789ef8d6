package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"

	"helpdesk/internal/interfaces/http/middleware"
)

type UserHandler struct {
	createUserUC    usecases.CreateUserExecutor
	listUsersUC     usecases.ListUsersExecutor
	deleteUserUC    usecases.DeleteUserExecutor
	resetPasswordUC usecases.ResetPasswordExecutor
	logger          logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	resetPasswordUC usecases.ResetPasswordExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC:    createUserUC,
		listUsersUC:     listUsersUC,
		deleteUserUC:    deleteUserUC,
		resetPasswordUC: resetPasswordUC,
		logger:          logger,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create user", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), req.ToCommand(identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateUserResponse{
		Username:    result.Username,
		Role:        result.Role,
		CompanyKey:  result.CompanyKey,
		DisplayName: result.DisplayName,
	}, "User created successfully")
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	req := parseListUsersRequest(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Identity:   identity,
		CompanyKey: req.CompanyKey,
		Role:       req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]UserResponse, 0, len(result.Users))
	for _, item := range result.Users {
		responses = append(responses, toUserResponse(item))
	}

	utils.ListSuccessResponse(c, responses, result.Total)
}

// DeleteUser handles DELETE /users/:username
func (h *UserHandler) DeleteUser(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	_, err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		Identity: identity,
		Username: c.Param("username"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ResetPassword handles PUT /users/:username/password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.resetPasswordUC.Execute(c.Request.Context(), usecases.ResetPasswordCommand{
		Identity: identity,
		Username: c.Param("username"),
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, ResetPasswordResponse{Username: result.Username}, "Password reset successfully")
}
