package user

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/authorization"
)

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required,max=64"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=128"`
	Role        string `json:"role" binding:"required,oneof=admin client"`
	CompanyKey  string `json:"company_key,omitempty" binding:"max=32"`
}

func (r *CreateUserRequest) ToCommand(identity authorization.Identity) usecases.CreateUserCommand {
	return usecases.CreateUserCommand{
		Identity:    identity,
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
		Role:        r.Role,
		CompanyKey:  r.CompanyKey,
	}
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

type ListUsersRequest struct {
	CompanyKey *string
	Role       *string
}

func parseListUsersRequest(c *gin.Context) *ListUsersRequest {
	req := &ListUsersRequest{}

	if companyKey := c.Query("company_key"); companyKey != "" {
		req.CompanyKey = &companyKey
	}
	if role := c.Query("role"); role != "" {
		req.Role = &role
	}

	return req
}

type CreateUserResponse struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	CompanyKey  string `json:"company_key,omitempty"`
	DisplayName string `json:"display_name"`
}

type ResetPasswordResponse struct {
	Username string `json:"username"`
}

type UserResponse struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	CompanyKey  string `json:"company_key,omitempty"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

func toUserResponse(r usecases.UserResult) UserResponse {
	return UserResponse{
		Username:    r.Username,
		Role:        r.Role,
		CompanyKey:  r.CompanyKey,
		DisplayName: r.DisplayName,
		CreatedAt:   r.CreatedAt.UnixMilli(),
	}
}
