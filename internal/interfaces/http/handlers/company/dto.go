package company

import (
	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/company/usecases"
	"helpdesk/internal/shared/authorization"
)

type CreateCompanyRequest struct {
	Key         string `json:"key" binding:"required,max=32"`
	Name        string `json:"name" binding:"required,max=128"`
	City        string `json:"city,omitempty" binding:"max=128"`
	ManagerName string `json:"manager_name,omitempty" binding:"max=128"`
}

func (r *CreateCompanyRequest) ToCommand(identity authorization.Identity) usecases.CreateCompanyCommand {
	return usecases.CreateCompanyCommand{
		Identity:    identity,
		Key:         r.Key,
		Name:        r.Name,
		City:        r.City,
		ManagerName: r.ManagerName,
	}
}

type UpdateCompanyRequest struct {
	Name        string `json:"name" binding:"required,max=128"`
	City        string `json:"city,omitempty" binding:"max=128"`
	ManagerName string `json:"manager_name,omitempty" binding:"max=128"`
}

func (r *UpdateCompanyRequest) ToCommand(identity authorization.Identity, key string) usecases.UpdateCompanyCommand {
	return usecases.UpdateCompanyCommand{
		Identity:    identity,
		Key:         key,
		Name:        r.Name,
		City:        r.City,
		ManagerName: r.ManagerName,
	}
}

type ListCompaniesRequest struct {
	City *string
}

func parseListCompaniesRequest(c *gin.Context) *ListCompaniesRequest {
	req := &ListCompaniesRequest{}

	if city := c.Query("city"); city != "" {
		req.City = &city
	}

	return req
}

type CreateCompanyResponse struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type UpdateCompanyResponse struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type CompanyResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func toCompanyResponse(r usecases.CompanyResult) CompanyResponse {
	return CompanyResponse{
		Key:         r.Key,
		Name:        r.Name,
		City:        r.City,
		ManagerName: r.ManagerName,
		CreatedAt:   r.CreatedAt.UnixMilli(),
		UpdatedAt:   r.UpdatedAt.UnixMilli(),
	}
}
