package company

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/company/usecases"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"

	"helpdesk/internal/interfaces/http/middleware"
)

type CompanyHandler struct {
	createCompanyUC usecases.CreateCompanyExecutor
	updateCompanyUC usecases.UpdateCompanyExecutor
	deleteCompanyUC usecases.DeleteCompanyExecutor
	getCompanyUC    usecases.GetCompanyExecutor
	listCompaniesUC usecases.ListCompaniesExecutor
	logger          logger.Interface
}

func NewCompanyHandler(
	createCompanyUC usecases.CreateCompanyExecutor,
	updateCompanyUC usecases.UpdateCompanyExecutor,
	deleteCompanyUC usecases.DeleteCompanyExecutor,
	getCompanyUC usecases.GetCompanyExecutor,
	listCompaniesUC usecases.ListCompaniesExecutor,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createCompanyUC: createCompanyUC,
		updateCompanyUC: updateCompanyUC,
		deleteCompanyUC: deleteCompanyUC,
		getCompanyUC:    getCompanyUC,
		listCompaniesUC: listCompaniesUC,
		logger:          logger,
	}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create company", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.createCompanyUC.Execute(c.Request.Context(), req.ToCommand(identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, CreateCompanyResponse{
		Key:       result.Key,
		Name:      result.Name,
		CreatedAt: result.CreatedAt.UnixMilli(),
	}, "Company created successfully")
}

// UpdateCompany handles PUT /companies/:key
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateCompanyUC.Execute(c.Request.Context(), req.ToCommand(identity, c.Param("key")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, UpdateCompanyResponse{
		Key:  result.Key,
		Name: result.Name,
	}, "Company updated successfully")
}

// DeleteCompany handles DELETE /companies/:key
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	_, err := h.deleteCompanyUC.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{
		Identity: identity,
		Key:      c.Param("key"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// GetCompany handles GET /companies/:key
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	result, err := h.getCompanyUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{
		Identity: identity,
		Key:      c.Param("key"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toCompanyResponse(*result))
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	req := parseListCompaniesRequest(c)

	result, err := h.listCompaniesUC.Execute(c.Request.Context(), usecases.ListCompaniesQuery{
		Identity: identity,
		City:     req.City,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]CompanyResponse, 0, len(result.Companies))
	for _, item := range result.Companies {
		responses = append(responses, toCompanyResponse(item))
	}

	utils.ListSuccessResponse(c, responses, result.Total)
}
