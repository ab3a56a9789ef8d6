package ticket

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"

	"helpdesk/internal/interfaces/http/middleware"
)

type TicketHandler struct {
	openTicketUC        usecases.OpenTicketExecutor
	advanceTicketUC     usecases.AdvanceTicketExecutor
	getTicketUC         usecases.GetTicketExecutor
	listTicketsUC       usecases.ListTicketsExecutor
	getDashboardStatsUC usecases.GetDashboardStatsExecutor
	logger              logger.Interface
}

func NewTicketHandler(
	openTicketUC usecases.OpenTicketExecutor,
	advanceTicketUC usecases.AdvanceTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	getDashboardStatsUC usecases.GetDashboardStatsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		openTicketUC:        openTicketUC,
		advanceTicketUC:     advanceTicketUC,
		getTicketUC:         getTicketUC,
		listTicketsUC:       listTicketsUC,
		getDashboardStatsUC: getDashboardStatsUC,
		logger:              logger,
	}
}

// OpenTicket handles POST /tickets
func (h *TicketHandler) OpenTicket(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	var req OpenTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for open ticket", "error", err)
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.openTicketUC.Execute(c.Request.Context(), req.ToCommand(identity))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, OpenTicketResponse{
		TicketID:   result.TicketID,
		CompanyKey: result.CompanyKey,
		Author:     result.Author,
		Status:     result.Status,
		Stage:      result.Stage,
		OpenedAt:   result.OpenedAt.UnixMilli(),
	}, "Ticket opened successfully")
}

// AdvanceTicket handles PATCH /tickets/:id/stage
func (h *TicketHandler) AdvanceTicket(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdvanceTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, apperrors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.advanceTicketUC.Execute(c.Request.Context(), usecases.AdvanceTicketCommand{
		Identity: identity,
		TicketID: ticketID,
		Stage:    req.Stage,
		Value:    req.Value,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, AdvanceTicketResponse{
		TicketID: result.TicketID,
		Status:   result.Status,
		Stage:    result.Stage,
		Value:    result.Value,
		ClosedAt: toMillis(result.ClosedAt),
	}, "Ticket advanced successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{
		Identity: identity,
		TicketID: ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, toTicketResponse(*result))
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	req := parseListTicketsRequest(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Identity:   identity,
		CompanyKey: req.CompanyKey,
		Status:     req.Status,
		Stage:      req.Stage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]TicketResponse, 0, len(result.Tickets))
	for _, item := range result.Tickets {
		responses = append(responses, toTicketResponse(item))
	}

	utils.ListSuccessResponse(c, responses, result.Total)
}

// GetDashboardStats handles GET /stats/dashboard
func (h *TicketHandler) GetDashboardStats(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing identity")
		return
	}

	result, err := h.getDashboardStatsUC.Execute(c.Request.Context(), usecases.GetDashboardStatsQuery{
		Identity: identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, DashboardStatsResponse{
		TotalTickets:   result.TotalTickets,
		OpenTickets:    result.OpenTickets,
		PendingTickets: result.PendingTickets,
		TotalRevenue:   result.TotalRevenue,
		TotalCompanies: result.TotalCompanies,
	})
}
