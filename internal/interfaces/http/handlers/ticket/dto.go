package ticket

import (
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
)

type OpenTicketRequest struct {
	Description string `json:"description" binding:"required,max=5000"`
	// company_key is required for administrators opening a ticket on a
	// company's behalf; client contacts may omit it.
	CompanyKey string `json:"company_key,omitempty" binding:"max=32"`
}

func (r *OpenTicketRequest) ToCommand(identity authorization.Identity) usecases.OpenTicketCommand {
	return usecases.OpenTicketCommand{
		Identity:    identity,
		Description: r.Description,
		CompanyKey:  r.CompanyKey,
	}
}

type AdvanceTicketRequest struct {
	Stage string  `json:"stage" binding:"required"`
	Value float64 `json:"value"`
}

type ListTicketsRequest struct {
	CompanyKey *string
	Status     *string
	Stage      *string
}

func parseListTicketsRequest(c *gin.Context) *ListTicketsRequest {
	req := &ListTicketsRequest{}

	if companyKey := c.Query("company_key"); companyKey != "" {
		req.CompanyKey = &companyKey
	}
	if status := c.Query("status"); status != "" {
		req.Status = &status
	}
	if stage := c.Query("stage"); stage != "" {
		req.Stage = &stage
	}

	return req
}

type TicketResponse struct {
	TicketID    uint    `json:"ticket_id"`
	CompanyKey  string  `json:"company_key"`
	Author      string  `json:"author"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Stage       string  `json:"stage"`
	Value       float64 `json:"value"`
	OpenedAt    int64   `json:"opened_at"`
	ClosedAt    *int64  `json:"closed_at,omitempty"`
}

func toTicketResponse(r usecases.TicketResult) TicketResponse {
	return TicketResponse{
		TicketID:    r.TicketID,
		CompanyKey:  r.CompanyKey,
		Author:      r.Author,
		Description: r.Description,
		Status:      r.Status,
		Stage:       r.Stage,
		Value:       r.Value,
		OpenedAt:    r.OpenedAt.UnixMilli(),
		ClosedAt:    toMillis(r.ClosedAt),
	}
}

type OpenTicketResponse struct {
	TicketID   uint   `json:"ticket_id"`
	CompanyKey string `json:"company_key"`
	Author     string `json:"author"`
	Status     string `json:"status"`
	Stage      string `json:"stage"`
	OpenedAt   int64  `json:"opened_at"`
}

type AdvanceTicketResponse struct {
	TicketID uint    `json:"ticket_id"`
	Status   string  `json:"status"`
	Stage    string  `json:"stage"`
	Value    float64 `json:"value"`
	ClosedAt *int64  `json:"closed_at,omitempty"`
}

type DashboardStatsResponse struct {
	TotalTickets   int64   `json:"total_tickets"`
	OpenTickets    int64   `json:"open_tickets"`
	PendingTickets int64   `json:"pending_tickets"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCompanies int64   `json:"total_companies"`
}

func toMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
