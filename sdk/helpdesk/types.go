// Package helpdesk provides a Go SDK for interacting with the helpdesk API.
package helpdesk

// Session represents an authenticated session returned by login.
type Session struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	CompanyKey   string `json:"company_key,omitempty"`
	DisplayName  string `json:"display_name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// TokenPair represents a refreshed access/refresh token pair.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

// Ticket represents a support ticket as returned by the API.
type Ticket struct {
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

// OpenTicketReceipt confirms a newly opened ticket.
type OpenTicketReceipt struct {
	TicketID   uint   `json:"ticket_id"`
	CompanyKey string `json:"company_key"`
	Author     string `json:"author"`
	Status     string `json:"status"`
	Stage      string `json:"stage"`
	OpenedAt   int64  `json:"opened_at"`
}

// AdvanceTicketReceipt confirms a stage transition.
type AdvanceTicketReceipt struct {
	TicketID uint    `json:"ticket_id"`
	Status   string  `json:"status"`
	Stage    string  `json:"stage"`
	Value    float64 `json:"value"`
	ClosedAt *int64  `json:"closed_at,omitempty"`
}

// OpenTicketInput is the payload for opening a ticket. CompanyKey is
// required for administrators and ignored for client contacts.
type OpenTicketInput struct {
	Description string `json:"description"`
	CompanyKey  string `json:"company_key,omitempty"`
}

// AdvanceTicketInput is the payload for moving a ticket to a new stage.
type AdvanceTicketInput struct {
	Stage string  `json:"stage"`
	Value float64 `json:"value"`
}

// TicketFilter narrows ticket listings. Zero-value fields are omitted.
type TicketFilter struct {
	CompanyKey string
	Status     string
	Stage      string
}

// Company represents a company as returned by the API.
type Company struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// CompanyInput is the payload for creating or updating a company.
type CompanyInput struct {
	Key         string `json:"key,omitempty"`
	Name        string `json:"name"`
	City        string `json:"city,omitempty"`
	ManagerName string `json:"manager_name,omitempty"`
}

// User represents a user account as returned by the API.
type User struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	CompanyKey  string `json:"company_key,omitempty"`
	DisplayName string `json:"display_name"`
	CreatedAt   int64  `json:"created_at"`
}

// CreateUserInput is the payload for creating a user account.
type CreateUserInput struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CompanyKey  string `json:"company_key,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// DashboardStats represents the administrator dashboard aggregates.
type DashboardStats struct {
	TotalTickets   int64   `json:"total_tickets"`
	OpenTickets    int64   `json:"open_tickets"`
	PendingTickets int64   `json:"pending_tickets"`
	TotalRevenue   float64 `json:"total_revenue"`
	TotalCompanies int64   `json:"total_companies"`
}

// apiResponse represents the standard API response structure.
type apiResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message,omitempty"`
	Data    any       `json:"data,omitempty"`
	Error   *apiError `json:"error,omitempty"`
}

// apiError carries the error payload of a failed response.
type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// listPage is the envelope data for list endpoints.
type listPage[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}
