package helpdesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the helpdesk API client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithToken sets a pre-obtained access token, skipping Login.
func WithToken(token string) Option {
	return func(client *Client) {
		client.token = token
	}
}

// NewClient creates a new helpdesk API client.
//
// Parameters:
//   - baseURL: The API base URL (e.g., "https://helpdesk.example.com")
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates with username and password. The returned access
// token is stored on the client for subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}

	var session Session
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/auth/login", body, &session); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	c.token = session.AccessToken
	return &session, nil
}

// Refresh exchanges a refresh token for a new token pair. The new access
// token is stored on the client.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body := map[string]string{
		"refresh_token": refreshToken,
	}

	var pair TokenPair
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/auth/refresh", body, &pair); err != nil {
		return nil, fmt.Errorf("refresh: %w", err)
	}
	c.token = pair.AccessToken
	return &pair, nil
}

// OpenTicket opens a new ticket.
func (c *Client) OpenTicket(ctx context.Context, input OpenTicketInput) (*OpenTicketReceipt, error) {
	var receipt OpenTicketReceipt
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/tickets", input, &receipt); err != nil {
		return nil, fmt.Errorf("open ticket: %w", err)
	}
	return &receipt, nil
}

// AdvanceTicket moves a ticket to a new stage, optionally recording a value.
func (c *Client) AdvanceTicket(ctx context.Context, ticketID uint, input AdvanceTicketInput) (*AdvanceTicketReceipt, error) {
	url := fmt.Sprintf("%s/tickets/%d/stage", c.baseURL, ticketID)

	var receipt AdvanceTicketReceipt
	if err := c.doRequest(ctx, http.MethodPatch, url, input, &receipt); err != nil {
		return nil, fmt.Errorf("advance ticket: %w", err)
	}
	return &receipt, nil
}

// GetTicket retrieves a single ticket by ID.
func (c *Client) GetTicket(ctx context.Context, ticketID uint) (*Ticket, error) {
	url := fmt.Sprintf("%s/tickets/%d", c.baseURL, ticketID)

	var ticket Ticket
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &ticket); err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &ticket, nil
}

// ListTickets retrieves tickets matching the filter, along with the total count.
func (c *Client) ListTickets(ctx context.Context, filter TicketFilter) ([]Ticket, int64, error) {
	q := url.Values{}
	if filter.CompanyKey != "" {
		q.Set("company_key", filter.CompanyKey)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Stage != "" {
		q.Set("stage", filter.Stage)
	}

	var page listPage[Ticket]
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/tickets"+encodeQuery(q), nil, &page); err != nil {
		return nil, 0, fmt.Errorf("list tickets: %w", err)
	}
	return page.Items, page.Total, nil
}

// CreateCompany creates a company. Administrator only.
func (c *Client) CreateCompany(ctx context.Context, input CompanyInput) error {
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/companies", input, nil); err != nil {
		return fmt.Errorf("create company: %w", err)
	}
	return nil
}

// UpdateCompany replaces a company's details. Administrator only.
func (c *Client) UpdateCompany(ctx context.Context, key string, input CompanyInput) error {
	url := fmt.Sprintf("%s/companies/%s", c.baseURL, key)

	if err := c.doRequest(ctx, http.MethodPut, url, input, nil); err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	return nil
}

// DeleteCompany deletes a company with no remaining users or tickets.
// Administrator only.
func (c *Client) DeleteCompany(ctx context.Context, key string) error {
	url := fmt.Sprintf("%s/companies/%s", c.baseURL, key)

	if err := c.doRequest(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// GetCompany retrieves a single company by key.
func (c *Client) GetCompany(ctx context.Context, key string) (*Company, error) {
	url := fmt.Sprintf("%s/companies/%s", c.baseURL, key)

	var company Company
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &company); err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &company, nil
}

// ListCompanies retrieves companies visible to the caller.
func (c *Client) ListCompanies(ctx context.Context, city string) ([]Company, int64, error) {
	q := url.Values{}
	if city != "" {
		q.Set("city", city)
	}

	var page listPage[Company]
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/companies"+encodeQuery(q), nil, &page); err != nil {
		return nil, 0, fmt.Errorf("list companies: %w", err)
	}
	return page.Items, page.Total, nil
}

// CreateUser creates a user account. Administrator only.
func (c *Client) CreateUser(ctx context.Context, input CreateUserInput) error {
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL+"/users", input, nil); err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// ListUsers retrieves user accounts. Administrator only.
func (c *Client) ListUsers(ctx context.Context, companyKey, role string) ([]User, int64, error) {
	q := url.Values{}
	if companyKey != "" {
		q.Set("company_key", companyKey)
	}
	if role != "" {
		q.Set("role", role)
	}

	var page listPage[User]
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/users"+encodeQuery(q), nil, &page); err != nil {
		return nil, 0, fmt.Errorf("list users: %w", err)
	}
	return page.Items, page.Total, nil
}

// DeleteUser deletes a user account. Administrator only.
func (c *Client) DeleteUser(ctx context.Context, username string) error {
	url := fmt.Sprintf("%s/users/%s", c.baseURL, username)

	if err := c.doRequest(ctx, http.MethodDelete, url, nil, nil); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ResetPassword sets a new password for a user. Administrator only.
func (c *Client) ResetPassword(ctx context.Context, username, password string) error {
	url := fmt.Sprintf("%s/users/%s/password", c.baseURL, username)

	body := map[string]string{
		"password": password,
	}
	if err := c.doRequest(ctx, http.MethodPut, url, body, nil); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}

// DashboardStats retrieves the dashboard aggregates. Administrator only.
func (c *Client) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL+"/stats/dashboard", nil, &stats); err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return &stats, nil
}

// doRequest performs an HTTP request and decodes the response.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiResp apiResponse
		if err := json.Unmarshal(respBody, &apiResp); err == nil && apiResp.Error != nil {
			return &APIError{
				StatusCode: resp.StatusCode,
				Type:       apiResp.Error.Type,
				Message:    apiResp.Error.Message,
				Details:    apiResp.Error.Details,
			}
		}
		return fmt.Errorf("api error: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	if result == nil || len(respBody) == 0 {
		return nil
	}

	var apiResp apiResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if !apiResp.Success {
		return fmt.Errorf("api error: %s", apiResp.Message)
	}

	if apiResp.Data == nil {
		return nil
	}

	// Re-marshal and unmarshal to convert Data to the target type
	dataBytes, err := json.Marshal(apiResp.Data)
	if err != nil {
		return fmt.Errorf("marshal data: %w", err)
	}

	if err := json.Unmarshal(dataBytes, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}

	return nil
}

func encodeQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}
