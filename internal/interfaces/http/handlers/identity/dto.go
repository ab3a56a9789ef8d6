package identity

import "helpdesk/internal/application/identity/usecases"

type LoginRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToCommand() usecases.AuthenticateCommand {
	return usecases.AuthenticateCommand{
		Username: r.Username,
		Password: r.Password,
	}
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type BootstrapRequest struct {
	Username    string `json:"username" binding:"required,max=64"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required,max=128"`
}

func (r *BootstrapRequest) ToCommand() usecases.BootstrapAdminCommand {
	return usecases.BootstrapAdminCommand{
		Username:    r.Username,
		Password:    r.Password,
		DisplayName: r.DisplayName,
	}
}

type LoginResponse struct {
	Username     string `json:"username"`
	Role         string `json:"role"`
	CompanyKey   string `json:"company_key,omitempty"`
	DisplayName  string `json:"display_name"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type BootstrapResponse struct {
	Username    string `json:"username"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
}
