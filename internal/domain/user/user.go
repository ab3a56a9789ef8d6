package user

import (
	"fmt"
	"strings"
	"time"

	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/biztime"
)

// User is a login-capable account. Client contacts are affiliated with
// exactly one company; administrators carry no affiliation. The credential
// is always a bcrypt digest, never the raw secret.
type User struct {
	username     string
	passwordHash string
	companyKey   *string
	displayName  string
	role         authorization.UserRole
	createdAt    time.Time
	updatedAt    time.Time
}

// NewClientContact creates a contact account scoped to a company.
func NewClientContact(username, passwordHash, companyKey, displayName string) (*User, error) {
	if err := validateAccount(username, passwordHash, displayName); err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(companyKey)) == 0 {
		return nil, fmt.Errorf("client contact requires a company affiliation")
	}

	now := biztime.NowUTC()
	key := companyKey

	return &User{
		username:     username,
		passwordHash: passwordHash,
		companyKey:   &key,
		displayName:  displayName,
		role:         authorization.RoleClient,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewAdministrator creates an administrator account. Administrators have no
// company affiliation; their scope spans every row.
func NewAdministrator(username, passwordHash, displayName string) (*User, error) {
	if err := validateAccount(username, passwordHash, displayName); err != nil {
		return nil, err
	}

	now := biztime.NowUTC()

	return &User{
		username:     username,
		passwordHash: passwordHash,
		displayName:  displayName,
		role:         authorization.RoleAdmin,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	username string,
	passwordHash string,
	companyKey *string,
	displayName string,
	role authorization.UserRole,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if len(username) == 0 {
		return nil, fmt.Errorf("username is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		username:     username,
		passwordHash: passwordHash,
		companyKey:   companyKey,
		displayName:  displayName,
		role:         role,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func validateAccount(username, passwordHash, displayName string) error {
	if len(strings.TrimSpace(username)) == 0 {
		return fmt.Errorf("username is required")
	}
	if len(username) > 64 {
		return fmt.Errorf("username exceeds maximum length of 64 characters")
	}
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	if len(strings.TrimSpace(displayName)) == 0 {
		return fmt.Errorf("display name is required")
	}
	return nil
}

func (u *User) Username() string {
	return u.username
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) CompanyKey() *string {
	return u.companyKey
}

func (u *User) DisplayName() string {
	return u.displayName
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// Identity builds the immutable request identity for this account.
func (u *User) Identity() authorization.Identity {
	companyKey := ""
	if u.companyKey != nil {
		companyKey = *u.companyKey
	}
	return authorization.NewIdentity(u.username, u.role, companyKey, u.displayName)
}

// ChangePasswordHash replaces the stored credential digest.
func (u *User) ChangePasswordHash(passwordHash string) error {
	if len(passwordHash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.updatedAt = biztime.NowUTC()
	return nil
}
