package authorization

// Identity is the authenticated caller for the duration of one request.
// It is constructed once by the auth middleware from verified token claims
// and passed explicitly into every use case; nothing reads it from globals.
type Identity struct {
	Username    string
	Role        UserRole
	CompanyKey  string
	DisplayName string
}

func NewIdentity(username string, role UserRole, companyKey, displayName string) Identity {
	return Identity{
		Username:    username,
		Role:        role,
		CompanyKey:  companyKey,
		DisplayName: displayName,
	}
}

func (i Identity) IsAdmin() bool {
	return i.Role.IsAdmin()
}

// BelongsTo reports whether the identity is affiliated with the given company.
func (i Identity) BelongsTo(companyKey string) bool {
	return i.CompanyKey != "" && i.CompanyKey == companyKey
}
