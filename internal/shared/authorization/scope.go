package authorization

import (
	"gorm.io/gorm"

	"helpdesk/internal/shared/errors"
)

// EntityKind names a scopable table.
type EntityKind string

const (
	EntityCompany EntityKind = "company"
	EntityUser    EntityKind = "user"
	EntityTicket  EntityKind = "ticket"
)

// keyColumns maps each entity kind to the column carrying its company key.
var keyColumns = map[EntityKind]string{
	EntityCompany: "key",
	EntityUser:    "company_key",
	EntityTicket:  "company_key",
}

// Predicate is a row filter produced by the access scoper. Repositories
// apply it with GormScope; single-row reads check Allows.
type Predicate struct {
	unrestricted bool
	companyKey   string
	keyColumn    string
}

// Unrestricted reports whether the predicate matches every row.
func (p Predicate) Unrestricted() bool {
	return p.unrestricted
}

// Allows reports whether a row with the given company key passes the filter.
func (p Predicate) Allows(companyKey string) bool {
	if p.unrestricted {
		return true
	}
	return p.companyKey != "" && p.companyKey == companyKey
}

// GormScope translates the predicate into a GORM scope.
//
// Example usage:
//
//	db.Scopes(pred.GormScope()).Find(&rows)
func (p Predicate) GormScope() func(db *gorm.DB) *gorm.DB {
	if p.unrestricted {
		return func(db *gorm.DB) *gorm.DB { return db }
	}
	column := p.keyColumn
	companyKey := p.companyKey
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", companyKey)
	}
}

// Scope returns the row filter the identity is entitled to for the given
// entity kind. Administrators read every row of every kind. Client contacts
// read tickets and the company row of their own affiliation only; user rows
// (which carry credential hashes) are never visible to them. The error case
// carries no row data.
func Scope(identity Identity, kind EntityKind) (Predicate, error) {
	column, ok := keyColumns[kind]
	if !ok {
		return Predicate{}, errors.NewForbiddenError("access to this resource is restricted")
	}

	if identity.IsAdmin() {
		return Predicate{unrestricted: true, keyColumn: column}, nil
	}

	if kind == EntityUser {
		return Predicate{}, errors.NewForbiddenError("user records are restricted to administrators")
	}

	return Predicate{companyKey: identity.CompanyKey, keyColumn: column}, nil
}

// CanReadTicketOf reports whether the identity may read a ticket row
// belonging to the given company.
func CanReadTicketOf(identity Identity, companyKey string) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.BelongsTo(companyKey)
}

// CanOpenTicketFor reports whether the identity may open a ticket scoped to
// the given company. Clients open tickets for their own company only;
// administrators may open on any company's behalf.
func CanOpenTicketFor(identity Identity, companyKey string) bool {
	if identity.IsAdmin() {
		return true
	}
	return identity.BelongsTo(companyKey)
}

// CanAdvanceTickets reports whether the identity may transition tickets.
// Client contacts read tickets but never mutate them.
func CanAdvanceTickets(identity Identity) bool {
	return identity.IsAdmin()
}

// CanManageCompanies reports whether the identity may create, edit or
// delete company rows.
func CanManageCompanies(identity Identity) bool {
	return identity.IsAdmin()
}

// CanManageUsers reports whether the identity may create or list user rows.
func CanManageUsers(identity Identity) bool {
	return identity.IsAdmin()
}
