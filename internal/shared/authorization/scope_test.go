package authorization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/shared/errors"
)

func adminIdentity() Identity {
	return NewIdentity("root", RoleAdmin, "", "Root Admin")
}

func clientIdentity(companyKey string) Identity {
	return NewIdentity("contact", RoleClient, companyKey, "Company Contact")
}

func TestScope_AdminSeesEverything(t *testing.T) {
	for _, kind := range []EntityKind{EntityCompany, EntityUser, EntityTicket} {
		pred, err := Scope(adminIdentity(), kind)
		require.NoError(t, err, "kind %s", kind)
		assert.True(t, pred.Unrestricted())
		assert.True(t, pred.Allows("11.222.333/0001-44"))
		assert.True(t, pred.Allows("99.888.777/0001-66"))
	}
}

func TestScope_ClientRestrictedToOwnCompany(t *testing.T) {
	identity := clientIdentity("11.222.333/0001-44")

	for _, kind := range []EntityKind{EntityTicket, EntityCompany} {
		pred, err := Scope(identity, kind)
		require.NoError(t, err, "kind %s", kind)
		assert.False(t, pred.Unrestricted())
		assert.True(t, pred.Allows("11.222.333/0001-44"))
		assert.False(t, pred.Allows("99.888.777/0001-66"))
	}
}

func TestScope_ClientNeverReadsUsers(t *testing.T) {
	_, err := Scope(clientIdentity("11.222.333/0001-44"), EntityUser)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}

func TestScope_UnknownKindRejected(t *testing.T) {
	_, err := Scope(adminIdentity(), EntityKind("session"))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
}

func TestScope_EmptyAffiliationMatchesNothing(t *testing.T) {
	pred, err := Scope(clientIdentity(""), EntityTicket)
	require.NoError(t, err)
	assert.False(t, pred.Allows(""))
	assert.False(t, pred.Allows("11.222.333/0001-44"))
}

func TestCanOpenTicketFor(t *testing.T) {
	tests := []struct {
		name       string
		identity   Identity
		companyKey string
		want       bool
	}{
		{"admin any company", adminIdentity(), "11.222.333/0001-44", true},
		{"client own company", clientIdentity("11.222.333/0001-44"), "11.222.333/0001-44", true},
		{"client other company", clientIdentity("11.222.333/0001-44"), "99.888.777/0001-66", false},
		{"client empty affiliation", clientIdentity(""), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanOpenTicketFor(tt.identity, tt.companyKey))
		})
	}
}

func TestWritePredicates_AdminOnly(t *testing.T) {
	admin := adminIdentity()
	client := clientIdentity("11.222.333/0001-44")

	assert.True(t, CanAdvanceTickets(admin))
	assert.False(t, CanAdvanceTickets(client))

	assert.True(t, CanManageCompanies(admin))
	assert.False(t, CanManageCompanies(client))

	assert.True(t, CanManageUsers(admin))
	assert.False(t, CanManageUsers(client))
}

func TestCanReadTicketOf(t *testing.T) {
	client := clientIdentity("11.222.333/0001-44")

	assert.True(t, CanReadTicketOf(client, "11.222.333/0001-44"))
	assert.False(t, CanReadTicketOf(client, "99.888.777/0001-66"))
	assert.True(t, CanReadTicketOf(adminIdentity(), "99.888.777/0001-66"))
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseUserRole("admin"))
	assert.Equal(t, RoleClient, ParseUserRole("client"))
	assert.Equal(t, RoleClient, ParseUserRole("something-else"))
}
