package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/company"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/errors"
)

// inMemoryTicketStore backs the lifecycle scenario with real state so the
// open and advance use cases observe each other's writes.
type inMemoryTicketStore struct {
	nextID  uint
	tickets map[uint]*ticket.Ticket
}

func newInMemoryTicketStore() *inMemoryTicketStore {
	return &inMemoryTicketStore{nextID: 1, tickets: map[uint]*ticket.Ticket{}}
}

func (s *inMemoryTicketStore) repo() *mockTicketRepository {
	return &mockTicketRepository{
		SaveFunc: func(ctx context.Context, t *ticket.Ticket) error {
			if err := t.SetID(s.nextID); err != nil {
				return err
			}
			s.tickets[s.nextID] = t
			s.nextID++
			return nil
		},
		GetByIDFunc: func(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
			t, ok := s.tickets[ticketID]
			if !ok {
				return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
			}
			return t, nil
		},
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			if _, ok := s.tickets[t.ID()]; !ok {
				return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", t.ID()))
			}
			s.tickets[t.ID()] = t
			return nil
		},
	}
}

func TestTicketLifecycle_OpenAdvanceCloseScenario(t *testing.T) {
	store := newInMemoryTicketStore()
	ticketRepo := store.repo()
	companyRepo := &mockCompanyRepository{
		GetByKeyFunc: func(ctx context.Context, key string) (*company.Company, error) {
			if key != "acme" {
				return nil, errors.NewNotFoundError(fmt.Sprintf("company %s not found", key))
			}
			return acmeCompany(t), nil
		},
	}

	openUC := NewOpenTicketUseCase(ticketRepo, companyRepo, nil, &mockLogger{})
	advanceUC := NewAdvanceTicketUseCase(ticketRepo, &mockLogger{})
	getUC := NewGetTicketUseCase(ticketRepo, &mockLogger{})

	// Client contact opens a ticket for their own company.
	opened, err := openUC.Execute(context.Background(), OpenTicketCommand{
		Identity:    clientIdentity("acme"),
		Description: "server room AC is down",
	})
	require.NoError(t, err)
	assert.Equal(t, "open", opened.Status)
	assert.Equal(t, "pending", opened.Stage)

	// Freshly opened tickets read back at value zero.
	fetched, err := getUC.Execute(context.Background(), GetTicketQuery{
		Identity: clientIdentity("acme"),
		TicketID: opened.TicketID,
	})
	require.NoError(t, err)
	assert.Equal(t, float64(0), fetched.Value)

	// The administrator works the ticket through its stages.
	for _, stage := range []string{"en_route", "in_progress"} {
		result, err := advanceUC.Execute(context.Background(), AdvanceTicketCommand{
			Identity: adminIdentity(),
			TicketID: opened.TicketID,
			Stage:    stage,
			Value:    150,
		})
		require.NoError(t, err)
		assert.Equal(t, "open", result.Status)
		assert.Nil(t, result.ClosedAt)
	}

	// Reaching the terminal stage closes the ticket and records the value.
	closed, err := advanceUC.Execute(context.Background(), AdvanceTicketCommand{
		Identity: adminIdentity(),
		TicketID: opened.TicketID,
		Stage:    "done",
		Value:    320.50,
	})
	require.NoError(t, err)
	assert.Equal(t, "closed", closed.Status)
	assert.Equal(t, 320.50, closed.Value)
	require.NotNil(t, closed.ClosedAt)

	// Any further advance is rejected; the stored row keeps its final state.
	_, err = advanceUC.Execute(context.Background(), AdvanceTicketCommand{
		Identity: adminIdentity(),
		TicketID: opened.TicketID,
		Stage:    "pending",
		Value:    0,
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidTransition))

	final, err := getUC.Execute(context.Background(), GetTicketQuery{
		Identity: clientIdentity("acme"),
		TicketID: opened.TicketID,
	})
	require.NoError(t, err)
	assert.Equal(t, "closed", final.Status)
	assert.Equal(t, "done", final.Stage)
	assert.Equal(t, 320.50, final.Value)

	// A contact from another company cannot even confirm the ticket exists.
	_, err = getUC.Execute(context.Background(), GetTicketQuery{
		Identity: clientIdentity("globex"),
		TicketID: opened.TicketID,
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
}
