package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
)

func openTicket(t *testing.T, id uint, stage vo.Stage) *ticket.Ticket {
	t.Helper()

	tk, err := ticket.ReconstructTicket(
		id, "acme", "maria", "printer on fire",
		vo.StatusOpen, stage, 0, 1,
		time.Now().Add(-time.Hour), nil,
	)
	require.NoError(t, err)
	return tk
}

func closedTicket(t *testing.T, id uint) *ticket.Ticket {
	t.Helper()

	closedAt := time.Now().Add(-time.Minute)
	tk, err := ticket.ReconstructTicket(
		id, "acme", "maria", "printer on fire",
		vo.StatusClosed, vo.StageDone, 150, 3,
		time.Now().Add(-time.Hour), &closedAt,
	)
	require.NoError(t, err)
	return tk
}

func TestAdvanceTicketUseCase_Execute_Progression(t *testing.T) {
	tests := []struct {
		name       string
		from       vo.Stage
		to         string
		value      float64
		wantStatus string
	}{
		{name: "pending to en_route", from: vo.StagePending, to: "en_route", value: 0, wantStatus: "open"},
		{name: "en_route to in_progress", from: vo.StageEnRoute, to: "in_progress", value: 80, wantStatus: "open"},
		{name: "in_progress to awaiting_part", from: vo.StageInProgress, to: "awaiting_part", value: 80, wantStatus: "open"},
		{name: "done closes the ticket", from: vo.StageInProgress, to: "done", value: 230.50, wantStatus: "closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := openTicket(t, 1, tt.from)

			var updated *ticket.Ticket
			mockTickets := &mockTicketRepository{
				GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
					return existing, nil
				},
				UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
					updated = tk
					return nil
				},
			}

			useCase := NewAdvanceTicketUseCase(mockTickets, &mockLogger{})
			result, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
				Identity: adminIdentity(),
				TicketID: 1,
				Stage:    tt.to,
				Value:    tt.value,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.to, result.Stage)
			assert.Equal(t, tt.wantStatus, result.Status)
			assert.Equal(t, tt.value, result.Value)

			require.NotNil(t, updated)
			assert.Equal(t, 2, updated.Version())
			if tt.wantStatus == "closed" {
				assert.NotNil(t, result.ClosedAt)
			} else {
				assert.Nil(t, result.ClosedAt)
			}
		})
	}
}

func TestAdvanceTicketUseCase_Execute_ClosedTicketIsSticky(t *testing.T) {
	updateCalled := false
	mockTickets := &mockTicketRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return closedTicket(t, 1), nil
		},
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updateCalled = true
			return nil
		},
	}

	useCase := NewAdvanceTicketUseCase(mockTickets, &mockLogger{})

	// No stage leads out of a closed ticket, not even done itself.
	for _, stage := range []string{"pending", "en_route", "in_progress", "awaiting_part", "done"} {
		_, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
			Identity: adminIdentity(),
			TicketID: 1,
			Stage:    stage,
			Value:    150,
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidTransition), "stage %s", stage)
	}
	assert.False(t, updateCalled)
}

func TestAdvanceTicketUseCase_Execute_Rejections(t *testing.T) {
	t.Run("client forbidden", func(t *testing.T) {
		useCase := NewAdvanceTicketUseCase(&mockTicketRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
			Identity: clientIdentity("acme"),
			TicketID: 1,
			Stage:    "en_route",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeForbidden))
	})

	t.Run("unknown stage", func(t *testing.T) {
		useCase := NewAdvanceTicketUseCase(&mockTicketRepository{}, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
			Identity: adminIdentity(),
			TicketID: 1,
			Stage:    "teleported",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
	})

	t.Run("negative value", func(t *testing.T) {
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 1, vo.StagePending), nil
			},
		}

		useCase := NewAdvanceTicketUseCase(mockTickets, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
			Identity: adminIdentity(),
			TicketID: 1,
			Stage:    "en_route",
			Value:    -1,
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeInvalidValue))
	})

	t.Run("missing ticket", func(t *testing.T) {
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return nil, errors.NewNotFoundError("ticket 99 not found")
			},
		}

		useCase := NewAdvanceTicketUseCase(mockTickets, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
			Identity: adminIdentity(),
			TicketID: 99,
			Stage:    "en_route",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeNotFound))
	})

	t.Run("stale write surfaces", func(t *testing.T) {
		mockTickets := &mockTicketRepository{
			GetByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
				return openTicket(t, 1, vo.StagePending), nil
			},
			UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
				return errors.NewStaleWriteError("ticket 1 was modified concurrently")
			},
		}

		useCase := NewAdvanceTicketUseCase(mockTickets, &mockLogger{})
		_, err := useCase.Execute(context.Background(), AdvanceTicketCommand{
			Identity: adminIdentity(),
			TicketID: 1,
			Stage:    "en_route",
		})

		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeStaleWrite))
	})
}
