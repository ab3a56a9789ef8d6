package mappers

import (
	"time"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:          t.ID(),
		CompanyKey:  t.CompanyKey(),
		Author:      t.Author(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Stage:       t.Stage().String(),
		Value:       t.Value(),
		Version:     t.Version(),
		OpenedAt:    t.OpenedAt().UnixMilli(),
	}

	if t.ClosedAt() != nil {
		closed := t.ClosedAt().UnixMilli()
		model.ClosedAt = &closed
	}

	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, err
	}

	stage, err := vo.NewStage(model.Stage)
	if err != nil {
		return nil, err
	}

	var closedAt *time.Time
	if model.ClosedAt != nil {
		closed := time.UnixMilli(*model.ClosedAt).UTC()
		closedAt = &closed
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.CompanyKey,
		model.Author,
		model.Description,
		status,
		stage,
		model.Value,
		model.Version,
		time.UnixMilli(model.OpenedAt).UTC(),
		closedAt,
	)
}
