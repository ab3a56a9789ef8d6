package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
)

// Ticket is a unit of support work. It is created open at the pending stage
// with zero value, advanced through stages by an administrator, and closed
// when the terminal stage is reached. Closure is a state transition; tickets
// are never deleted in normal operation.
type Ticket struct {
	id          uint
	companyKey  string
	author      string
	description string
	status      vo.TicketStatus
	stage       vo.Stage
	value       float64
	version     int
	openedAt    time.Time
	closedAt    *time.Time
}

// ErrEmptyDescription marks a blank or whitespace-only problem description.
var ErrEmptyDescription = fmt.Errorf("description is required")

// ErrTicketClosed marks a mutation attempt on a closed ticket.
var ErrTicketClosed = fmt.Errorf("ticket is closed")

// ErrNegativeValue marks a negative monetary value.
var ErrNegativeValue = fmt.Errorf("value must not be negative")

func NewTicket(companyKey, author, description string) (*Ticket, error) {
	if len(strings.TrimSpace(companyKey)) == 0 {
		return nil, fmt.Errorf("company key is required")
	}
	if len(strings.TrimSpace(author)) == 0 {
		return nil, fmt.Errorf("author is required")
	}
	if len(strings.TrimSpace(description)) == 0 {
		return nil, ErrEmptyDescription
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	return &Ticket{
		companyKey:  companyKey,
		author:      author,
		description: description,
		status:      vo.StatusOpen,
		stage:       vo.StagePending,
		value:       0,
		version:     1,
		openedAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructTicket(
	id uint,
	companyKey string,
	author string,
	description string,
	status vo.TicketStatus,
	stage vo.Stage,
	value float64,
	version int,
	openedAt time.Time,
	closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(companyKey) == 0 {
		return nil, fmt.Errorf("company key is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !stage.IsValid() {
		return nil, fmt.Errorf("invalid stage: %s", stage)
	}

	return &Ticket{
		id:          id,
		companyKey:  companyKey,
		author:      author,
		description: description,
		status:      status,
		stage:       stage,
		value:       value,
		version:     version,
		openedAt:    openedAt,
		closedAt:    closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) CompanyKey() string {
	return t.companyKey
}

func (t *Ticket) Author() string {
	return t.author
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) Stage() vo.Stage {
	return t.stage
}

func (t *Ticket) Value() float64 {
	return t.value
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) OpenedAt() time.Time {
	return t.openedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Advance moves the ticket to a new stage and records the service value.
// A closed ticket rejects every further advance; value must never be
// negative. Reaching the terminal stage closes the ticket and stamps the
// closure time; any earlier advance updates the value speculatively while
// the status stays open.
func (t *Ticket) Advance(newStage vo.Stage, newValue float64) error {
	if t.status.IsClosed() {
		return ErrTicketClosed
	}
	if !newStage.IsValid() {
		return fmt.Errorf("invalid stage: %s", newStage)
	}
	if newValue < 0 {
		return ErrNegativeValue
	}

	t.stage = newStage
	t.value = newValue
	t.version++

	if newStage.IsTerminal() {
		now := biztime.NowUTC()
		t.status = vo.StatusClosed
		t.closedAt = &now
	}

	return nil
}
