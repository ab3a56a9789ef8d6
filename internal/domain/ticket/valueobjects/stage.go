package valueobjects

import "fmt"

// Stage is the fine-grained progress label within the open status.
// StageDone is the terminal stage: advancing to it closes the ticket.
type Stage string

const (
	StagePending      Stage = "pending"
	StageEnRoute      Stage = "en_route"
	StageInProgress   Stage = "in_progress"
	StageAwaitingPart Stage = "awaiting_part"
	StageDone         Stage = "done"
)

var validStages = map[Stage]bool{
	StagePending:      true,
	StageEnRoute:      true,
	StageInProgress:   true,
	StageAwaitingPart: true,
	StageDone:         true,
}

func (s Stage) String() string {
	return string(s)
}

func (s Stage) IsValid() bool {
	return validStages[s]
}

// IsTerminal reports whether reaching this stage closes the ticket.
func (s Stage) IsTerminal() bool {
	return s == StageDone
}

func NewStage(s string) (Stage, error) {
	stage := Stage(s)
	if !stage.IsValid() {
		return "", fmt.Errorf("invalid ticket stage: %s", s)
	}
	return stage, nil
}
