package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventStage is the submission stage of a marathon event. Transitions are
// manual admin actions; there is no timer-driven progression.
type EventStage string

const (
	StageNotOpen EventStage = "NOT_OPEN"
	StageOpen    EventStage = "OPEN"
	StageLocked  EventStage = "LOCKED"
	StageClosed  EventStage = "CLOSED"
)

func (s EventStage) Valid() bool {
	switch s {
	case StageNotOpen, StageOpen, StageLocked, StageClosed:
		return true
	}
	return false
}

// AcceptsSubmissions reports whether new submissions are allowed in this
// stage. LOCKED still accepts new submissions, it only freezes edits.
func (s EventStage) AcceptsSubmissions() bool {
	switch s {
	case StageOpen, StageLocked:
		return true
	case StageNotOpen, StageClosed:
		return false
	}
	return false
}

// AcceptsEdits reports whether existing submissions may be edited.
func (s EventStage) AcceptsEdits() bool {
	switch s {
	case StageOpen:
		return true
	case StageNotOpen, StageLocked, StageClosed:
		return false
	}
	return false
}

// Event is a marathon event runners submit to.
type Event struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Slug          string     `db:"slug" json:"slug"`
	Name          string     `db:"name" json:"name"`
	Active        bool       `db:"active" json:"active"`
	Stage         EventStage `db:"stage" json:"stage"`
	StartDate     time.Time  `db:"start_date" json:"start_date"`
	EndDate       time.Time  `db:"end_date" json:"end_date"`
	MaxGames      int        `db:"max_games" json:"max_games"`
	MaxCategories int        `db:"max_categories" json:"max_categories"`
	Guidelines    string     `db:"guidelines" json:"guidelines"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
