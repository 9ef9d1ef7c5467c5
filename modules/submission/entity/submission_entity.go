package entity

import (
	"time"

	evententity "marathon-submissions/modules/event/entity"

	"github.com/google/uuid"
)

// CategoryStatus is the review status of a submitted category. New
// categories start PENDING; admins transition them out.
type CategoryStatus string

const (
	StatusPending  CategoryStatus = "PENDING"
	StatusDeclined CategoryStatus = "DECLINED"
	StatusAccepted CategoryStatus = "ACCEPTED"
)

func (s CategoryStatus) Valid() bool {
	switch s {
	case StatusPending, StatusDeclined, StatusAccepted:
		return true
	}
	return false
}

// Submission is the base record for a submitted game; the runs themselves
// live in its categories.
type Submission struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Username    string    `db:"username" json:"username"`
	EventID     uuid.UUID `db:"event_id" json:"event_id"`
	Game        string    `db:"game" json:"game"`
	Platform    string    `db:"platform" json:"platform"`
	ReleaseYear string    `db:"release_year" json:"release_year"`
	TwitchGame  string    `db:"twitch_game" json:"twitch_game"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`

	Categories []SubmissionCategory `db:"-" json:"categories"`
}

// SubmissionCategory is one run (category) under a submission.
type SubmissionCategory struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	SubmissionID uuid.UUID      `db:"submission_id" json:"submission_id"`
	Status       CategoryStatus `db:"status" json:"status"`
	Category     string         `db:"category" json:"category"`
	Race         bool           `db:"race" json:"race"`
	EstimateSec  int64          `db:"estimate_sec" json:"estimate_seconds"`
	Video        string         `db:"video" json:"video"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`
}

func (c *SubmissionCategory) Estimate() time.Duration {
	return time.Duration(c.EstimateSec) * time.Second
}

// CanEdit reports whether this category may still be changed: only while
// pending and while the event is open for edits.
func (c *SubmissionCategory) CanEdit(stage evententity.EventStage) bool {
	return stage.AcceptsEdits() && c.Status == StatusPending
}

// DeriveStatus computes a submission's aggregate status from its categories.
// ACCEPTED dominates PENDING dominates DECLINED; no categories means
// DECLINED. Always computed on read, never stored.
func DeriveStatus(categories []SubmissionCategory) CategoryStatus {
	for i := range categories {
		if categories[i].Status == StatusAccepted {
			return StatusAccepted
		}
	}
	for i := range categories {
		if categories[i].Status == StatusPending {
			return StatusPending
		}
	}
	return StatusDeclined
}

// Status is the derived aggregate status of the submission.
func (s *Submission) Status() CategoryStatus {
	return DeriveStatus(s.Categories)
}

// CanEdit reports whether the whole submission may be edited.
func (s *Submission) CanEdit(stage evententity.EventStage) bool {
	if !stage.AcceptsEdits() {
		return false
	}
	for i := range s.Categories {
		if !s.Categories[i].CanEdit(stage) {
			return false
		}
	}
	return true
}
