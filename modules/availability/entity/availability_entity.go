package entity

import (
	"time"

	"github.com/google/uuid"
)

// Availability is one contiguous time range a runner is available for during
// an event. The set of a runner's rows makes up their availability schedule
// and is always replaced as a whole.
type Availability struct {
	ID          uuid.UUID `db:"id" json:"id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	EventID     uuid.UUID `db:"event_id" json:"event_id"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	DurationSec int64     `db:"duration_sec" json:"duration_seconds"`
}

func (a *Availability) Duration() time.Duration {
	return time.Duration(a.DurationSec) * time.Second
}

// EndTime is computed from start time and duration, never stored.
func (a *Availability) EndTime() time.Time {
	return a.StartTime.Add(a.Duration())
}

// Hours is the number of whole hours in the duration.
func (a *Availability) Hours() int {
	return int(a.Duration().Hours())
}

// Interval is a derived (start, duration) pair before persistence.
type Interval struct {
	Start    time.Time     `json:"start"`
	Duration time.Duration `json:"duration"`
}

func (i Interval) End() time.Time {
	return i.Start.Add(i.Duration)
}
