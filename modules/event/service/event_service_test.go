package service

import (
	"testing"
	"time"

	evententity "marathon-submissions/modules/event/entity"
)

func eventEnding(name string, end time.Time) evententity.Event {
	return evententity.Event{
		Name:    name,
		Active:  true,
		EndDate: end,
	}
}

func TestSelectCurrentPrefersEarliestEndingUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)

	events := []evententity.Event{
		eventEnding("later", now.Add(30*24*time.Hour)),
		eventEnding("sooner", now.Add(7*24*time.Hour)),
		eventEnding("ended", now.Add(-24*time.Hour)),
	}

	got := SelectCurrent(events, now)
	if got == nil || got.Name != "sooner" {
		t.Fatalf("SelectCurrent = %+v, want the soonest-ending upcoming event", got)
	}
}

func TestSelectCurrentFallsBackToMostRecentlyEnded(t *testing.T) {
	now := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)

	events := []evententity.Event{
		eventEnding("old", now.Add(-60*24*time.Hour)),
		eventEnding("recent", now.Add(-24*time.Hour)),
	}

	got := SelectCurrent(events, now)
	if got == nil || got.Name != "recent" {
		t.Fatalf("SelectCurrent = %+v, want the most recently ended event", got)
	}
}

func TestSelectCurrentEmpty(t *testing.T) {
	now := time.Now()
	if got := SelectCurrent(nil, now); got != nil {
		t.Fatalf("SelectCurrent(nil) = %+v, want nil", got)
	}
}

func TestSelectCurrentSingleEnded(t *testing.T) {
	now := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)
	events := []evententity.Event{eventEnding("only", now.Add(-time.Hour))}

	got := SelectCurrent(events, now)
	if got == nil || got.Name != "only" {
		t.Fatalf("SelectCurrent = %+v, want the only event", got)
	}
}
