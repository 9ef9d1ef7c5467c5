package service

import (
	"testing"
	"time"

	"marathon-submissions/core/errors"
	evententity "marathon-submissions/modules/event/entity"
)

func testEvent(t *testing.T) *evententity.Event {
	t.Helper()
	return &evententity.Event{
		StartDate: mustDate(t, "2024-06-28T10:00:00Z"),
		EndDate:   mustDate(t, "2024-06-28T18:00:00Z"),
	}
}

func TestDeriveAndValidateRequiresSelection(t *testing.T) {
	s := NewAvailabilityService(nil, time.UTC)

	_, appErr := s.DeriveAndValidate(testEvent(t), nil, nil)
	if appErr == nil {
		t.Fatal("expected error for empty selection")
	}
	if appErr.Code != errors.ErrNoAvailability {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrNoAvailability)
	}
}

func TestDeriveAndValidateRejectsShrinkBelowLargestEstimate(t *testing.T) {
	s := NewAvailabilityService(nil, time.UTC)

	// Single one-hour window, but the runner has a 90 minute run submitted.
	flags := map[string]bool{"2024_06_28_10": true}
	largest := &LargestEstimate{
		Game:     "Quake",
		Category: "Any%",
		Estimate: 90 * time.Minute,
	}

	_, appErr := s.DeriveAndValidate(testEvent(t), flags, largest)
	if appErr == nil {
		t.Fatal("expected error when window is shorter than largest estimate")
	}
	if appErr.Code != errors.ErrAvailabilityWindowTooShort {
		t.Errorf("code = %s, want %s", appErr.Code, errors.ErrAvailabilityWindowTooShort)
	}
}

func TestDeriveAndValidateAcceptsFittingEstimate(t *testing.T) {
	s := NewAvailabilityService(nil, time.UTC)

	flags := map[string]bool{
		"2024_06_28_10": true,
		"2024_06_28_11": true,
	}
	largest := &LargestEstimate{
		Game:     "Quake",
		Category: "Any%",
		Estimate: 90 * time.Minute,
	}

	intervals, appErr := s.DeriveAndValidate(testEvent(t), flags, largest)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(intervals) != 1 || intervals[0].Duration != 2*time.Hour {
		t.Errorf("got %+v, want one 2h interval", intervals)
	}
}

func TestDeriveAndValidateNoSubmissionsYet(t *testing.T) {
	s := NewAvailabilityService(nil, time.UTC)

	flags := map[string]bool{"2024_06_28_10": true}
	intervals, appErr := s.DeriveAndValidate(testEvent(t), flags, nil)
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if len(intervals) != 1 {
		t.Errorf("got %d intervals, want 1", len(intervals))
	}
}
