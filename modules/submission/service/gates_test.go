package service

import (
	"testing"
	"time"

	"marathon-submissions/core/errors"
	availentity "marathon-submissions/modules/availability/entity"
	evententity "marathon-submissions/modules/event/entity"
)

func baseCheck(stage evententity.EventStage) *SubmitCheck {
	return &SubmitCheck{
		Event: &evententity.Event{
			Slug:     "sgdq-2024",
			Stage:    stage,
			MaxGames: 2,
		},
		Username: "runner",
		Game:     "Quake",
		Categories: []CategoryInput{
			{Category: "Any%", Estimate: 45 * time.Minute},
		},
		Availabilities: []availentity.Availability{
			{DurationSec: 3600},
		},
	}
}

func TestRunGatesAllowsNewSubmissionWhenOpen(t *testing.T) {
	if appErr := RunGates(baseCheck(evententity.StageOpen)); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
}

func TestStageGateNewSubmissions(t *testing.T) {
	tests := []struct {
		stage evententity.EventStage
		allow bool
	}{
		{evententity.StageNotOpen, false},
		{evententity.StageOpen, true},
		{evententity.StageLocked, true},
		{evententity.StageClosed, false},
	}

	for _, tt := range tests {
		appErr := RunGates(baseCheck(tt.stage))
		if tt.allow && appErr != nil {
			t.Errorf("stage %s: unexpected error %v", tt.stage, appErr)
		}
		if !tt.allow {
			if appErr == nil {
				t.Errorf("stage %s: expected rejection", tt.stage)
			} else if appErr.Code != errors.ErrStageClosed {
				t.Errorf("stage %s: code = %s, want %s", tt.stage, appErr.Code, errors.ErrStageClosed)
			}
		}
	}
}

func TestStageGateEditsNeedOpen(t *testing.T) {
	check := baseCheck(evententity.StageLocked)
	check.IsEdit = true

	appErr := RunGates(check)
	if appErr == nil || appErr.Code != errors.ErrStageClosed {
		t.Fatalf("expected %s for edit while locked, got %v", errors.ErrStageClosed, appErr)
	}

	check = baseCheck(evententity.StageOpen)
	check.IsEdit = true
	if appErr := RunGates(check); appErr != nil {
		t.Fatalf("edit while open should pass, got %v", appErr)
	}
}

func TestQuotaGate(t *testing.T) {
	check := baseCheck(evententity.StageOpen)
	check.ExistingCount = 2 // at MaxGames

	appErr := RunGates(check)
	if appErr == nil || appErr.Code != errors.ErrQuotaExceeded {
		t.Fatalf("expected %s, got %v", errors.ErrQuotaExceeded, appErr)
	}
}

func TestQuotaGateSkipsEdits(t *testing.T) {
	check := baseCheck(evententity.StageOpen)
	check.ExistingCount = 2
	check.IsEdit = true

	if appErr := RunGates(check); appErr != nil {
		t.Fatalf("edits are exempt from the quota, got %v", appErr)
	}
}

func TestDuplicateGateCaseInsensitive(t *testing.T) {
	check := baseCheck(evententity.StageOpen)
	check.ExistingGames = []string{"QUAKE"}

	appErr := RunGates(check)
	if appErr == nil || appErr.Code != errors.ErrDuplicateGame {
		t.Fatalf("expected %s, got %v", errors.ErrDuplicateGame, appErr)
	}
}

func TestDuplicateGateAllowsDifferentGame(t *testing.T) {
	check := baseCheck(evententity.StageOpen)
	check.ExistingGames = []string{"Doom", "Hexen"}

	if appErr := RunGates(check); appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
}

func TestEstimateGateRejectsOversizedEstimate(t *testing.T) {
	check := baseCheck(evententity.StageOpen)
	check.Categories = []CategoryInput{
		{Category: "100%", Estimate: 2 * time.Hour},
	}

	appErr := RunGates(check)
	if appErr == nil || appErr.Code != errors.ErrEstimateExceedsAvailability {
		t.Fatalf("expected %s, got %v", errors.ErrEstimateExceedsAvailability, appErr)
	}
}

func TestEstimateGateFitsAnyInterval(t *testing.T) {
	check := baseCheck(evententity.StageOpen)
	check.Availabilities = []availentity.Availability{
		{DurationSec: 1800},
		{DurationSec: 3 * 3600},
	}
	check.Categories = []CategoryInput{
		{Category: "100%", Estimate: 2 * time.Hour},
	}

	if appErr := RunGates(check); appErr != nil {
		t.Fatalf("estimate fits the 3h interval, got %v", appErr)
	}
}

func TestGateOrderStageBeforeQuota(t *testing.T) {
	check := baseCheck(evententity.StageClosed)
	check.ExistingCount = 5
	check.ExistingGames = []string{"Quake"}

	appErr := RunGates(check)
	if appErr == nil || appErr.Code != errors.ErrStageClosed {
		t.Fatalf("stage gate should fire first, got %v", appErr)
	}
}
