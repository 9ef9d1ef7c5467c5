package service

import (
	"fmt"
	"strings"
	"time"

	"marathon-submissions/core/errors"
	"marathon-submissions/core/logger"
	availdto "marathon-submissions/modules/availability/dto"
	availentity "marathon-submissions/modules/availability/entity"
	evententity "marathon-submissions/modules/event/entity"
)

// CategoryInput is a parsed, populated category row feeding the gates.
type CategoryInput struct {
	Category string
	Estimate time.Duration
}

// SubmitCheck carries everything the gate pipeline needs, pre-fetched so the
// gates themselves stay pure.
type SubmitCheck struct {
	Event          *evententity.Event
	IsEdit         bool
	Username       string
	Game           string
	Categories     []CategoryInput
	ExistingCount  int
	ExistingGames  []string // other submissions' titles, owner-scoped
	Availabilities []availentity.Availability
}

type gate func(check *SubmitCheck) *errors.AppError

// RunGates applies the submission gates in their fixed order; the first
// failure wins and nothing is persisted.
func RunGates(check *SubmitCheck) *errors.AppError {
	for _, g := range []gate{stageGate, quotaGate, duplicateGate, estimateGate} {
		if appErr := g(check); appErr != nil {
			return appErr
		}
	}
	return nil
}

// stageGate: new submissions need OPEN or LOCKED, edits need OPEN.
func stageGate(check *SubmitCheck) *errors.AppError {
	allowed := check.Event.Stage.AcceptsSubmissions()
	if check.IsEdit {
		allowed = check.Event.Stage.AcceptsEdits()
	}
	if !allowed {
		logger.Warn("SubmissionGates:StageClosed",
			"username", check.Username, "event", check.Event.Slug, "stage", check.Event.Stage)
		return errors.NewAppError(errors.ErrStageClosed,
			"The event is not accepting submissions at this stage", nil)
	}
	return nil
}

// quotaGate: a runner may not exceed the event's max games; edits are exempt.
func quotaGate(check *SubmitCheck) *errors.AppError {
	if check.IsEdit {
		return nil
	}
	if check.ExistingCount >= check.Event.MaxGames {
		logger.Warn("SubmissionGates:QuotaExceeded",
			"username", check.Username, "event", check.Event.Slug, "max_games", check.Event.MaxGames)
		return errors.NewAppError(errors.ErrQuotaExceeded,
			"You have reached the maximum number of game submissions for this event", nil)
	}
	return nil
}

// duplicateGate: the same runner may not submit the same game title twice
// for one event, case-insensitively. The submission being edited has already
// been excluded from ExistingGames.
func duplicateGate(check *SubmitCheck) *errors.AppError {
	title := strings.ToLower(check.Game)
	for _, existing := range check.ExistingGames {
		if strings.ToLower(existing) == title {
			return errors.NewAppError(errors.ErrDuplicateGame,
				"You have already submitted this game for the current event. Please edit your existing submission if you wish to change it.", nil)
		}
	}
	return nil
}

// estimateGate: every category's estimate must fit inside at least one of
// the runner's availability intervals.
func estimateGate(check *SubmitCheck) *errors.AppError {
	for _, category := range check.Categories {
		if !fitsAnyInterval(category.Estimate, check.Availabilities) {
			msg := fmt.Sprintf("Your current availability does not have any blocks long enough for this estimate: %s (%s)",
				category.Category, availdto.FormatDuration(category.Estimate))
			return errors.NewAppError(errors.ErrEstimateExceedsAvailability, msg, nil)
		}
	}
	return nil
}

func fitsAnyInterval(estimate time.Duration, rows []availentity.Availability) bool {
	for i := range rows {
		if rows[i].Duration() >= estimate {
			return true
		}
	}
	return false
}
