package service

import (
	"context"
	"fmt"
	"time"

	"marathon-submissions/core/errors"
	availdto "marathon-submissions/modules/availability/dto"
	"marathon-submissions/modules/availability/entity"
	"marathon-submissions/modules/availability/repository"
	evententity "marathon-submissions/modules/event/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// LargestEstimate identifies the longest run a runner currently has
// submitted, used to validate that a new schedule still fits it.
type LargestEstimate struct {
	Game     string
	Category string
	Estimate time.Duration
}

// AvailabilityService derives and stores runner availability schedules.
type AvailabilityService struct {
	repo    repository.AvailabilityRepositoryInterface
	deriver *IntervalDeriver
}

type AvailabilityServiceInterface interface {
	DeriveAndValidate(event *evententity.Event, flags map[string]bool, largest *LargestEstimate) ([]entity.Interval, *errors.AppError)
	ReplaceTx(ctx context.Context, tx *sqlx.Tx, userID, eventID uuid.UUID, intervals []entity.Interval) error
	ListForUserEvent(ctx context.Context, userID, eventID uuid.UUID) ([]entity.Availability, *errors.AppError)
	Schedule(ctx context.Context, userID uuid.UUID, event *evententity.Event) (*availdto.ScheduleResponse, *errors.AppError)
}

func NewAvailabilityService(repo repository.AvailabilityRepositoryInterface, loc *time.Location) *AvailabilityService {
	return &AvailabilityService{
		repo:    repo,
		deriver: NewIntervalDeriver(loc),
	}
}

// DeriveAndValidate turns the submitted hour flags into merged intervals and
// applies the availability validation contract: the runner must select at
// least one hour, and the longest interval must still fit their largest
// submitted estimate.
func (s *AvailabilityService) DeriveAndValidate(event *evententity.Event, flags map[string]bool, largest *LargestEstimate) ([]entity.Interval, *errors.AppError) {
	intervals := s.deriver.DeriveIntervals(event.StartDate, event.EndDate, flags)

	if len(intervals) == 0 {
		return nil, errors.NewAppError(errors.ErrNoAvailability,
			"You must select at least one hour for availability", nil)
	}

	if largest != nil && largest.Estimate > LongestInterval(intervals) {
		msg := fmt.Sprintf("You must have an availability window for your largest estimate: %s - %s (%s)",
			largest.Game, largest.Category, availdto.FormatDuration(largest.Estimate))
		return nil, errors.NewAppError(errors.ErrAvailabilityWindowTooShort, msg, nil)
	}
	return intervals, nil
}

// ReplaceTx persists a derived interval set inside the caller's transaction.
func (s *AvailabilityService) ReplaceTx(ctx context.Context, tx *sqlx.Tx, userID, eventID uuid.UUID, intervals []entity.Interval) error {
	return s.repo.ReplaceTx(ctx, tx, userID, eventID, intervals)
}

func (s *AvailabilityService) ListForUserEvent(ctx context.Context, userID, eventID uuid.UUID) ([]entity.Availability, *errors.AppError) {
	rows, err := s.repo.ListForUserEvent(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load availability", err)
	}
	return rows, nil
}

// Schedule returns the stored intervals plus the checked-hour map clients
// use as form initial values.
func (s *AvailabilityService) Schedule(ctx context.Context, userID uuid.UUID, event *evententity.Event) (*availdto.ScheduleResponse, *errors.AppError) {
	rows, appErr := s.ListForUserEvent(ctx, userID, event.ID)
	if appErr != nil {
		return nil, appErr
	}
	return availdto.ToScheduleResponse(rows, s.deriver.HourKeys(rows)), nil
}
