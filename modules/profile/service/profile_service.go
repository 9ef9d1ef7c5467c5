package service

import (
	"context"
	"strings"
	"time"

	"marathon-submissions/core/database"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/logger"
	availservice "marathon-submissions/modules/availability/service"
	evententity "marathon-submissions/modules/event/entity"
	"marathon-submissions/modules/profile/dto"
	"marathon-submissions/modules/profile/entity"
	"marathon-submissions/modules/profile/repository"
	submissionrepository "marathon-submissions/modules/submission/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ProfileService manages the combined profile-and-availability form. The two
// writes commit in one transaction so a runner's schedule and pronouns never
// diverge.
type ProfileService struct {
	db           database.IDatabase
	repo         repository.ProfileRepositoryInterface
	availability availservice.AvailabilityServiceInterface
	submissions  submissionrepository.SubmissionRepositoryInterface
}

type ProfileServiceInterface interface {
	Get(ctx context.Context, userID uuid.UUID, event *evententity.Event) (*dto.ProfileResponse, *errors.AppError)
	Update(ctx context.Context, userID uuid.UUID, event *evententity.Event, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError)
}

func NewProfileService(
	db database.IDatabase,
	repo repository.ProfileRepositoryInterface,
	availability availservice.AvailabilityServiceInterface,
	submissions submissionrepository.SubmissionRepositoryInterface,
) *ProfileService {
	return &ProfileService{
		db:           db,
		repo:         repo,
		availability: availability,
		submissions:  submissions,
	}
}

func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID, event *evententity.Event) (*dto.ProfileResponse, *errors.AppError) {
	profile, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load profile", err)
	}
	if profile == nil {
		profile = &entity.Profile{UserID: userID}
	}

	schedule, appErr := s.availability.Schedule(ctx, userID, event)
	if appErr != nil {
		return nil, appErr
	}
	return dto.ToProfileResponse(profile, schedule), nil
}

// Update validates pronouns and the availability selection, then replaces
// both atomically. Shrinking the schedule below the runner's largest
// submitted estimate is rejected before anything is written.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, event *evententity.Event, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, *errors.AppError) {
	pronouns, appErr := validatePronouns(req.Pronouns)
	if appErr != nil {
		return nil, appErr
	}

	largest, appErr := s.largestEstimate(ctx, userID, event.ID)
	if appErr != nil {
		return nil, appErr
	}

	intervals, appErr := s.availability.DeriveAndValidate(event, req.Availability, largest)
	if appErr != nil {
		return nil, appErr
	}

	profile := &entity.Profile{
		UserID:   userID,
		Pronouns: pronouns,
	}
	err := s.db.WithinTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpsertTx(ctx, tx, profile); err != nil {
			return err
		}
		return s.availability.ReplaceTx(ctx, tx, userID, event.ID, intervals)
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to save profile", err)
	}

	logger.Info("ProfileService:Update",
		"user_id", userID, "event", event.Slug, "intervals", len(intervals))
	return s.Get(ctx, userID, event)
}

// largestEstimate looks up the runner's longest submitted run so the new
// schedule can be checked against it.
func (s *ProfileService) largestEstimate(ctx context.Context, userID, eventID uuid.UUID) (*availservice.LargestEstimate, *errors.AppError) {
	row, err := s.submissions.LargestCategory(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load submissions", err)
	}
	if row == nil {
		return nil, nil
	}
	return &availservice.LargestEstimate{
		Game:     row.Game,
		Category: row.Category,
		Estimate: time.Duration(row.EstimateSec) * time.Second,
	}, nil
}

func validatePronouns(choices []string) (string, *errors.AppError) {
	if len(choices) == 0 {
		return "", errors.NewAppError(errors.ErrInvalidInput, "Please select your pronouns", nil)
	}
	for _, choice := range choices {
		if !entity.ValidPronoun(choice) {
			return "", errors.NewAppError(errors.ErrInvalidInput, "Invalid pronoun selection: "+choice, nil)
		}
	}
	return strings.Join(choices, ", "), nil
}
