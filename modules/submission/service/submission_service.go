package service

import (
	"context"

	coreentity "marathon-submissions/core/entity"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/logger"
	"marathon-submissions/core/params"
	"marathon-submissions/core/queue"
	availservice "marathon-submissions/modules/availability/service"
	evententity "marathon-submissions/modules/event/entity"
	profilerepository "marathon-submissions/modules/profile/repository"
	"marathon-submissions/modules/submission/dto"
	"marathon-submissions/modules/submission/entity"
	"marathon-submissions/modules/submission/repository"
	"marathon-submissions/modules/submission/validator"

	"github.com/google/uuid"
)

// NotificationEnqueuer queues runner notifications; implemented by the
// asynq client.
type NotificationEnqueuer interface {
	EnqueueNotification(ctx context.Context, payload queue.NotificationPayload) error
}

// SubmissionService gates and commits run submissions.
type SubmissionService struct {
	repo         repository.SubmissionRepositoryInterface
	availability availservice.AvailabilityServiceInterface
	profiles     profilerepository.ProfileRepositoryInterface
	notifier     NotificationEnqueuer
}

type SubmissionServiceInterface interface {
	Create(ctx context.Context, userID uuid.UUID, username string, event *evententity.Event, req *dto.SubmitRequest) (*dto.SubmissionResponse, *errors.AppError)
	Update(ctx context.Context, userID uuid.UUID, username string, event *evententity.Event, submissionID uuid.UUID, req *dto.SubmitRequest) (*dto.SubmissionResponse, *errors.AppError)
	Delete(ctx context.Context, userID, submissionID uuid.UUID) *errors.AppError
	Mine(ctx context.Context, userID uuid.UUID, event *evententity.Event) ([]dto.SubmissionResponse, *errors.AppError)
	All(ctx context.Context, event *evententity.Event, p params.QueryParams) (*coreentity.Pagination[dto.SubmissionResponse], *errors.AppError)
	SetCategoryStatus(ctx context.Context, categoryID uuid.UUID, req *dto.SetCategoryStatusRequest) (*dto.CategoryResponse, *errors.AppError)
}

func NewSubmissionService(
	repo repository.SubmissionRepositoryInterface,
	availability availservice.AvailabilityServiceInterface,
	profiles profilerepository.ProfileRepositoryInterface,
	notifier NotificationEnqueuer,
) *SubmissionService {
	return &SubmissionService{
		repo:         repo,
		availability: availability,
		profiles:     profiles,
		notifier:     notifier,
	}
}

// Create validates and commits a new submission with its categories.
func (s *SubmissionService) Create(ctx context.Context, userID uuid.UUID, username string, event *evententity.Event, req *dto.SubmitRequest) (*dto.SubmissionResponse, *errors.AppError) {
	return s.save(ctx, userID, username, event, nil, req)
}

// Update validates and commits changes to an existing submission.
func (s *SubmissionService) Update(ctx context.Context, userID uuid.UUID, username string, event *evententity.Event, submissionID uuid.UUID, req *dto.SubmitRequest) (*dto.SubmissionResponse, *errors.AppError) {
	existing, err := s.repo.GetForUser(ctx, submissionID, userID, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load submission", err)
	}
	if existing == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Submission not found", nil)
	}
	if !existing.CanEdit(event.Stage) {
		logger.Warn("SubmissionService:Update:NotEditable",
			"username", username, "submission_id", submissionID, "stage", event.Stage)
		return nil, errors.NewAppError(errors.ErrStageClosed,
			"This submission can no longer be edited", nil)
	}
	return s.save(ctx, userID, username, event, existing, req)
}

// save runs the shared validation pipeline and commits submission plus
// categories in one transaction.
func (s *SubmissionService) save(ctx context.Context, userID uuid.UUID, username string, event *evententity.Event, existing *entity.Submission, req *dto.SubmitRequest) (*dto.SubmissionResponse, *errors.AppError) {
	if appErr := s.requireCompleteProfile(ctx, userID, event); appErr != nil {
		return nil, appErr
	}

	validationResult := validator.ValidateSubmitRequest(req, event.MaxCategories)
	if validationResult.HasError() {
		first := validationResult.Errors[0]
		return nil, errors.NewAppError(errors.ErrInvalidInput, first.Field+": "+first.Message, nil)
	}

	check, drafts, appErr := s.buildCheck(ctx, userID, username, event, existing, req)
	if appErr != nil {
		return nil, appErr
	}
	if appErr := RunGates(check); appErr != nil {
		return nil, appErr
	}

	submission := existing
	if submission == nil {
		submission = &entity.Submission{
			UserID:   userID,
			Username: username,
			EventID:  event.ID,
		}
	}
	submission.Game = req.Game
	submission.Platform = req.Platform
	submission.ReleaseYear = req.ReleaseYear
	submission.TwitchGame = req.TwitchGame
	submission.Description = req.Description

	categories, deleteIDs := s.planCategories(submission, drafts)
	if err := s.repo.SaveWithCategories(ctx, submission, categories, deleteIDs); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save submission", err)
	}

	saved, err := s.repo.GetForUser(ctx, submission.ID, userID, event.ID)
	if err != nil || saved == nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to reload submission", err)
	}

	logger.Info("SubmissionService:Saved",
		"username", username, "game", saved.Game, "event", event.Slug, "categories", len(saved.Categories))
	return dto.ToSubmissionResponse(saved, "", event.Stage), nil
}

// requireCompleteProfile mirrors the redirect-to-profile rule: runners must
// have pronouns and at least one availability interval before submitting.
func (s *SubmissionService) requireCompleteProfile(ctx context.Context, userID uuid.UUID, event *evententity.Event) *errors.AppError {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to load profile", err)
	}
	if !profile.Complete() {
		return errors.NewAppError(errors.ErrProfileIncomplete,
			"Please fill in your profile and availability before submitting", nil)
	}

	rows, appErr := s.availability.ListForUserEvent(ctx, userID, event.ID)
	if appErr != nil {
		return appErr
	}
	if len(rows) == 0 {
		return errors.NewAppError(errors.ErrProfileIncomplete,
			"Please fill in your profile and availability before submitting", nil)
	}
	return nil
}

// categoryDraft pairs a populated request row with its parsed estimate.
type categoryDraft struct {
	id       *uuid.UUID
	category string
	race     bool
	estimate int64
	video    string
}

func (s *SubmissionService) buildCheck(ctx context.Context, userID uuid.UUID, username string, event *evententity.Event, existing *entity.Submission, req *dto.SubmitRequest) (*SubmitCheck, []categoryDraft, *errors.AppError) {
	count, err := s.repo.CountForUserEvent(ctx, userID, event.ID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load submissions", err)
	}

	others, err := s.repo.ListForUserEvent(ctx, userID, event.ID)
	if err != nil {
		return nil, nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load submissions", err)
	}
	var existingGames []string
	for i := range others {
		if existing != nil && others[i].ID == existing.ID {
			continue
		}
		existingGames = append(existingGames, others[i].Game)
	}

	rows, appErr := s.availability.ListForUserEvent(ctx, userID, event.ID)
	if appErr != nil {
		return nil, nil, appErr
	}

	var drafts []categoryDraft
	var inputs []CategoryInput
	for i := range req.Categories {
		row := &req.Categories[i]
		if row.IsDeletionMarker() {
			if row.ID != nil {
				drafts = append(drafts, categoryDraft{id: row.ID})
			}
			continue
		}
		estimate, parseErr := validator.ParseEstimate(row.Estimate)
		if parseErr != nil {
			return nil, nil, errors.NewAppError(errors.ErrInvalidInput, parseErr.Error(), nil)
		}
		drafts = append(drafts, categoryDraft{
			id:       row.ID,
			category: row.Category,
			race:     row.Race,
			estimate: int64(estimate.Seconds()),
			video:    row.Video,
		})
		inputs = append(inputs, CategoryInput{Category: row.Category, Estimate: estimate})
	}

	check := &SubmitCheck{
		Event:          event,
		IsEdit:         existing != nil,
		Username:       username,
		Game:           req.Game,
		Categories:     inputs,
		ExistingCount:  count,
		ExistingGames:  existingGames,
		Availabilities: rows,
	}
	return check, drafts, nil
}

// planCategories splits drafts into upserts and deletions. Rows referencing
// an existing category keep its id (and status); deletion markers with an id
// remove that category.
func (s *SubmissionService) planCategories(submission *entity.Submission, drafts []categoryDraft) ([]entity.SubmissionCategory, []uuid.UUID) {
	var categories []entity.SubmissionCategory
	var deleteIDs []uuid.UUID

	for _, draft := range drafts {
		if draft.category == "" {
			if draft.id != nil {
				deleteIDs = append(deleteIDs, *draft.id)
			}
			continue
		}

		category := entity.SubmissionCategory{
			SubmissionID: submission.ID,
			Status:       entity.StatusPending,
			Category:     draft.category,
			Race:         draft.race,
			EstimateSec:  draft.estimate,
			Video:        draft.video,
		}
		if draft.id != nil {
			category.ID = *draft.id
		}
		categories = append(categories, category)
	}
	return categories, deleteIDs
}

func (s *SubmissionService) Delete(ctx context.Context, userID, submissionID uuid.UUID) *errors.AppError {
	deleted, err := s.repo.DeleteForUser(ctx, submissionID, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete submission", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Submission not found", nil)
	}
	return nil
}

func (s *SubmissionService) Mine(ctx context.Context, userID uuid.UUID, event *evententity.Event) ([]dto.SubmissionResponse, *errors.AppError) {
	submissions, err := s.repo.ListForUserEvent(ctx, userID, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load submissions", err)
	}

	result := make([]dto.SubmissionResponse, 0, len(submissions))
	for i := range submissions {
		result = append(result, *dto.ToSubmissionResponse(&submissions[i], "", event.Stage))
	}
	return result, nil
}

func (s *SubmissionService) All(ctx context.Context, event *evententity.Event, p params.QueryParams) (*coreentity.Pagination[dto.SubmissionResponse], *errors.AppError) {
	page, err := s.repo.ListForEvent(ctx, event.ID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load submissions", err)
	}

	items := make([]dto.SubmissionResponse, 0, len(page.Items))
	for i := range page.Items {
		row := &page.Items[i]
		items = append(items, *dto.ToSubmissionResponse(&row.Submission, row.Pronouns.String, event.Stage))
	}
	return coreentity.NewPagination(items, page.TotalItems, page.PageNumber, page.PageSize), nil
}

// SetCategoryStatus is the admin review action; a changed status queues a
// notification for the runner.
func (s *SubmissionService) SetCategoryStatus(ctx context.Context, categoryID uuid.UUID, req *dto.SetCategoryStatusRequest) (*dto.CategoryResponse, *errors.AppError) {
	status := entity.CategoryStatus(req.Status)
	if !status.Valid() {
		return nil, errors.NewAppError(errors.ErrInvalidInput,
			"Status must be one of PENDING, DECLINED, ACCEPTED", nil)
	}

	row, err := s.repo.GetCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load category", err)
	}
	if row == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Category not found", nil)
	}

	if row.Status != status {
		if err := s.repo.UpdateCategoryStatus(ctx, categoryID, status); err != nil {
			return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update category status", err)
		}
		logger.Info("SubmissionService:SetCategoryStatus",
			"category_id", categoryID, "from", row.Status, "to", status)

		if s.notifier != nil {
			payload := queue.NotificationPayload{
				UserID:  row.UserID,
				Title:   "Submission status updated",
				Message: row.Game + " - " + row.Category + " is now " + string(status),
				Type:    "category_status",
				Data: map[string]any{
					"category_id": categoryID.String(),
					"status":      string(status),
				},
			}
			if err := s.notifier.EnqueueNotification(ctx, payload); err != nil {
				logger.Error("SubmissionService:SetCategoryStatus:Notify", err)
			}
		}
		row.Status = status
	}

	response := dto.ToCategoryResponse(&row.SubmissionCategory, evententity.StageClosed)
	return &response, nil
}
