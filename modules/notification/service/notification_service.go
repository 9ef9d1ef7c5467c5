package service

import (
	"context"

	"marathon-submissions/core/errors"
	"marathon-submissions/core/params"
	"marathon-submissions/core/queue"
	"marathon-submissions/modules/notification/entity"
	"marathon-submissions/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo repository.NotificationRepositoryInterface
}

type NotificationServiceInterface interface {
	CreateFromPayload(ctx context.Context, payload queue.NotificationPayload) error
	GetMyNotifications(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError)
	MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) *errors.AppError
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError)
}

func NewNotificationService(repo repository.NotificationRepositoryInterface) *NotificationService {
	return &NotificationService{repo: repo}
}

// CreateFromPayload persists a queued notification; called by the worker.
func (s *NotificationService) CreateFromPayload(ctx context.Context, payload queue.NotificationPayload) error {
	notification := &entity.Notification{
		UserID:  payload.UserID,
		Title:   payload.Title,
		Message: payload.Message,
		Type:    payload.Type,
		Data:    entity.JSONB(payload.Data),
		IsRead:  false,
	}
	return s.repo.Create(ctx, notification)
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, p params.QueryParams) (*entity.PaginatedNotificationEntity, *errors.AppError) {
	page, err := s.repo.GetByUserID(ctx, userID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to load notifications", err)
	}
	return page, nil
}

func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAsRead(ctx, userID, ids); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	if err := s.repo.MarkAllAsRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "Failed to mark notifications as read", err)
	}
	return nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "Failed to count notifications", err)
	}
	return count, nil
}
