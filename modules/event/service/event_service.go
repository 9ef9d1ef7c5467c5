package service

import (
	"context"
	"encoding/json"
	"time"

	"marathon-submissions/core/cache"
	"marathon-submissions/core/entity"
	"marathon-submissions/core/errors"
	"marathon-submissions/core/logger"
	"marathon-submissions/core/params"
	"marathon-submissions/modules/event/dto"
	evententity "marathon-submissions/modules/event/entity"
	"marathon-submissions/modules/event/repository"

	"github.com/gosimple/slug"
)

// EventService owns event settings and the current-event selection rule.
type EventService struct {
	repo repository.EventRepositoryInterface
}

type EventServiceInterface interface {
	CurrentEvent(ctx context.Context) (*evententity.Event, *errors.AppError)
	GetBySlug(ctx context.Context, eventSlug string) (*dto.EventResponse, *errors.AppError)
	List(ctx context.Context, p params.QueryParams) (*entity.Pagination[evententity.Event], *errors.AppError)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	UpdateSettings(ctx context.Context, eventSlug string, req *dto.UpdateSettingsRequest) (*dto.EventResponse, *errors.AppError)
}

func NewEventService(repo repository.EventRepositoryInterface) *EventService {
	return &EventService{repo: repo}
}

// SelectCurrent picks the current event from the active set: the one with the
// earliest end date that has not yet ended, falling back to the most recently
// ended one. Returns nil when there are no active events.
func SelectCurrent(events []evententity.Event, now time.Time) *evententity.Event {
	var upcoming *evententity.Event
	var lastEnded *evententity.Event

	for i := range events {
		e := &events[i]
		if e.EndDate.After(now) {
			if upcoming == nil || e.EndDate.Before(upcoming.EndDate) {
				upcoming = e
			}
		} else {
			if lastEnded == nil || e.EndDate.After(lastEnded.EndDate) {
				lastEnded = e
			}
		}
	}

	if upcoming != nil {
		return upcoming
	}
	return lastEnded
}

// CurrentEvent resolves the event every request operates on. The result is
// cached briefly; settings writes invalidate the cache.
func (s *EventService) CurrentEvent(ctx context.Context) (*evententity.Event, *errors.AppError) {
	if cache.Ready() {
		if payload, err := cache.GetCurrentEvent(ctx); err == nil && payload != nil {
			var event evententity.Event
			if err := json.Unmarshal(payload, &event); err == nil {
				return &event, nil
			}
		}
	}

	events, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to load events", err)
	}

	event := SelectCurrent(events, time.Now())
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "No active event", nil)
	}

	if cache.Ready() {
		if payload, err := json.Marshal(event); err == nil {
			if err := cache.SetCurrentEvent(ctx, payload); err != nil {
				logger.Error("EventService:CurrentEvent:Cache", err)
			}
		}
	}
	return event, nil
}

func (s *EventService) GetBySlug(ctx context.Context, eventSlug string) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return dto.ToEventResponse(event), nil
}

func (s *EventService) List(ctx context.Context, p params.QueryParams) (*entity.Pagination[evententity.Event], *errors.AppError) {
	page, err := s.repo.List(ctx, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to list events", err)
	}
	return page, nil
}

func (s *EventService) Create(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	event := &evententity.Event{
		Slug:          slug.Make(req.Name),
		Name:          req.Name,
		Active:        active,
		Stage:         evententity.EventStage(req.Stage),
		StartDate:     startDate,
		EndDate:       endDate,
		MaxGames:      req.MaxGames,
		MaxCategories: req.MaxCategories,
		Guidelines:    req.Guidelines,
	}

	existing, err := s.repo.GetBySlug(ctx, event.Slug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}
	if existing != nil {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "An event with this name already exists", nil)
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", err)
	}

	cache.InvalidateCurrentEvent(ctx)
	logger.Info("EventService:Create", "slug", created.Slug, "stage", created.Stage)
	return dto.ToEventResponse(created), nil
}

// UpdateSettings applies the admin settings form. The event keeps its slug so
// existing links stay valid even when the name changes.
func (s *EventService) UpdateSettings(ctx context.Context, eventSlug string, req *dto.UpdateSettingsRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	previousStage := event.Stage
	event.Name = req.Name
	event.Stage = evententity.EventStage(req.Stage)
	event.StartDate = startDate
	event.EndDate = endDate
	event.MaxGames = req.MaxGames
	event.MaxCategories = req.MaxCategories
	event.Guidelines = req.Guidelines

	if err := s.repo.UpdateSettings(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event settings", err)
	}

	cache.InvalidateCurrentEvent(ctx)
	if previousStage != event.Stage {
		logger.Info("EventService:UpdateSettings:StageChanged",
			"slug", event.Slug, "from", previousStage, "to", event.Stage)
	}
	return dto.ToEventResponse(event), nil
}
