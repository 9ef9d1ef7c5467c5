package dto

import (
	"time"

	evententity "marathon-submissions/modules/event/entity"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID            uuid.UUID              `json:"id"`
	Slug          string                 `json:"slug"`
	Name          string                 `json:"name"`
	Active        bool                   `json:"active"`
	Stage         evententity.EventStage `json:"stage"`
	StartDate     time.Time              `json:"start_date"`
	EndDate       time.Time              `json:"end_date"`
	MaxGames      int                    `json:"max_games"`
	MaxCategories int                    `json:"max_categories"`
	Guidelines    string                 `json:"guidelines"`
	CanSubmit     bool                   `json:"can_submit"`
	CanEdit       bool                   `json:"can_edit"`
}

func ToEventResponse(event *evententity.Event) *EventResponse {
	return &EventResponse{
		ID:            event.ID,
		Slug:          event.Slug,
		Name:          event.Name,
		Active:        event.Active,
		Stage:         event.Stage,
		StartDate:     event.StartDate,
		EndDate:       event.EndDate,
		MaxGames:      event.MaxGames,
		MaxCategories: event.MaxCategories,
		Guidelines:    event.Guidelines,
		CanSubmit:     event.Stage.AcceptsSubmissions(),
		CanEdit:       event.Stage.AcceptsEdits(),
	}
}

type CreateEventRequest struct {
	Name          string `json:"name"`
	Active        *bool  `json:"active"`
	Stage         string `json:"stage"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	MaxGames      int    `json:"max_games"`
	MaxCategories int    `json:"max_categories"`
	Guidelines    string `json:"guidelines"`
}

// UpdateSettingsRequest carries the admin-editable event settings.
type UpdateSettingsRequest struct {
	Name          string `json:"name"`
	Stage         string `json:"stage"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	MaxGames      int    `json:"max_games"`
	MaxCategories int    `json:"max_categories"`
	Guidelines    string `json:"guidelines"`
}
