package dto

import (
	"time"

	availdto "marathon-submissions/modules/availability/dto"
	evententity "marathon-submissions/modules/event/entity"
	"marathon-submissions/modules/submission/entity"

	"github.com/google/uuid"
)

// CategoryDraft is one row of the category sub-form. An empty category label
// marks the row for deletion rather than being a validation error.
type CategoryDraft struct {
	ID       *uuid.UUID `json:"id,omitempty"`
	Category string     `json:"category"`
	Race     bool       `json:"race"`
	Estimate string     `json:"estimate"`
	Video    string     `json:"video"`
}

func (d *CategoryDraft) IsDeletionMarker() bool {
	return d.Category == ""
}

type SubmitRequest struct {
	Game        string          `json:"game"`
	Platform    string          `json:"platform"`
	ReleaseYear string          `json:"release_year"`
	TwitchGame  string          `json:"twitch_game"`
	Description string          `json:"description"`
	Categories  []CategoryDraft `json:"categories"`
}

type CategoryResponse struct {
	ID              uuid.UUID             `json:"id"`
	Status          entity.CategoryStatus `json:"status"`
	Category        string                `json:"category"`
	Race            bool                  `json:"race"`
	EstimateSeconds int64                 `json:"estimate_seconds"`
	Estimate        string                `json:"estimate"`
	Video           string                `json:"video"`
	CanEdit         bool                  `json:"can_edit"`
}

type SubmissionResponse struct {
	ID          uuid.UUID             `json:"id"`
	Username    string                `json:"username"`
	Pronouns    string                `json:"pronouns,omitempty"`
	Game        string                `json:"game"`
	Platform    string                `json:"platform"`
	ReleaseYear string                `json:"release_year"`
	TwitchGame  string                `json:"twitch_game"`
	Description string                `json:"description"`
	Status      entity.CategoryStatus `json:"status"`
	CanEdit     bool                  `json:"can_edit"`
	CreatedAt   time.Time             `json:"created_at"`
	Categories  []CategoryResponse    `json:"categories"`
}

func ToCategoryResponse(c *entity.SubmissionCategory, stage evententity.EventStage) CategoryResponse {
	return CategoryResponse{
		ID:              c.ID,
		Status:          c.Status,
		Category:        c.Category,
		Race:            c.Race,
		EstimateSeconds: c.EstimateSec,
		Estimate:        availdto.FormatDuration(c.Estimate()),
		Video:           c.Video,
		CanEdit:         c.CanEdit(stage),
	}
}

func ToSubmissionResponse(s *entity.Submission, pronouns string, stage evententity.EventStage) *SubmissionResponse {
	categories := make([]CategoryResponse, 0, len(s.Categories))
	for i := range s.Categories {
		categories = append(categories, ToCategoryResponse(&s.Categories[i], stage))
	}
	return &SubmissionResponse{
		ID:          s.ID,
		Username:    s.Username,
		Pronouns:    pronouns,
		Game:        s.Game,
		Platform:    s.Platform,
		ReleaseYear: s.ReleaseYear,
		TwitchGame:  s.TwitchGame,
		Description: s.Description,
		Status:      s.Status(),
		CanEdit:     s.CanEdit(stage),
		CreatedAt:   s.CreatedAt,
		Categories:  categories,
	}
}

// SetCategoryStatusRequest is the admin review action body.
type SetCategoryStatusRequest struct {
	Status string `json:"status"`
}
