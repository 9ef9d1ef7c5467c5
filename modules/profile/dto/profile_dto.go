package dto

import (
	availdto "marathon-submissions/modules/availability/dto"
	"marathon-submissions/modules/profile/entity"
)

// UpdateProfileRequest carries the combined profile-and-availability form.
// Availability maps hour keys (YYYY_MM_DD_HH in the event timezone) to
// checked state; unlisted hours count as unchecked.
type UpdateProfileRequest struct {
	Pronouns     []string        `json:"pronouns"`
	Availability map[string]bool `json:"availability"`
}

type ProfileResponse struct {
	Pronouns       []string                   `json:"pronouns"`
	PronounChoices []string                   `json:"pronoun_choices"`
	Complete       bool                       `json:"complete"`
	Schedule       *availdto.ScheduleResponse `json:"schedule,omitempty"`
}

func ToProfileResponse(profile *entity.Profile, schedule *availdto.ScheduleResponse) *ProfileResponse {
	return &ProfileResponse{
		Pronouns:       profile.PronounList(),
		PronounChoices: entity.PronounChoices,
		Complete:       profile.Complete() && schedule != nil && len(schedule.Intervals) > 0,
		Schedule:       schedule,
	}
}
