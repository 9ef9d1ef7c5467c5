package validator

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"marathon-submissions/core/validator"
	"marathon-submissions/modules/submission/dto"
)

const (
	maxFieldLength       = 100
	maxDescriptionLength = 1000
)

// ParseEstimate parses a run estimate in HH:MM:SS or MM:SS form.
func ParseEstimate(s string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("estimate must be HH:MM:SS or MM:SS")
	}

	values := make([]int64, len(parts))
	for i, part := range parts {
		v, err := strconv.ParseInt(part, 10, 64)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("estimate must be HH:MM:SS or MM:SS")
		}
		values[i] = v
	}

	var d time.Duration
	if len(values) == 2 {
		d = time.Duration(values[0])*time.Minute + time.Duration(values[1])*time.Second
	} else {
		d = time.Duration(values[0])*time.Hour + time.Duration(values[1])*time.Minute + time.Duration(values[2])*time.Second
	}
	if d <= 0 {
		return 0, fmt.Errorf("estimate must be greater than zero")
	}
	return d, nil
}

func validVideoURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// ValidateSubmitRequest checks field shapes for a submission. Rows whose
// category label is empty are deletion markers and are skipped entirely; at
// least one populated row is required and at most maxCategories are allowed.
func ValidateSubmitRequest(req *dto.SubmitRequest, maxCategories int) validator.ValidationResult {
	var result validator.ValidationResult

	requireText(&result, "game", req.Game, maxFieldLength)
	requireText(&result, "platform", req.Platform, maxFieldLength)
	requireText(&result, "release_year", req.ReleaseYear, maxFieldLength)
	requireText(&result, "twitch_game", req.TwitchGame, maxFieldLength)
	requireText(&result, "description", req.Description, maxDescriptionLength)

	populated := 0
	for i := range req.Categories {
		draft := &req.Categories[i]
		if draft.IsDeletionMarker() {
			continue
		}
		populated++

		field := fmt.Sprintf("categories[%d]", i)
		if len(draft.Category) > maxFieldLength {
			result.AddError(field+".category", "Category must be at most 100 characters")
		}
		if _, err := ParseEstimate(draft.Estimate); err != nil {
			result.AddError(field+".estimate", err.Error())
		}
		if !validVideoURL(draft.Video) {
			result.AddError(field+".video", "Video must be a valid http(s) URL")
		}
	}

	if populated == 0 {
		result.AddError("categories", "At least one category is required")
	}
	if populated > maxCategories {
		result.AddError("categories", fmt.Sprintf("At most %d categories are allowed", maxCategories))
	}
	return result
}

func requireText(result *validator.ValidationResult, field, value string, maxLen int) {
	if value == "" {
		result.AddError(field, "This field is required")
		return
	}
	if len(value) > maxLen {
		result.AddError(field, fmt.Sprintf("Must be at most %d characters", maxLen))
	}
}
