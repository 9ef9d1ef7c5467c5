package validator

import (
	"time"

	"marathon-submissions/core/validator"
	"marathon-submissions/modules/event/dto"
	evententity "marathon-submissions/modules/event/entity"
)

const maxNameLength = 100

// ValidateCreateEventRequest checks field shapes for event creation.
// start_date <= end_date is deliberately not enforced anywhere.
func ValidateCreateEventRequest(req *dto.CreateEventRequest) validator.ValidationResult {
	var result validator.ValidationResult

	validateCommon(&result, req.Name, req.Stage, req.StartDate, req.EndDate, req.MaxGames, req.MaxCategories)
	return result
}

func ValidateUpdateSettingsRequest(req *dto.UpdateSettingsRequest) validator.ValidationResult {
	var result validator.ValidationResult

	validateCommon(&result, req.Name, req.Stage, req.StartDate, req.EndDate, req.MaxGames, req.MaxCategories)
	return result
}

func validateCommon(result *validator.ValidationResult, name, stage, startDate, endDate string, maxGames, maxCategories int) {
	if name == "" {
		result.AddError("name", "Name is required")
	} else if len(name) > maxNameLength {
		result.AddError("name", "Name must be at most 100 characters")
	}

	if !evententity.EventStage(stage).Valid() {
		result.AddError("stage", "Stage must be one of NOT_OPEN, OPEN, LOCKED, CLOSED")
	}

	if _, err := time.Parse(time.RFC3339, startDate); err != nil {
		result.AddError("start_date", "Start date must be RFC3339")
	}
	if _, err := time.Parse(time.RFC3339, endDate); err != nil {
		result.AddError("end_date", "End date must be RFC3339")
	}

	if maxGames < 1 {
		result.AddError("max_games", "Max games must be at least 1")
	}
	if maxCategories < 1 {
		result.AddError("max_categories", "Max categories must be at least 1")
	}
}
