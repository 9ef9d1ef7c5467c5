package dto

import (
	"fmt"
	"time"

	"marathon-submissions/modules/availability/entity"
)

type IntervalResponse struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int64     `json:"duration_seconds"`
	Duration        string    `json:"duration"`
	Hours           int       `json:"hours"`
}

// ScheduleResponse is a runner's stored schedule plus the checked-hour
// reconstruction clients use to re-render the checkbox grid.
type ScheduleResponse struct {
	Intervals    []IntervalResponse `json:"intervals"`
	CheckedHours map[string]bool    `json:"checked_hours"`
}

func FormatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func ToIntervalResponse(a *entity.Availability) IntervalResponse {
	return IntervalResponse{
		StartTime:       a.StartTime,
		EndTime:         a.EndTime(),
		DurationSeconds: a.DurationSec,
		Duration:        FormatDuration(a.Duration()),
		Hours:           a.Hours(),
	}
}

func ToScheduleResponse(rows []entity.Availability, checkedHours map[string]bool) *ScheduleResponse {
	intervals := make([]IntervalResponse, 0, len(rows))
	for i := range rows {
		intervals = append(intervals, ToIntervalResponse(&rows[i]))
	}
	return &ScheduleResponse{
		Intervals:    intervals,
		CheckedHours: checkedHours,
	}
}
