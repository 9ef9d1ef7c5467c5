package service

import (
	"time"

	"marathon-submissions/modules/availability/entity"
)

// HourKeyFormat keys one whole-hour checkbox slot, e.g. "2024_06_28_14".
const HourKeyFormat = "2006_01_02_15"

// IntervalDeriver converts per-hour checkbox selections into merged
// contiguous intervals. All hour slots are keyed in a single location so the
// checkbox grid and the derived intervals agree on slot boundaries.
type IntervalDeriver struct {
	Location *time.Location
}

func NewIntervalDeriver(loc *time.Location) *IntervalDeriver {
	if loc == nil {
		loc = time.UTC
	}
	return &IntervalDeriver{Location: loc}
}

// HourKey returns the flag key for the hour slot containing t.
func (d *IntervalDeriver) HourKey(t time.Time) string {
	return t.In(d.Location).Format(HourKeyFormat)
}

// DeriveIntervals walks the event's hour slots in chronological order and
// merges flagged hours into maximal contiguous runs. The result is sorted by
// start time and intervals never touch or overlap.
func (d *IntervalDeriver) DeriveIntervals(eventStart, eventEnd time.Time, flags map[string]bool) []entity.Interval {
	var intervals []entity.Interval
	var open *entity.Interval

	hour := d.truncateToHour(eventStart)
	for hour.Before(eventEnd) {
		if flags[d.HourKey(hour)] {
			if open == nil {
				open = &entity.Interval{Start: hour}
			}
			open.Duration += time.Hour
		} else if open != nil {
			intervals = append(intervals, *open)
			open = nil
		}
		hour = hour.Add(time.Hour)
	}

	// Final slot was checked, close the trailing interval.
	if open != nil {
		intervals = append(intervals, *open)
	}
	return intervals
}

// HourKeys reconstructs the checked flags for a stored schedule so clients
// can re-render the checkbox grid with the runner's current selections.
func (d *IntervalDeriver) HourKeys(rows []entity.Availability) map[string]bool {
	flags := make(map[string]bool)
	for i := range rows {
		hour := d.truncateToHour(rows[i].StartTime)
		end := rows[i].EndTime()
		for hour.Before(end) {
			flags[d.HourKey(hour)] = true
			hour = hour.Add(time.Hour)
		}
	}
	return flags
}

func (d *IntervalDeriver) truncateToHour(t time.Time) time.Time {
	lt := t.In(d.Location)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, d.Location)
}

// LongestInterval returns the largest interval duration, or zero when the
// set is empty.
func LongestInterval(intervals []entity.Interval) time.Duration {
	var longest time.Duration
	for _, interval := range intervals {
		if interval.Duration > longest {
			longest = interval.Duration
		}
	}
	return longest
}
