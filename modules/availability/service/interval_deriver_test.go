package service

import (
	"testing"
	"time"

	"marathon-submissions/modules/availability/entity"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func TestDeriveIntervalsMergesAdjacentHours(t *testing.T) {
	d := NewIntervalDeriver(time.UTC)
	start := mustDate(t, "2024-06-28T10:00:00Z")
	end := mustDate(t, "2024-06-28T14:00:00Z")

	// 10:00 and 11:00 checked, 12:00 unchecked, 13:00 checked.
	flags := map[string]bool{
		"2024_06_28_10": true,
		"2024_06_28_11": true,
		"2024_06_28_13": true,
	}

	intervals := d.DeriveIntervals(start, end, flags)
	if len(intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d: %+v", len(intervals), intervals)
	}

	if !intervals[0].Start.Equal(start) {
		t.Errorf("first interval start = %v, want %v", intervals[0].Start, start)
	}
	if intervals[0].Duration != 2*time.Hour {
		t.Errorf("first interval duration = %v, want 2h", intervals[0].Duration)
	}

	want := mustDate(t, "2024-06-28T13:00:00Z")
	if !intervals[1].Start.Equal(want) {
		t.Errorf("second interval start = %v, want %v", intervals[1].Start, want)
	}
	if intervals[1].Duration != time.Hour {
		t.Errorf("second interval duration = %v, want 1h", intervals[1].Duration)
	}
}

func TestDeriveIntervalsClosesTrailingInterval(t *testing.T) {
	d := NewIntervalDeriver(time.UTC)
	start := mustDate(t, "2024-06-28T10:00:00Z")
	end := mustDate(t, "2024-06-28T12:00:00Z")

	flags := map[string]bool{
		"2024_06_28_10": true,
		"2024_06_28_11": true,
	}

	intervals := d.DeriveIntervals(start, end, flags)
	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval, got %d", len(intervals))
	}
	if intervals[0].Duration != 2*time.Hour {
		t.Errorf("duration = %v, want 2h", intervals[0].Duration)
	}
	if !intervals[0].End().Equal(end) {
		t.Errorf("end = %v, want %v", intervals[0].End(), end)
	}
}

func TestDeriveIntervalsEmptySelection(t *testing.T) {
	d := NewIntervalDeriver(time.UTC)
	start := mustDate(t, "2024-06-28T10:00:00Z")
	end := mustDate(t, "2024-06-30T10:00:00Z")

	if got := d.DeriveIntervals(start, end, nil); len(got) != 0 {
		t.Errorf("expected no intervals, got %+v", got)
	}
	if got := d.DeriveIntervals(start, end, map[string]bool{}); len(got) != 0 {
		t.Errorf("expected no intervals, got %+v", got)
	}
}

func TestDeriveIntervalsIgnoresHoursOutsideEvent(t *testing.T) {
	d := NewIntervalDeriver(time.UTC)
	start := mustDate(t, "2024-06-28T10:00:00Z")
	end := mustDate(t, "2024-06-28T12:00:00Z")

	flags := map[string]bool{
		"2024_06_28_09": true, // before the event
		"2024_06_28_10": true,
		"2024_06_28_12": true, // at/after the event end
	}

	intervals := d.DeriveIntervals(start, end, flags)
	if len(intervals) != 1 {
		t.Fatalf("expected 1 interval, got %d: %+v", len(intervals), intervals)
	}
	if !intervals[0].Start.Equal(start) || intervals[0].Duration != time.Hour {
		t.Errorf("got interval %+v, want start %v duration 1h", intervals[0], start)
	}
}

func TestDeriveIntervalsSortedAndDisjoint(t *testing.T) {
	d := NewIntervalDeriver(time.UTC)
	start := mustDate(t, "2024-06-28T00:00:00Z")
	end := mustDate(t, "2024-06-29T00:00:00Z")

	flags := map[string]bool{
		"2024_06_28_20": true,
		"2024_06_28_02": true,
		"2024_06_28_03": true,
		"2024_06_28_10": true,
		"2024_06_28_12": true,
	}

	intervals := d.DeriveIntervals(start, end, flags)
	if len(intervals) != 4 {
		t.Fatalf("expected 4 intervals, got %d: %+v", len(intervals), intervals)
	}
	for i := 1; i < len(intervals); i++ {
		prev, cur := intervals[i-1], intervals[i]
		if !prev.End().Before(cur.Start) {
			t.Errorf("intervals %d and %d touch or overlap: %+v %+v", i-1, i, prev, cur)
		}
	}
}

func TestHourKeysRoundTrip(t *testing.T) {
	d := NewIntervalDeriver(time.UTC)
	start := mustDate(t, "2024-06-28T00:00:00Z")
	end := mustDate(t, "2024-06-29T00:00:00Z")

	flags := map[string]bool{
		"2024_06_28_05": true,
		"2024_06_28_06": true,
		"2024_06_28_07": true,
		"2024_06_28_15": true,
	}

	intervals := d.DeriveIntervals(start, end, flags)

	rows := make([]entity.Availability, 0, len(intervals))
	for _, interval := range intervals {
		rows = append(rows, entity.Availability{
			StartTime:   interval.Start,
			DurationSec: int64(interval.Duration.Seconds()),
		})
	}

	got := d.HourKeys(rows)
	if len(got) != len(flags) {
		t.Fatalf("reconstructed %d hours, want %d: %v", len(got), len(flags), got)
	}
	for key := range flags {
		if !got[key] {
			t.Errorf("missing reconstructed hour %q", key)
		}
	}
}

func TestLongestInterval(t *testing.T) {
	intervals := []entity.Interval{
		{Duration: time.Hour},
		{Duration: 3 * time.Hour},
		{Duration: 2 * time.Hour},
	}
	if got := LongestInterval(intervals); got != 3*time.Hour {
		t.Errorf("LongestInterval = %v, want 3h", got)
	}
	if got := LongestInterval(nil); got != 0 {
		t.Errorf("LongestInterval(nil) = %v, want 0", got)
	}
}

func TestHourKeyUsesConfiguredLocation(t *testing.T) {
	chicago, err := time.LoadLocation("America/Chicago")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	d := NewIntervalDeriver(chicago)

	// 15:00 UTC is 10:00 in Chicago during DST.
	utc := mustDate(t, "2024-06-28T15:00:00Z")
	if got := d.HourKey(utc); got != "2024_06_28_10" {
		t.Errorf("HourKey = %q, want 2024_06_28_10", got)
	}
}
