package entity

import (
	"testing"

	evententity "marathon-submissions/modules/event/entity"
)

func categories(statuses ...CategoryStatus) []SubmissionCategory {
	out := make([]SubmissionCategory, len(statuses))
	for i, s := range statuses {
		out[i].Status = s
	}
	return out
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []CategoryStatus
		want     CategoryStatus
	}{
		{"no categories", nil, StatusDeclined},
		{"all declined", []CategoryStatus{StatusDeclined, StatusDeclined}, StatusDeclined},
		{"pending beats declined", []CategoryStatus{StatusDeclined, StatusPending}, StatusPending},
		{"accepted beats pending", []CategoryStatus{StatusPending, StatusAccepted}, StatusAccepted},
		{"accepted beats declined", []CategoryStatus{StatusDeclined, StatusAccepted}, StatusAccepted},
		{"single pending", []CategoryStatus{StatusPending}, StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveStatus(categories(tt.statuses...)); got != tt.want {
				t.Errorf("DeriveStatus = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCategoryCanEdit(t *testing.T) {
	pending := SubmissionCategory{Status: StatusPending}
	accepted := SubmissionCategory{Status: StatusAccepted}

	if !pending.CanEdit(evententity.StageOpen) {
		t.Error("pending category should be editable while open")
	}
	if pending.CanEdit(evententity.StageLocked) {
		t.Error("locked stage should block category edits")
	}
	if accepted.CanEdit(evententity.StageOpen) {
		t.Error("accepted category should not be editable")
	}
}

func TestSubmissionCanEdit(t *testing.T) {
	s := Submission{Categories: categories(StatusPending, StatusPending)}
	if !s.CanEdit(evententity.StageOpen) {
		t.Error("all-pending submission should be editable while open")
	}

	s.Categories = categories(StatusPending, StatusAccepted)
	if s.CanEdit(evententity.StageOpen) {
		t.Error("submission with a reviewed category should not be editable")
	}

	s.Categories = categories(StatusPending)
	if s.CanEdit(evententity.StageClosed) {
		t.Error("closed stage should block submission edits")
	}
}

func TestCategoryStatusValid(t *testing.T) {
	for _, s := range []CategoryStatus{StatusPending, StatusDeclined, StatusAccepted} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if CategoryStatus("REJECTED").Valid() {
		t.Error("unknown status should be invalid")
	}
}
