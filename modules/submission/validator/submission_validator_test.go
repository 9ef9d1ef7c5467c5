package validator

import (
	"strings"
	"testing"
	"time"

	"marathon-submissions/modules/submission/dto"
)

func TestParseEstimate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"1:30:00", 90 * time.Minute, false},
		{"00:45:30", 45*time.Minute + 30*time.Second, false},
		{"45:30", 45*time.Minute + 30*time.Second, false},
		{" 10:00 ", 10 * time.Minute, false},
		{"0:00:00", 0, true},
		{"", 0, true},
		{"90", 0, true},
		{"1:2:3:4", 0, true},
		{"aa:bb", 0, true},
		{"-1:00", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseEstimate(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseEstimate(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEstimate(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEstimate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func validRequest() *dto.SubmitRequest {
	return &dto.SubmitRequest{
		Game:        "Quake",
		Platform:    "PC",
		ReleaseYear: "1996",
		TwitchGame:  "Quake",
		Description: "Fast FPS",
		Categories: []dto.CategoryDraft{
			{Category: "Any%", Estimate: "45:00", Video: "https://example.com/run"},
		},
	}
}

func TestValidateSubmitRequestAccepts(t *testing.T) {
	result := ValidateSubmitRequest(validRequest(), 3)
	if result.HasError() {
		t.Fatalf("unexpected errors: %+v", result.Errors)
	}
}

func TestValidateSubmitRequestRequiredFields(t *testing.T) {
	req := validRequest()
	req.Game = ""
	req.Platform = ""

	result := ValidateSubmitRequest(req, 3)
	if len(result.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %+v", result.Errors)
	}
}

func TestValidateSubmitRequestFieldLength(t *testing.T) {
	req := validRequest()
	req.Game = strings.Repeat("x", 101)

	result := ValidateSubmitRequest(req, 3)
	if !result.HasError() {
		t.Fatal("expected error for overlong game title")
	}
}

func TestValidateSubmitRequestNeedsOneCategory(t *testing.T) {
	req := validRequest()
	req.Categories = nil

	result := ValidateSubmitRequest(req, 3)
	if !result.HasError() {
		t.Fatal("expected error with no categories")
	}
}

func TestValidateSubmitRequestSkipsDeletionMarkers(t *testing.T) {
	req := validRequest()
	// Row with empty category marks deletion; its other fields are ignored.
	req.Categories = append(req.Categories, dto.CategoryDraft{Estimate: "bogus", Video: "bogus"})

	result := ValidateSubmitRequest(req, 3)
	if result.HasError() {
		t.Fatalf("deletion marker should not be validated: %+v", result.Errors)
	}
}

func TestValidateSubmitRequestCategoryCap(t *testing.T) {
	req := validRequest()
	req.Categories = []dto.CategoryDraft{
		{Category: "Any%", Estimate: "45:00", Video: "https://example.com/1"},
		{Category: "100%", Estimate: "2:00:00", Video: "https://example.com/2"},
	}

	result := ValidateSubmitRequest(req, 1)
	if !result.HasError() {
		t.Fatal("expected error above category cap")
	}
}

func TestValidateSubmitRequestVideoURL(t *testing.T) {
	req := validRequest()
	req.Categories[0].Video = "not-a-url"

	result := ValidateSubmitRequest(req, 3)
	if !result.HasError() {
		t.Fatal("expected error for invalid video URL")
	}
}
