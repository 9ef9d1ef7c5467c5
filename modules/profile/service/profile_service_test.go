package service

import (
	"testing"

	"marathon-submissions/core/errors"
)

func TestValidatePronouns(t *testing.T) {
	joined, appErr := validatePronouns([]string{"She/Her", "They/Them"})
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if joined != "She/Her, They/Them" {
		t.Errorf("joined = %q", joined)
	}
}

func TestValidatePronounsRejectsEmpty(t *testing.T) {
	_, appErr := validatePronouns(nil)
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", errors.ErrInvalidInput, appErr)
	}
}

func TestValidatePronounsRejectsUnknownChoice(t *testing.T) {
	_, appErr := validatePronouns([]string{"She/Her", "Custom"})
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("expected %s, got %v", errors.ErrInvalidInput, appErr)
	}
}
