package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the extra runner information kept alongside the external
// identity: just pronouns, stored as a comma-joined selection.
type Profile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Pronouns  string    `db:"pronouns" json:"pronouns"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// PronounList splits the stored selection back into choices.
func (p *Profile) PronounList() []string {
	if p.Pronouns == "" {
		return nil
	}
	parts := strings.Split(p.Pronouns, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// Complete reports whether the runner has filled in their profile; runners
// must do this before submitting runs.
func (p *Profile) Complete() bool {
	return p != nil && p.Pronouns != ""
}

// PronounChoices is the fixed selection offered on the profile form.
var PronounChoices = []string{
	"He/Him",
	"She/Her",
	"They/Them",
	"Xe/Xem",
	"Xe/Xim",
	"Xe/Xir",
	"Ve/Vir",
	"It/Its",
	"E/Em",
	"Fae/Faer",
	"None/Prefer Not To Say",
}

func ValidPronoun(choice string) bool {
	for _, c := range PronounChoices {
		if c == choice {
			return true
		}
	}
	return false
}
