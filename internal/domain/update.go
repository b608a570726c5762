package domain

import (
	"strings"
	"time"
)

// UpdatePayload is a partial edit of a word pair. Nil fields are absent.
type UpdatePayload struct {
	EnglishWord *string `json:"english_word,omitempty"`
	ForeignWord *string `json:"foreign_word,omitempty"`
	Favorite    *bool   `json:"favorite,omitempty"`
}

// IsEmpty reports whether the payload would change no field
func (p UpdatePayload) IsEmpty() bool {
	return overrideText(p.EnglishWord) == "" && overrideText(p.ForeignWord) == "" && p.Favorite == nil
}

// Merge resolves every field independently: a present, non-blank payload value wins,
// otherwise the existing value is kept. ID and CreatedAt are never touched.
func (p UpdatePayload) Merge(existing WordPair, now time.Time) WordPair {
	merged := existing

	if v := overrideText(p.EnglishWord); v != "" {
		merged.EnglishWord = v
	}
	if v := overrideText(p.ForeignWord); v != "" {
		merged.ForeignWord = v
	}
	if p.Favorite != nil {
		merged.Favorite = *p.Favorite
	}

	// updated_at never moves behind created_at, even with a skewed clock
	if now.Before(existing.CreatedAt) {
		now = existing.CreatedAt
	}
	merged.UpdatedAt = now

	return merged
}

func overrideText(v *string) string {
	if v == nil {
		return ""
	}
	return strings.TrimSpace(*v)
}
