package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdatePayload_Merge(t *testing.T) {
	created := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	existing := WordPair{
		ID:          "3f0e7c1a-1111-4222-8333-444455556666",
		EnglishWord: "hello",
		ForeignWord: "hola",
		Favorite:    true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
	now := created.Add(time.Hour)

	tests := []struct {
		name     string
		payload  UpdatePayload
		expected WordPair
	}{
		{
			name:    "favorite only",
			payload: UpdatePayload{Favorite: boolPtr(false)},
			expected: WordPair{
				ID: existing.ID, EnglishWord: "hello", ForeignWord: "hola",
				Favorite: false, CreatedAt: created, UpdatedAt: now,
			},
		},
		{
			name:    "absent favorite keeps existing value",
			payload: UpdatePayload{ForeignWord: strPtr("buenas")},
			expected: WordPair{
				ID: existing.ID, EnglishWord: "hello", ForeignWord: "buenas",
				Favorite: true, CreatedAt: created, UpdatedAt: now,
			},
		},
		{
			name:    "empty strings are ignored",
			payload: UpdatePayload{EnglishWord: strPtr(""), ForeignWord: strPtr("   ")},
			expected: WordPair{
				ID: existing.ID, EnglishWord: "hello", ForeignWord: "hola",
				Favorite: true, CreatedAt: created, UpdatedAt: now,
			},
		},
		{
			name:    "all fields",
			payload: UpdatePayload{EnglishWord: strPtr(" hi "), ForeignWord: strPtr("ola"), Favorite: boolPtr(false)},
			expected: WordPair{
				ID: existing.ID, EnglishWord: "hi", ForeignWord: "ola",
				Favorite: false, CreatedAt: created, UpdatedAt: now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.payload.Merge(existing, now))
		})
	}
}

func TestUpdatePayload_MergeClockSkew(t *testing.T) {
	created := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)
	existing := WordPair{ID: "x", EnglishWord: "a", ForeignWord: "b", CreatedAt: created, UpdatedAt: created}

	merged := UpdatePayload{}.Merge(existing, created.Add(-time.Minute))

	assert.Equal(t, created, merged.UpdatedAt)
}

func TestUpdatePayload_IsEmpty(t *testing.T) {
	assert.True(t, UpdatePayload{}.IsEmpty())
	assert.True(t, UpdatePayload{EnglishWord: strPtr(" ")}.IsEmpty())
	assert.False(t, UpdatePayload{Favorite: boolPtr(false)}.IsEmpty())
	assert.False(t, UpdatePayload{ForeignWord: strPtr("hola")}.IsEmpty())
}
