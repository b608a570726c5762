package domain

import (
	"strings"
	"time"
)

// WordPair is an English word linked to its foreign-language translation
type WordPair struct {
	ID          string    `json:"id"`
	EnglishWord string    `json:"english_word"`
	ForeignWord string    `json:"foreign_word"`
	Favorite    bool      `json:"favorite"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Draft holds the caller-supplied fields of a word pair that is not stored yet
type Draft struct {
	EnglishWord string `json:"english_word" validate:"required"`
	ForeignWord string `json:"foreign_word" validate:"required"`
}

// Normalize trims surrounding whitespace so that blank input counts as empty
func (d Draft) Normalize() Draft {
	return Draft{
		EnglishWord: strings.TrimSpace(d.EnglishWord),
		ForeignWord: strings.TrimSpace(d.ForeignWord),
	}
}

// NewWordPair finalizes a draft into a stored record.
// Favorite always starts false and both timestamps are equal.
func NewWordPair(id string, d Draft, now time.Time) WordPair {
	return WordPair{
		ID:          id,
		EnglishWord: d.EnglishWord,
		ForeignWord: d.ForeignWord,
		Favorite:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
