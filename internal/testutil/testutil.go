package testutil

import (
	"time"

	"wordpairs/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestWordPair creates a test word pair with equal timestamps
func NewTestWordPair(id, englishWord, foreignWord string) domain.WordPair {
	now := time.Date(2024, 12, 12, 10, 0, 0, 0, time.UTC)
	return domain.WordPair{
		ID:          id,
		EnglishWord: englishWord,
		ForeignWord: foreignWord,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}

// BoolPtr returns a pointer to b
func BoolPtr(b bool) *bool {
	return &b
}
