package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateKey is matched by every uniqueness violation on english_word
	ErrDuplicateKey = errors.New("word pair already exists")

	// ErrNotFound is matched when no word pair has the requested id
	ErrNotFound = errors.New("word pair not found")

	// ErrValidation is matched by input that fails presence checks
	ErrValidation = errors.New("invalid word pair")
)

// DuplicateKeyError carries the english word that is already taken
type DuplicateKeyError struct {
	EnglishWord string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("Word pair with English word, %q already exists", e.EnglishWord)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// NotFoundError carries the id that matched nothing
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Word pair with ID: %s not found", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ValidationError lists one message per offending field
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, name := range sortedKeys(e.Fields) {
		msgs = append(msgs, e.Fields[name])
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
