// Package memory keeps word pairs in process memory behind a single mutex.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"wordpairs/internal/domain"
	"wordpairs/internal/repository"
)

var _ repository.WordPairRepository = (*Store)(nil)

// Store implements repository.WordPairRepository over an insertion-ordered slice.
// Every operation holds mu for its whole duration, so a mutation is never
// observed half-applied and concurrent creates of one english word serialize.
type Store struct {
	mu    sync.Mutex
	pairs []domain.WordPair

	now   func() time.Time
	newID func() string
}

// Option customizes a Store
type Option func(*Store)

// WithClock replaces the time source used for created_at / updated_at
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator replaces the random UUID generator
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore creates an empty store
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns a copy of one page of word pairs in insertion order.
// A page past the end is empty, not an error.
func (s *Store) List(opts domain.QueryOptions) ([]domain.WordPair, error) {
	opts = opts.Normalize(domain.DefaultPageLimit)

	s.mu.Lock()
	defer s.mu.Unlock()

	start, end := opts.Bounds(len(s.pairs))
	page := make([]domain.WordPair, end-start)
	copy(page, s.pairs[start:end])
	return page, nil
}

// Create stores a new word pair with a fresh id and timestamps.
// Blank words are rejected with a validation error.
func (s *Store) Create(draft domain.Draft) (domain.WordPair, error) {
	draft = draft.Normalize()
	if err := domain.Validate(draft); err != nil {
		return domain.WordPair{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexByEnglishWord(draft.EnglishWord); i >= 0 {
		return domain.WordPair{}, &domain.DuplicateKeyError{EnglishWord: s.pairs[i].EnglishWord}
	}

	pair := domain.NewWordPair(s.newID(), draft, s.now())
	s.pairs = append(s.pairs, pair)

	return pair, nil
}

// Get returns the word pair with the given id
func (s *Store) Get(id string) (domain.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return domain.WordPair{}, &domain.NotFoundError{ID: id}
	}
	return s.pairs[i], nil
}

// Edit merges payload into the stored word pair and replaces it in one step.
// Renaming onto an english word owned by another pair fails with a duplicate key error.
func (s *Store) Edit(id string, payload domain.UpdatePayload) (domain.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return domain.WordPair{}, &domain.NotFoundError{ID: id}
	}

	merged := payload.Merge(s.pairs[i], s.now())

	if merged.EnglishWord != s.pairs[i].EnglishWord {
		if j := s.indexByEnglishWord(merged.EnglishWord); j >= 0 && j != i {
			return domain.WordPair{}, &domain.DuplicateKeyError{EnglishWord: s.pairs[j].EnglishWord}
		}
	}

	s.pairs[i] = merged
	return merged, nil
}

// ToggleFavorite flips the favorite flag in one step, so concurrent toggles never lose an update
func (s *Store) ToggleFavorite(id string) (domain.WordPair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return domain.WordPair{}, &domain.NotFoundError{ID: id}
	}

	favorite := !s.pairs[i].Favorite
	s.pairs[i] = domain.UpdatePayload{Favorite: &favorite}.Merge(s.pairs[i], s.now())
	return s.pairs[i], nil
}

// Delete removes the word pair with the given id, keeping the order of the rest
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexByID(id)
	if i < 0 {
		return &domain.NotFoundError{ID: id}
	}

	s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
	return nil
}

// Count returns the number of stored word pairs
func (s *Store) Count() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pairs), nil
}

// indexByID returns -1 when no pair matches. Caller holds mu.
func (s *Store) indexByID(id string) int {
	for i := range s.pairs {
		if s.pairs[i].ID == id {
			return i
		}
	}
	return -1
}

// indexByEnglishWord returns the first exact, case-sensitive match or -1. Caller holds mu.
func (s *Store) indexByEnglishWord(word string) int {
	for i := range s.pairs {
		if s.pairs[i].EnglishWord == word {
			return i
		}
	}
	return -1
}
