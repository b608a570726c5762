package repository

import (
	"wordpairs/internal/domain"
)

// WordPairRepository defines word pair data operations.
// Callers pass drafts and payloads that already passed domain validation;
// implementations still refuse a blank english word so uniqueness stays well defined.
// Implementations return *domain.DuplicateKeyError and *domain.NotFoundError for the
// recoverable failures and must be safe for concurrent use.
type WordPairRepository interface {
	List(opts domain.QueryOptions) ([]domain.WordPair, error)
	Create(draft domain.Draft) (domain.WordPair, error)
	Get(id string) (domain.WordPair, error)
	Edit(id string, payload domain.UpdatePayload) (domain.WordPair, error)
	ToggleFavorite(id string) (domain.WordPair, error)
	Delete(id string) error
	Count() (int, error)
}
