package service

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"wordpairs/internal/domain"
	"wordpairs/internal/repository"
)

// WordPairService handles word pair business logic
type WordPairService struct {
	repo         repository.WordPairRepository
	logger       *zap.Logger
	defaultLimit int
}

// NewWordPairService creates a new word pair service
func NewWordPairService(repo repository.WordPairRepository, logger *zap.Logger, defaultLimit int) *WordPairService {
	if defaultLimit < 1 {
		defaultLimit = domain.DefaultPageLimit
	}
	return &WordPairService{
		repo:         repo,
		logger:       logger,
		defaultLimit: defaultLimit,
	}
}

// List returns one page of word pairs
func (s *WordPairService) List(opts domain.QueryOptions) ([]domain.WordPair, error) {
	opts = opts.Normalize(s.defaultLimit)

	pairs, err := s.repo.List(opts)
	if err != nil {
		return nil, fmt.Errorf("list word pairs: %w", err)
	}
	return pairs, nil
}

// ListPage returns one page of word pairs and the total number of pages
func (s *WordPairService) ListPage(opts domain.QueryOptions) ([]domain.WordPair, int, error) {
	opts = opts.Normalize(s.defaultLimit)

	pairs, err := s.repo.List(opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list word pairs: %w", err)
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, 0, fmt.Errorf("count word pairs: %w", err)
	}

	return pairs, opts.TotalPages(total), nil
}

// Create validates and stores a new word pair
func (s *WordPairService) Create(draft domain.Draft) (domain.WordPair, error) {
	draft = draft.Normalize()
	if err := domain.Validate(draft); err != nil {
		return domain.WordPair{}, err
	}

	pair, err := s.repo.Create(draft)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			s.logger.Info("Word pair already exists", zap.String("english_word", draft.EnglishWord))
		}
		return domain.WordPair{}, err
	}

	s.logger.Info("Word pair created",
		zap.String("id", pair.ID),
		zap.String("english_word", pair.EnglishWord),
		zap.String("foreign_word", pair.ForeignWord),
	)
	return pair, nil
}

// Get returns a word pair by id
func (s *WordPairService) Get(id string) (domain.WordPair, error) {
	return s.repo.Get(id)
}

// Edit applies a partial update to a word pair
func (s *WordPairService) Edit(id string, payload domain.UpdatePayload) (domain.WordPair, error) {
	pair, err := s.repo.Edit(id, payload)
	if err != nil {
		return domain.WordPair{}, err
	}

	s.logger.Info("Word pair updated",
		zap.String("id", pair.ID),
		zap.Bool("favorite", pair.Favorite),
	)
	return pair, nil
}

// ToggleFavorite flips the favorite flag of a word pair
func (s *WordPairService) ToggleFavorite(id string) (domain.WordPair, error) {
	pair, err := s.repo.ToggleFavorite(id)
	if err != nil {
		return domain.WordPair{}, err
	}

	s.logger.Info("Word pair favorite toggled",
		zap.String("id", pair.ID),
		zap.Bool("favorite", pair.Favorite),
	)
	return pair, nil
}

// Delete removes a word pair
func (s *WordPairService) Delete(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.logger.Info("Word pair deleted", zap.String("id", id))
	return nil
}

// Count returns the number of stored word pairs
func (s *WordPairService) Count() (int, error) {
	return s.repo.Count()
}
