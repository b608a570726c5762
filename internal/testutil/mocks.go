package testutil

import (
	"wordpairs/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockWordPairRepository is a mock for WordPairRepository
type MockWordPairRepository struct {
	mock.Mock
}

func (m *MockWordPairRepository) List(opts domain.QueryOptions) ([]domain.WordPair, error) {
	args := m.Called(opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WordPair), args.Error(1)
}

func (m *MockWordPairRepository) Create(draft domain.Draft) (domain.WordPair, error) {
	args := m.Called(draft)
	return args.Get(0).(domain.WordPair), args.Error(1)
}

func (m *MockWordPairRepository) Get(id string) (domain.WordPair, error) {
	args := m.Called(id)
	return args.Get(0).(domain.WordPair), args.Error(1)
}

func (m *MockWordPairRepository) Edit(id string, payload domain.UpdatePayload) (domain.WordPair, error) {
	args := m.Called(id, payload)
	return args.Get(0).(domain.WordPair), args.Error(1)
}

func (m *MockWordPairRepository) ToggleFavorite(id string) (domain.WordPair, error) {
	args := m.Called(id)
	return args.Get(0).(domain.WordPair), args.Error(1)
}

func (m *MockWordPairRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockWordPairRepository) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}
