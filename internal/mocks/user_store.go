package mocks

import (
	"context"
	"sync"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// UserStore is an in-memory store.UserStore for tests.
type UserStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]domain.User
	ForcedError error
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[uuid.UUID]domain.User)}
}

// Ensure UserStore implements store.UserStore interface
var _ store.UserStore = (*UserStore)(nil)

// Create implements store.UserStore.Create
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	if err := user.Validate(); err != nil {
		return err
	}

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return store.ErrUsernameExists
		}
	}

	s.users[user.ID] = *user
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &user, nil
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	for _, user := range s.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}
