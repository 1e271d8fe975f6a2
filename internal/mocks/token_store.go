package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// TokenStore is an in-memory store.TokenStore for tests.
type TokenStore struct {
	mu          sync.Mutex
	tokens      map[string]time.Time // token -> expiry
	ForcedError error
}

// NewTokenStore creates an empty in-memory token store.
func NewTokenStore() *TokenStore {
	return &TokenStore{tokens: make(map[string]time.Time)}
}

// Ensure TokenStore implements store.TokenStore interface
var _ store.TokenStore = (*TokenStore)(nil)

// Save implements store.TokenStore.Save
func (s *TokenStore) Save(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	s.tokens[token] = expiresAt
	return nil
}

// Exists implements store.TokenStore.Exists
func (s *TokenStore) Exists(ctx context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return false, s.ForcedError
	}

	_, ok := s.tokens[token]
	return ok, nil
}

// Delete implements store.TokenStore.Delete
func (s *TokenStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	if _, ok := s.tokens[token]; !ok {
		return store.ErrTokenNotFound
	}
	delete(s.tokens, token)
	return nil
}

// DeleteExpired implements store.TokenStore.DeleteExpired
func (s *TokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return 0, s.ForcedError
	}

	var removed int64
	for token, expiresAt := range s.tokens {
		if expiresAt.Before(now) {
			delete(s.tokens, token)
			removed++
		}
	}
	return removed, nil
}
