package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenStore defines the interface for session-token registration.
//
// Issued tokens are recorded so that validation can require a token to still
// be registered, and logout can revoke one by deleting its row.
type TokenStore interface {
	// Save registers a newly issued token for the user.
	Save(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error

	// Exists reports whether the token is still registered.
	Exists(ctx context.Context, token string) (bool, error)

	// Delete revokes a token.
	// Returns ErrTokenNotFound if the token was not registered.
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes registrations whose expiry has passed and
	// returns the number removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
