package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// SessionManager defines the session lifecycle exposed to handlers and
// middleware: issue a token at registration/login, validate it on every
// authenticated call, revoke it at logout.
type SessionManager interface {
	// Issue mints a token for the user and registers it.
	Issue(ctx context.Context, userID uuid.UUID, username string) (string, error)

	// Validate checks signature, expiry, and that the token is still
	// registered. Returns ErrRevokedToken for a valid but unregistered token.
	Validate(ctx context.Context, token string) (*Claims, error)

	// Revoke deletes the token's registration. Revoking an unknown token
	// returns store.ErrTokenNotFound.
	Revoke(ctx context.Context, token string) error
}

// Sessions implements SessionManager on top of a JWTService and a TokenStore.
// A token is only accepted while its registration row exists, which gives
// logout real teeth despite JWTs being self-contained.
type Sessions struct {
	jwt    JWTService
	tokens store.TokenStore
	logger *slog.Logger
}

// NewSessions creates a new session manager.
// If logger is nil, a default logger will be used.
func NewSessions(jwtService JWTService, tokens store.TokenStore, log *slog.Logger) *Sessions {
	if log == nil {
		log = slog.Default()
	}

	return &Sessions{
		jwt:    jwtService,
		tokens: tokens,
		logger: log.With(slog.String("component", "sessions")),
	}
}

// Ensure Sessions implements SessionManager interface
var _ SessionManager = (*Sessions)(nil)

// Issue implements SessionManager.Issue
func (s *Sessions) Issue(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	token, claims, err := s.jwt.GenerateToken(ctx, userID, username)
	if err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}

	if err := s.tokens.Save(ctx, userID, token, claims.ExpiresAt); err != nil {
		return "", fmt.Errorf("failed to register session token: %w", err)
	}

	return token, nil
}

// Validate implements SessionManager.Validate
func (s *Sessions) Validate(ctx context.Context, token string) (*Claims, error) {
	claims, err := s.jwt.ValidateToken(ctx, token)
	if err != nil {
		return nil, err
	}

	registered, err := s.tokens.Exists(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check token registration: %w", err)
	}
	if !registered {
		s.logger.Debug("rejected unregistered token",
			slog.String("user_id", claims.UserID.String()))
		return nil, ErrRevokedToken
	}

	return claims, nil
}

// Revoke implements SessionManager.Revoke
func (s *Sessions) Revoke(ctx context.Context, token string) error {
	return s.tokens.Delete(ctx, token)
}
