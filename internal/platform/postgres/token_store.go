package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// PostgresTokenStore implements the store.TokenStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the
// TokenStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTokenStore(db store.DBTX, log *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresTokenStore{
		db:     db,
		logger: log.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore interface
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Save implements store.TokenStore.Save
func (s *PostgresTokenStore) Save(ctx context.Context, userID uuid.UUID, token string, expiresAt time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO tokens (user_id, token, expires_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, userID, token, expiresAt, time.Now().UTC())
	if err != nil {
		log.Error("failed to save token",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return fmt.Errorf("failed to save token: %w", err)
	}

	return nil
}

// Exists implements store.TokenStore.Exists
func (s *PostgresTokenStore) Exists(ctx context.Context, token string) (bool, error) {
	query := `SELECT 1 FROM tokens WHERE token = $1`

	var one int
	err := s.db.QueryRowContext(ctx, query, token).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up token: %w", err)
	}

	return true, nil
}

// Delete implements store.TokenStore.Delete
func (s *PostgresTokenStore) Delete(ctx context.Context, token string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tokens WHERE token = $1`
	result, err := s.db.ExecContext(ctx, query, token)
	if err != nil {
		log.Error("failed to delete token", slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete token: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return store.ErrTokenNotFound
	}

	return nil
}

// DeleteExpired implements store.TokenStore.DeleteExpired
func (s *PostgresTokenStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM tokens WHERE expires_at < $1`
	result, err := s.db.ExecContext(ctx, query, now)
	if err != nil {
		log.Error("failed to delete expired tokens", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}
