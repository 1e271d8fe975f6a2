package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver

	"github.com/alee-2021/clear/internal/config"
	"github.com/alee-2021/clear/internal/platform/postgres"
)

// setupDatabase establishes a connection to the database and configures the
// connection pool. Returns the connection if successful, or an error if the
// connection fails.
func setupDatabase(cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return db, nil
}

// pruneExpiredTokens clears stale session registrations left over from
// previous runs. Failures are logged, not fatal.
func pruneExpiredTokens(tokens *postgres.PostgresTokenStore, log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	removed, err := tokens.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		log.Warn("failed to prune expired tokens", "error", err)
		return
	}
	if removed > 0 {
		log.Info("pruned expired tokens", "count", removed)
	}
}
