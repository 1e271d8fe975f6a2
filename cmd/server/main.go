// Command server runs the Clear task-assistant API.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alee-2021/clear/internal/assistant"
	"github.com/alee-2021/clear/internal/config"
	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/alee-2021/clear/internal/platform/postgres"
	"github.com/alee-2021/clear/internal/service/auth"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := applyMigrations(db, log); err != nil {
		return err
	}

	userStore := postgres.NewPostgresUserStore(db, log)
	taskStore := postgres.NewPostgresTaskStore(db, log)
	tokenStore := postgres.NewPostgresTokenStore(db, log)

	pruneExpiredTokens(tokenStore, log)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create JWT service: %w", err)
	}
	sessions := auth.NewSessions(jwtService, tokenStore, log)
	passwords := auth.NewBcryptHasher()

	resolver := assistant.NewResolver(taskStore, assistant.NewDateParser())

	router := newRouter(routerDeps{
		userStore: userStore,
		taskStore: taskStore,
		sessions:  sessions,
		passwords: passwords,
		resolver:  resolver,
		logger:    log,
	})

	return startHTTPServer(cfg, log, router)
}
