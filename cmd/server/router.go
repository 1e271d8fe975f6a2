package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/alee-2021/clear/internal/api"
	apimiddleware "github.com/alee-2021/clear/internal/api/middleware"
	"github.com/alee-2021/clear/internal/api/shared"
	"github.com/alee-2021/clear/internal/assistant"
	"github.com/alee-2021/clear/internal/service/auth"
	"github.com/alee-2021/clear/internal/store"
)

// routerDeps bundles everything the router needs to build its handlers.
type routerDeps struct {
	userStore store.UserStore
	taskStore store.TaskStore
	sessions  auth.SessionManager
	passwords auth.PasswordHasher
	resolver  *assistant.Resolver
	logger    *slog.Logger
}

// newRouter creates and configures the application router with all routes
// and middleware.
func newRouter(deps routerDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(deps.userStore, deps.sessions, deps.passwords)
	chatHandler := api.NewChatHandler(deps.resolver)
	taskHandler := api.NewTaskHandler(deps.taskStore)
	authMiddleware := apimiddleware.NewAuthMiddleware(deps.sessions)

	// Authentication endpoints (public)
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/logout", authHandler.Logout)
		r.Post("/chat", chatHandler.Chat)

		r.Get("/tasks", taskHandler.ListTasks)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)
		r.Put("/tasks/{id}/toggle", taskHandler.ToggleTask)
	})

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		shared.RespondWithJSON(w, req, http.StatusOK, api.MessageResponse{
			Message: "Clear API is running.",
		})
	})

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			deps.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
