package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alee-2021/clear/internal/api/shared"
	"github.com/alee-2021/clear/internal/domain"
	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/alee-2021/clear/internal/service/auth"
	"github.com/alee-2021/clear/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userStore store.UserStore
	sessions  auth.SessionManager
	passwords auth.PasswordHasher
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	userStore store.UserStore,
	sessions auth.SessionManager,
	passwords auth.PasswordHasher,
) *AuthHandler {
	return &AuthHandler{
		userStore: userStore,
		sessions:  sessions,
		passwords: passwords,
		validator: validator.New(),
	}
}

// Register handles the /register endpoint.
// A successful registration issues a session token immediately (auto-login).
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	user, err := domain.NewUser(req.Username, req.Password)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid user data: "+err.Error())
		return
	}

	hashed, err := h.passwords.Hash(req.Password)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}
	user.HashedPassword = hashed
	user.Password = ""

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			shared.RespondWithError(w, r, http.StatusConflict, "Username already taken")
			return
		}
		logger.FromContext(r.Context()).Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("username", user.Username))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID, user.Username)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to issue session token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, AuthResponse{
		Message:  "Account created successfully!",
		Token:    token,
		Username: user.Username,
	})
}

// Login handles the /login endpoint.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))

	user, err := h.userStore.GetByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			// Indistinguishable from a wrong password.
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		logger.FromContext(r.Context()).Error("failed to get user by username",
			slog.String("error", err.Error()),
			slog.String("username", username))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to authenticate user")
		return
	}

	if err := h.passwords.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.sessions.Issue(r.Context(), user.ID, user.Username)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to issue session token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message:  "Login successful!",
		Token:    token,
		Username: user.Username,
	})
}

// Logout handles the /logout endpoint. The presented token's registration is
// deleted, so subsequent requests with it fail validation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := r.Context().Value(shared.AuthTokenContextKey).(string)
	if !ok || token == "" {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.sessions.Revoke(r.Context(), token); err != nil && !errors.Is(err, store.ErrTokenNotFound) {
		logger.FromContext(r.Context()).Error("failed to revoke session token",
			slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to log out")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Logged out successfully",
	})
}
