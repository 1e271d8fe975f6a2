package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/alee-2021/clear/internal/api/shared"
	"github.com/alee-2021/clear/internal/assistant"
	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/google/uuid"
)

// ChatHandler handles natural-language command requests.
type ChatHandler struct {
	resolver *assistant.Resolver
}

// NewChatHandler creates a new ChatHandler with the given dependencies.
func NewChatHandler(resolver *assistant.Resolver) *ChatHandler {
	return &ChatHandler{
		resolver: resolver,
	}
}

// Chat handles the /chat endpoint. The resolver is only invoked with
// non-blank text; everything it returns is a well-formed response, so the
// only failure surfaced here is the store going away mid-request.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	var req ChatRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Please enter a command")
		return
	}

	response, err := h.resolver.Resolve(r.Context(), userID, req.Text)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to resolve command",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// getUserIDFromContext extracts the authenticated user's UUID from the
// request context, where the authentication middleware placed it.
func getUserIDFromContext(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
