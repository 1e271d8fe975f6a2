package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alee-2021/clear/internal/api/shared"
	"github.com/alee-2021/clear/internal/assistant"
	"github.com/alee-2021/clear/internal/mocks"
)

func newChatTestHandler(tasks *mocks.TaskStore) *ChatHandler {
	clock := func() time.Time {
		return time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)
	}
	resolver := assistant.NewResolver(tasks, assistant.NewDateParser(), assistant.WithClock(clock))
	return NewChatHandler(resolver)
}

func chatRequest(t *testing.T, userID uuid.UUID, text string) *http.Request {
	t.Helper()

	payload, err := json.Marshal(ChatRequest{Text: text})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if userID != uuid.Nil {
		ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
		req = req.WithContext(ctx)
	}
	return req
}

func TestChatAddCommand(t *testing.T) {
	tasks := mocks.NewTaskStore()
	handler := newChatTestHandler(tasks)
	userID := uuid.New()

	rr := httptest.NewRecorder()
	handler.Chat(rr, chatRequest(t, userID, "remind me to buy milk tomorrow"))

	require.Equal(t, http.StatusOK, rr.Code, "response body: %s", rr.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Got it! Added: 'Buy milk' due Tuesday, June 02", resp["message"])
	assert.Equal(t, "add", resp["action"])
	assert.Nil(t, resp["tasks"], "add responses serialize tasks as null")

	assert.Equal(t, 1, tasks.Count())
}

func TestChatListCommand(t *testing.T) {
	tasks := mocks.NewTaskStore()
	handler := newChatTestHandler(tasks)
	userID := uuid.New()

	rr := httptest.NewRecorder()
	handler.Chat(rr, chatRequest(t, userID, "show my tasks"))

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "You have no pending tasks. Nice work!", resp["message"])
	assert.Equal(t, "list", resp["action"])
	tasksField, ok := resp["tasks"].([]any)
	require.True(t, ok, "an empty list serializes as an array, not null")
	assert.Empty(t, tasksField)
}

func TestChatBlankText(t *testing.T) {
	handler := newChatTestHandler(mocks.NewTaskStore())

	rr := httptest.NewRecorder()
	handler.Chat(rr, chatRequest(t, uuid.New(), "   "))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Please enter a command")
}

func TestChatMalformedBody(t *testing.T) {
	handler := newChatTestHandler(mocks.NewTaskStore())

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{not json")))
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, uuid.New())
	rr := httptest.NewRecorder()
	handler.Chat(rr, req.WithContext(ctx))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestChatRequiresAuthentication(t *testing.T) {
	handler := newChatTestHandler(mocks.NewTaskStore())

	rr := httptest.NewRecorder()
	handler.Chat(rr, chatRequest(t, uuid.Nil, "show my tasks"))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestChatStoreFailure(t *testing.T) {
	tasks := mocks.NewTaskStore()
	tasks.ForcedError = errors.New("connection reset")
	handler := newChatTestHandler(tasks)

	rr := httptest.NewRecorder()
	handler.Chat(rr, chatRequest(t, uuid.New(), "show my tasks"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "connection reset", "internal details stay out of responses")
}
