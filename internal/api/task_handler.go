package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/alee-2021/clear/internal/api/shared"
	"github.com/alee-2021/clear/internal/domain"
	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/alee-2021/clear/internal/store"
)

// TaskHandler handles the direct task CRUD endpoints.
type TaskHandler struct {
	taskStore store.TaskStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
	}
}

// ListTasks handles GET /tasks. It returns every task for the caller ordered
// by status, due date, then creation time.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	tasks, err := h.taskStore.List(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to list tasks",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	if tasks == nil {
		tasks = []domain.Task{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasks)
}

// DeleteTask handles DELETE /tasks/{id}. The delete is owner-scoped, so a
// task belonging to someone else is indistinguishable from a missing one.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	affected, err := h.taskStore.Delete(r.Context(), taskID, userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}
	if affected == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

// ToggleTask handles PUT /tasks/{id}/toggle, flipping a task between pending
// and done.
func (h *TaskHandler) ToggleTask(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Not authenticated")
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), taskID, userID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Task not found")
			return
		}
		logger.FromContext(r.Context()).Error("failed to get task",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	newStatus := task.Status.Toggled()
	if _, err := h.taskStore.UpdateStatus(r.Context(), taskID, userID, newStatus); err != nil {
		logger.FromContext(r.Context()).Error("failed to update task status",
			slog.String("error", err.Error()),
			slog.Int64("task_id", taskID))
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ToggleResponse{
		Message:   fmt.Sprintf("Task status changed to %s", newStatus),
		NewStatus: newStatus,
	})
}

// getPathTaskID extracts and parses the {id} path parameter.
func getPathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		return 0, fmt.Errorf("%w: id is required", domain.ErrInvalidID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidID, raw)
	}

	return id, nil
}
