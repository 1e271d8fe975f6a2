package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	ownerID := uuid.New()
	due := NewDate(2026, time.June, 3)

	task, err := NewTask(ownerID, "Buy milk", &due)
	require.NoError(t, err)

	assert.Zero(t, task.ID, "the store assigns IDs")
	assert.Equal(t, ownerID, task.UserID)
	assert.Equal(t, "Buy milk", task.Content)
	assert.Equal(t, TaskStatusPending, task.Status, "new tasks start pending")
	assert.Equal(t, &due, task.DueDate)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestNewTaskValidation(t *testing.T) {
	tests := []struct {
		name    string
		userID  uuid.UUID
		content string
		wantErr error
	}{
		{"missing owner", uuid.Nil, "Buy milk", ErrEmptyTaskUserID},
		{"empty content", uuid.New(), "", ErrEmptyTaskContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTask(tt.userID, tt.content, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTaskValidateRejectsUnknownStatus(t *testing.T) {
	task := &Task{
		UserID:  uuid.New(),
		Content: "Buy milk",
		Status:  TaskStatus("archived"),
	}

	assert.ErrorIs(t, task.Validate(), ErrInvalidTaskStatus)
}

func TestTaskStatusToggled(t *testing.T) {
	assert.Equal(t, TaskStatusDone, TaskStatusPending.Toggled())
	assert.Equal(t, TaskStatusPending, TaskStatusDone.Toggled())
}

func TestTaskJSONShape(t *testing.T) {
	due := NewDate(2026, time.June, 3)
	task := Task{
		ID:      7,
		UserID:  uuid.New(),
		Content: "Buy milk",
		Status:  TaskStatusPending,
		DueDate: &due,
	}

	data, err := json.Marshal(task)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, float64(7), decoded["id"])
	assert.Equal(t, "Buy milk", decoded["content"])
	assert.Equal(t, "pending", decoded["status"])
	assert.Equal(t, "2026-06-03", decoded["due_date"])
	assert.NotContains(t, decoded, "user_id", "owner ID never leaves the server")
}

func TestTaskJSONNullDueDate(t *testing.T) {
	task := Task{ID: 1, UserID: uuid.New(), Content: "Buy milk", Status: TaskStatusPending}

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"due_date":null`)
}
