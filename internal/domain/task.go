package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusPending TaskStatus = "pending"
	TaskStatusDone    TaskStatus = "done"
)

// Common validation errors for Task.
var (
	ErrEmptyTaskUserID   = errors.New("task user ID cannot be empty")
	ErrEmptyTaskContent  = errors.New("task content cannot be empty")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Task represents a single tracked item belonging to exactly one user.
// The ID is assigned by the store at creation. DueDate is optional.
type Task struct {
	ID        int64      `json:"id"`
	UserID    uuid.UUID  `json:"-"`
	Content   string     `json:"content"`
	Status    TaskStatus `json:"status"`
	DueDate   *Date      `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewTask creates a new pending Task for the given owner.
// The ID is left zero until the store assigns one.
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, content string, dueDate *Date) (*Task, error) {
	task := &Task{
		UserID:    userID,
		Content:   content,
		Status:    TaskStatusPending,
		DueDate:   dueDate,
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if t.Content == "" {
		return ErrEmptyTaskContent
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// Toggled returns the opposite lifecycle state.
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskStatusPending {
		return TaskStatusDone
	}
	return TaskStatusPending
}

func isValidTaskStatus(s TaskStatus) bool {
	return s == TaskStatusPending || s == TaskStatusDone
}
