package store

import (
	"context"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/google/uuid"
)

// TaskStore defines the interface for task data persistence.
//
// Every method is scoped by owner: an owner can never observe or mutate
// another owner's tasks. Mutations return the number of affected rows so
// callers can distinguish "not found" (or lost a race) from success.
type TaskStore interface {
	// Create saves a new task and assigns its ID.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a single task owned by ownerID.
	// Returns ErrTaskNotFound if no such task exists for that owner.
	GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (*domain.Task, error)

	// List returns every task for the owner ordered by status, due date,
	// then creation time.
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// ListPending returns the owner's pending tasks in creation order.
	// This is the order the task matcher iterates.
	ListPending(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// ListPendingByDueDate returns the owner's pending tasks ordered by due
	// date ascending with undated tasks last, then creation time.
	ListPendingByDueDate(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// ListPendingDueOn returns the owner's pending tasks due on the given
	// date, in creation order.
	ListPendingDueOn(ctx context.Context, ownerID uuid.UUID, due domain.Date) ([]domain.Task, error)

	// ListDone returns the owner's completed tasks, most recently created
	// first.
	ListDone(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error)

	// UpdateStatus sets the task's status unconditionally.
	UpdateStatus(ctx context.Context, id int64, ownerID uuid.UUID, status domain.TaskStatus) (int64, error)

	// MarkDone flips the task to done only if it is still pending. A zero
	// affected count means the task was already completed, deleted, or never
	// existed.
	MarkDone(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error)

	// Delete removes the task unconditionally.
	Delete(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error)

	// DeletePending removes the task only if it is still pending.
	DeletePending(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error)
}
