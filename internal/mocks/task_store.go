package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// TaskStore is an in-memory store.TaskStore for tests.
// Setting ForcedError makes every method fail with it, simulating an
// unavailable backend.
type TaskStore struct {
	mu          sync.Mutex
	tasks       []domain.Task
	nextID      int64
	ForcedError error
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{nextID: 1}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return s.ForcedError
	}

	if err := task.Validate(); err != nil {
		return err
	}

	task.ID = s.nextID
	s.nextID++
	s.tasks = append(s.tasks, *task)
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id && s.tasks[i].UserID == ownerID {
			task := s.tasks[i]
			return &task, nil
		}
	}
	return nil, store.ErrTaskNotFound
}

// List implements store.TaskStore.List
func (s *TaskStore) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	tasks, err := s.collect(func(t *domain.Task) bool { return t.UserID == ownerID })
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Status != tasks[j].Status {
			return tasks[i].Status < tasks[j].Status
		}
		return dueBefore(tasks[i].DueDate, tasks[j].DueDate)
	})
	return tasks, nil
}

// ListPending implements store.TaskStore.ListPending
func (s *TaskStore) ListPending(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	return s.collect(func(t *domain.Task) bool {
		return t.UserID == ownerID && t.Status == domain.TaskStatusPending
	})
}

// ListPendingByDueDate implements store.TaskStore.ListPendingByDueDate
func (s *TaskStore) ListPendingByDueDate(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	tasks, err := s.ListPending(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return dueBefore(tasks[i].DueDate, tasks[j].DueDate)
	})
	return tasks, nil
}

// ListPendingDueOn implements store.TaskStore.ListPendingDueOn
func (s *TaskStore) ListPendingDueOn(ctx context.Context, ownerID uuid.UUID, due domain.Date) ([]domain.Task, error) {
	return s.collect(func(t *domain.Task) bool {
		return t.UserID == ownerID &&
			t.Status == domain.TaskStatusPending &&
			t.DueDate != nil &&
			t.DueDate.Equal(due)
	})
}

// ListDone implements store.TaskStore.ListDone
func (s *TaskStore) ListDone(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	tasks, err := s.collect(func(t *domain.Task) bool {
		return t.UserID == ownerID && t.Status == domain.TaskStatusDone
	})
	if err != nil {
		return nil, err
	}

	// Creation order descending.
	for i, j := 0, len(tasks)-1; i < j; i, j = i+1, j-1 {
		tasks[i], tasks[j] = tasks[j], tasks[i]
	}
	return tasks, nil
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *TaskStore) UpdateStatus(ctx context.Context, id int64, ownerID uuid.UUID, status domain.TaskStatus) (int64, error) {
	return s.mutate(id, ownerID, nil, func(t *domain.Task) { t.Status = status })
}

// MarkDone implements store.TaskStore.MarkDone
func (s *TaskStore) MarkDone(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	pending := domain.TaskStatusPending
	return s.mutate(id, ownerID, &pending, func(t *domain.Task) { t.Status = domain.TaskStatusDone })
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	return s.remove(id, ownerID, nil)
}

// DeletePending implements store.TaskStore.DeletePending
func (s *TaskStore) DeletePending(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	pending := domain.TaskStatusPending
	return s.remove(id, ownerID, &pending)
}

// Count returns the total number of stored tasks across all owners.
func (s *TaskStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (s *TaskStore) collect(keep func(*domain.Task) bool) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return nil, s.ForcedError
	}

	var tasks []domain.Task
	for i := range s.tasks {
		if keep(&s.tasks[i]) {
			tasks = append(tasks, s.tasks[i])
		}
	}
	return tasks, nil
}

func (s *TaskStore) mutate(id int64, ownerID uuid.UUID, requireStatus *domain.TaskStatus, apply func(*domain.Task)) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return 0, s.ForcedError
	}

	for i := range s.tasks {
		if s.tasks[i].ID != id || s.tasks[i].UserID != ownerID {
			continue
		}
		if requireStatus != nil && s.tasks[i].Status != *requireStatus {
			return 0, nil
		}
		apply(&s.tasks[i])
		return 1, nil
	}
	return 0, nil
}

func (s *TaskStore) remove(id int64, ownerID uuid.UUID, requireStatus *domain.TaskStatus) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ForcedError != nil {
		return 0, s.ForcedError
	}

	for i := range s.tasks {
		if s.tasks[i].ID != id || s.tasks[i].UserID != ownerID {
			continue
		}
		if requireStatus != nil && s.tasks[i].Status != *requireStatus {
			return 0, nil
		}
		s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
		return 1, nil
	}
	return 0, nil
}

// dueBefore orders by due date ascending with nil dates last.
func dueBefore(a, b *domain.Date) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return a.Time().Before(b.Time())
	}
}
