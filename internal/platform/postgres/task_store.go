package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alee-2021/clear/internal/domain"
	"github.com/alee-2021/clear/internal/platform/logger"
	"github.com/alee-2021/clear/internal/store"
	"github.com/google/uuid"
)

// taskColumns is the SELECT list shared by every task query.
const taskColumns = "id, user_id, content, status, due_date, created_at"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
//
// Undated tasks sort after dated ones in due-date ordering; the NULLS LAST
// clause makes the policy explicit rather than inherited from the engine.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, log *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
// It saves a new task and assigns the database-generated ID.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", task.UserID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (user_id, content, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Content,
		task.Status,
		task.DueDate,
		task.CreatedAt,
	).Scan(&task.ID)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("user_id", task.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("user_id", task.UserID.String()))
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id int64, ownerID uuid.UUID) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	var task domain.Task
	var due sql.Null[domain.Date]
	err := s.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&task.ID,
		&task.UserID,
		&task.Content,
		&task.Status,
		&due,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if due.Valid {
		d := due.V
		task.DueDate = &d
	}

	return &task, nil
}

// List implements store.TaskStore.List
func (s *PostgresTaskStore) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1
		ORDER BY status, due_date ASC NULLS LAST, created_at ASC, id ASC
	`
	return s.queryTasks(ctx, query, ownerID)
}

// ListPending implements store.TaskStore.ListPending
func (s *PostgresTaskStore) ListPending(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY created_at ASC, id ASC
	`
	return s.queryTasks(ctx, query, ownerID)
}

// ListPendingByDueDate implements store.TaskStore.ListPendingByDueDate
func (s *PostgresTaskStore) ListPendingByDueDate(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND status = 'pending'
		ORDER BY due_date ASC NULLS LAST, created_at ASC, id ASC
	`
	return s.queryTasks(ctx, query, ownerID)
}

// ListPendingDueOn implements store.TaskStore.ListPendingDueOn
func (s *PostgresTaskStore) ListPendingDueOn(ctx context.Context, ownerID uuid.UUID, due domain.Date) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND status = 'pending' AND due_date = $2
		ORDER BY created_at ASC, id ASC
	`
	return s.queryTasks(ctx, query, ownerID, due)
}

// ListDone implements store.TaskStore.ListDone
func (s *PostgresTaskStore) ListDone(ctx context.Context, ownerID uuid.UUID) ([]domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1 AND status = 'done'
		ORDER BY created_at DESC, id DESC
	`
	return s.queryTasks(ctx, query, ownerID)
}

// UpdateStatus implements store.TaskStore.UpdateStatus
func (s *PostgresTaskStore) UpdateStatus(ctx context.Context, id int64, ownerID uuid.UUID, status domain.TaskStatus) (int64, error) {
	query := `UPDATE tasks SET status = $1 WHERE id = $2 AND user_id = $3`
	return s.execAffected(ctx, "update task status", query, status, id, ownerID)
}

// MarkDone implements store.TaskStore.MarkDone
// The status guard means two racing completions commit at most one flip.
func (s *PostgresTaskStore) MarkDone(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	query := `
		UPDATE tasks SET status = 'done'
		WHERE id = $1 AND user_id = $2 AND status = 'pending'
	`
	return s.execAffected(ctx, "mark task done", query, id, ownerID)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	return s.execAffected(ctx, "delete task", query, id, ownerID)
}

// DeletePending implements store.TaskStore.DeletePending
func (s *PostgresTaskStore) DeletePending(ctx context.Context, id int64, ownerID uuid.UUID) (int64, error) {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2 AND status = 'pending'`
	return s.execAffected(ctx, "delete pending task", query, id, ownerID)
}

func (s *PostgresTaskStore) execAffected(ctx context.Context, operation, query string, args ...any) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to "+operation, slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to %s: %w", operation, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return affected, nil
}

func (s *PostgresTaskStore) queryTasks(ctx context.Context, query string, args ...any) ([]domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query tasks", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		var due sql.Null[domain.Date]

		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Content,
			&task.Status,
			&due,
			&task.CreatedAt,
		); err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		if due.Valid {
			d := due.V
			task.DueDate = &d
		}

		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating task rows: %w", err)
	}

	return tasks, nil
}
