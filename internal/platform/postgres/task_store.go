package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasker-api/internal/domain"
	"github.com/phrazzld/tasker-api/internal/store"
)

// sortColumns maps the public sort field names onto the actual column
// names. List only ever interpolates values from this map into SQL, so
// user input can never reach the query text.
var sortColumns = map[string]string{
	store.SortByCreatedAt: "created_at",
	store.SortByTitle:     "title",
	store.SortByStatus:    "status",
}

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, the default logger is used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// Create implements store.TaskStore.Create
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := s.db.ExecContext(ctx, query,
		task.ID, task.UserID, task.Title, task.Description, task.Status, task.CreatedAt)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to insert task",
			"error", err, "task_id", task.ID, "user_id", task.UserID)
		return MapError(err)
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, status, created_at
		FROM tasks
		WHERE id = $1`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description, &task.Status, &task.CreatedAt)
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrTaskNotFound
		}
		s.logger.ErrorContext(ctx, "failed to query task", "error", err, "task_id", id)
		return nil, MapError(err)
	}

	return &task, nil
}

// List implements store.TaskStore.List. It runs a COUNT over all of
// the owner's tasks followed by the page query itself; the two queries
// are not transactional, which is acceptable because pagination totals
// are advisory.
func (s *PostgresTaskStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	params store.ListParams,
) ([]*domain.Task, int, error) {
	params = params.Normalize()

	var total int
	countQuery := `SELECT COUNT(*) FROM tasks WHERE user_id = $1`
	if err := s.db.QueryRowContext(ctx, countQuery, ownerID).Scan(&total); err != nil {
		s.logger.ErrorContext(ctx, "failed to count tasks", "error", err, "user_id", ownerID)
		return nil, 0, MapError(err)
	}

	column := sortColumns[params.SortBy]
	direction := "DESC"
	if params.OrderBy == store.OrderAsc {
		direction = "ASC"
	}

	// Secondary sort on id keeps the ordering stable when the sort key
	// has duplicate values, so concatenated pages never repeat a task.
	query := fmt.Sprintf(`
		SELECT id, user_id, title, description, status, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY %s %s, id %s
		LIMIT $2 OFFSET $3`, column, direction, direction)

	rows, err := s.db.QueryContext(ctx, query, ownerID, params.Limit, params.Offset())
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tasks", "error", err, "user_id", ownerID)
		return nil, 0, MapError(err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", "error", cerr)
		}
	}()

	tasks := []*domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description, &task.Status, &task.CreatedAt,
		); err != nil {
			s.logger.ErrorContext(ctx, "failed to scan task row", "error", err)
			return nil, 0, MapError(err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return tasks, total, nil
}

// Update implements store.TaskStore.Update
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, status = $3
		WHERE id = $4`

	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Status, task.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update task", "error", err, "task_id", task.ID)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *PostgresTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task", "error", err, "task_id", id)
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
