package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/phrazzld/tasker-api/internal/domain"
	"github.com/phrazzld/tasker-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, task *domain.Task) error
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListFn    func(ctx context.Context, ownerID uuid.UUID, params store.ListParams) ([]*domain.Task, int, error)
	UpdateFn  func(ctx context.Context, task *domain.Task) error
	DeleteFn  func(ctx context.Context, id uuid.UUID) error

	// Data for default implementation, keyed by task ID
	Tasks map[uuid.UUID]*domain.Task

	// Forced errors for default implementation
	CreateError error
	ListError   error
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks: make(map[uuid.UUID]*domain.Task),
	}
}

// Create implements the TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	m.Tasks[task.ID] = task
	return nil
}

// GetByID implements the TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	task, exists := m.Tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}

	return task, nil
}

// List implements the TaskStore interface. The default implementation
// mirrors the postgres store's semantics: filter by owner, sort with a
// stable id tie-breaker, then slice out the requested page.
func (m *MockTaskStore) List(
	ctx context.Context,
	ownerID uuid.UUID,
	params store.ListParams,
) ([]*domain.Task, int, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, ownerID, params)
	}

	if m.ListError != nil {
		return nil, 0, m.ListError
	}

	params = params.Normalize()

	owned := []*domain.Task{}
	for _, task := range m.Tasks {
		if task.UserID == ownerID {
			owned = append(owned, task)
		}
	}

	sort.Slice(owned, func(i, j int) bool {
		a, b := owned[i], owned[j]
		if params.OrderBy == store.OrderDesc {
			a, b = b, a
		}
		switch params.SortBy {
		case store.SortByTitle:
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		case store.SortByStatus:
			if a.Status != b.Status {
				return !a.Status && b.Status
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.Before(b.CreatedAt)
			}
		}
		return a.ID.String() < b.ID.String()
	})

	total := len(owned)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return owned[start:end], total, nil
}

// Update implements the TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	if _, exists := m.Tasks[task.ID]; !exists {
		return store.ErrTaskNotFound
	}

	m.Tasks[task.ID] = task
	return nil
}

// Delete implements the TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Tasks[id]; !exists {
		return store.ErrTaskNotFound
	}

	delete(m.Tasks, id)
	return nil
}
