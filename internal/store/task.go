package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/tasker-api/internal/domain"
)

// Sort fields accepted by TaskStore.List. Unknown values fall back to
// SortByCreatedAt rather than erroring.
const (
	SortByCreatedAt = "createdAt"
	SortByTitle     = "title"
	SortByStatus    = "status"
)

// Sort orders accepted by TaskStore.List.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Pagination bounds enforced by ListParams.Normalize.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListParams describes a paginated, sorted listing request.
type ListParams struct {
	Page    int
	Limit   int
	SortBy  string
	OrderBy string
}

// Normalize clamps the parameters to their documented bounds and fills
// in defaults: page >= 1, limit in [1, MaxLimit], sortBy one of the
// whitelisted fields, orderBy asc or desc.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	switch p.SortBy {
	case SortByCreatedAt, SortByTitle, SortByStatus:
	default:
		p.SortBy = SortByCreatedAt
	}

	if p.OrderBy != OrderAsc {
		p.OrderBy = OrderDesc
	}

	return p
}

// Offset returns the number of records to skip for the current page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns the page of tasks owned by ownerID described by
	// params, together with the total number of tasks the owner has
	// (ignoring pagination). Params are expected to be normalized.
	List(ctx context.Context, ownerID uuid.UUID, params ListParams) ([]*domain.Task, int, error)

	// Update persists the task's mutable fields (title, description,
	// status). Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task from the store by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
