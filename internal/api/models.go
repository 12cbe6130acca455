package api

import "github.com/phrazzld/tasker-api/internal/domain"

// RegisterRequest is the payload for POST /api/users/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
}

// LoginRequest is the payload for POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// TokenResponse is the success payload of the register and login
// endpoints: a signed bearer token plus a human-readable message.
type TokenResponse struct {
	Token   string `json:"token"`
	Success string `json:"success"`
}

// CreateTaskRequest is the payload for POST /api/tasks/.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}

// UpdateTaskRequest is the payload for PUT /api/tasks/{id}.
// Fields are pointers so that omitted fields leave the stored value
// untouched; only title, description and status are mutable.
type UpdateTaskRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *bool   `json:"status"`
}

// ListTasksResponse is the paginated listing payload of GET /api/tasks/.
type ListTasksResponse struct {
	Tasks       []*domain.Task `json:"tasks"`
	CurrentPage int            `json:"currentPage"`
	TotalPages  int            `json:"totalPages"`
	TotalTasks  int            `json:"totalTasks"`
}

// MessageResponse carries a bare success message.
type MessageResponse struct {
	Success string `json:"success"`
}
