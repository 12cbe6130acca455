package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task validation errors
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskOwner = errors.New("task owner cannot be empty")
	ErrEmptyTitle     = errors.New("task title cannot be empty")
)

// Task represents a single to-do item owned by exactly one user.
// A task is visible and mutable only by its owner; the owner
// relationship is a plain reference and does not cascade.
type Task struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      bool      `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewTask creates a new Task owned by the given user.
// It generates a new UUID for the task ID and sets the creation
// timestamp. Returns an error if validation fails.
func NewTask(userID uuid.UUID, title, description string, status bool) (*Task, error) {
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	return nil
}

// IsOwnedBy reports whether the task belongs to the given user.
func (t *Task) IsOwnedBy(userID uuid.UUID) bool {
	return t != nil && t.UserID == userID
}
