package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()

	t.Run("creates valid task", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(ownerID, "t1", "first task", false)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, task.ID)
		assert.Equal(t, ownerID, task.UserID)
		assert.Equal(t, "t1", task.Title)
		assert.Equal(t, "first task", task.Description)
		assert.False(t, task.Status)
		assert.False(t, task.CreatedAt.IsZero())
	})

	t.Run("description defaults to empty", func(t *testing.T) {
		t.Parallel()
		task, err := NewTask(ownerID, "t1", "", true)
		require.NoError(t, err)
		assert.Equal(t, "", task.Description)
		assert.True(t, task.Status)
	})

	tests := []struct {
		name    string
		ownerID uuid.UUID
		title   string
		wantErr error
	}{
		{name: "missing owner", ownerID: uuid.Nil, title: "t1", wantErr: ErrEmptyTaskOwner},
		{name: "empty title", ownerID: ownerID, title: "", wantErr: ErrEmptyTitle},
		{name: "whitespace title", ownerID: ownerID, title: "  \t", wantErr: ErrEmptyTitle},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			task, err := NewTask(tc.ownerID, tc.title, "", false)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, task)
		})
	}
}

func TestTaskIsOwnedBy(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	task, err := NewTask(ownerID, "t1", "", false)
	require.NoError(t, err)

	assert.True(t, task.IsOwnedBy(ownerID))
	assert.False(t, task.IsOwnedBy(uuid.New()))

	var nilTask *Task
	assert.False(t, nilTask.IsOwnedBy(ownerID))
}
