package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coremocks "github.com/lucasferrari/taskboard/mocks/port/core"
)

func TestNewTodo(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		todo, err := NewTodo("todo-1", "project-1", "Write report", "quarterly numbers", nil, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "todo-1", todo.ID)
		assert.Equal(t, "project-1", todo.ProjectID)
		assert.Equal(t, TodoStatusOpen, todo.Status)
		assert.Equal(t, fixedTime, todo.CreatedAt)
		assert.Equal(t, fixedTime, todo.UpdatedAt)
	})

	t.Run("Title is trimmed", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		todo, err := NewTodo("todo-1", "project-1", "  Write report  ", "", nil, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Write report", todo.Title)
	})

	t.Run("Empty title is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		todo, err := NewTodo("todo-1", "project-1", "   ", "", nil, mockTime)

		assert.Nil(t, todo)
		assert.Equal(t, errs.ErrInvalidTitle, err)
	})

	t.Run("Overlong title is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		todo, err := NewTodo("todo-1", "project-1", strings.Repeat("x", 201), "", nil, mockTime)

		assert.Nil(t, todo)
		assert.Equal(t, errs.ErrInvalidTitle, err)
	})
}

func TestTodoTransitions(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	completedAt := createdAt.Add(time.Hour)

	newTodo := func(t *testing.T) (*Todo, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(createdAt).Once()
		todo, err := NewTodo("todo-1", "project-1", "Write report", "", nil, mockTime)
		require.NoError(t, err)
		return todo, mockTime
	}

	t.Run("Complete marks todo done", func(t *testing.T) {
		todo, mockTime := newTodo(t)
		mockTime.EXPECT().Now().Return(completedAt).Once()

		todo.Complete(mockTime)

		assert.True(t, todo.IsDone())
		assert.Equal(t, completedAt, todo.UpdatedAt)
	})

	t.Run("Complete is idempotent", func(t *testing.T) {
		todo, mockTime := newTodo(t)
		mockTime.EXPECT().Now().Return(completedAt).Once()

		todo.Complete(mockTime)
		todo.Complete(mockTime) // second call must not touch the clock

		assert.True(t, todo.IsDone())
		assert.Equal(t, completedAt, todo.UpdatedAt)
	})

	t.Run("Reopen returns todo to open", func(t *testing.T) {
		todo, mockTime := newTodo(t)
		mockTime.EXPECT().Now().Return(completedAt).Times(2)

		todo.Complete(mockTime)
		todo.Reopen(mockTime)

		assert.False(t, todo.IsDone())
		assert.Equal(t, TodoStatusOpen, todo.Status)
	})

	t.Run("Rename rejects empty title", func(t *testing.T) {
		todo, mockTime := newTodo(t)

		err := todo.Rename("", mockTime)

		assert.Equal(t, errs.ErrInvalidTitle, err)
		assert.Equal(t, "Write report", todo.Title)
	})
}

func TestParseTodoStatus(t *testing.T) {
	t.Run("Accepts known statuses", func(t *testing.T) {
		for _, raw := range []string{"open", "done"} {
			status, err := ParseTodoStatus(raw)
			require.NoError(t, err)
			assert.Equal(t, TodoStatus(raw), status)
		}
	})

	t.Run("Rejects unknown status", func(t *testing.T) {
		_, err := ParseTodoStatus("archived")
		assert.Equal(t, errs.ErrInvalidStatus, err)
	})
}
