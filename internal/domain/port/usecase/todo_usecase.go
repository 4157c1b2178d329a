package usecase

import (
	"context"
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// CreateTodoInput carries the fields needed to create a todo
type CreateTodoInput struct {
	ProjectID   string
	Title       string
	Description string
	DueDate     *time.Time
	ActorID     string
}

// UpdateTodoInput carries the fields needed to update a todo
type UpdateTodoInput struct {
	TodoID      string
	Title       string
	Description string
	DueDate     *time.Time
}

// TodoUseCase defines the todo-related business operations
type TodoUseCase interface {
	// CreateTodo creates a todo inside a project. The actor must be a
	// project member with edit rights.
	CreateTodo(ctx context.Context, input CreateTodoInput) result.Result[*entity.Todo]

	// GetTodo retrieves a todo by its identifier
	GetTodo(ctx context.Context, id string) result.Result[*entity.Todo]

	// ListProjectTodos retrieves all todos that belong to a project
	ListProjectTodos(ctx context.Context, projectID string) result.Result[[]*entity.Todo]

	// UpdateTodo replaces a todo's title, description and due date
	UpdateTodo(ctx context.Context, input UpdateTodoInput) result.Result[*entity.Todo]

	// CompleteTodo marks a todo as done. Completing a done todo is a no-op.
	CompleteTodo(ctx context.Context, id string) result.Result[*entity.Todo]

	// ReopenTodo moves a done todo back to open
	ReopenTodo(ctx context.Context, id string) result.Result[*entity.Todo]

	// DeleteTodo removes a todo by its identifier
	DeleteTodo(ctx context.Context, id string) result.Result[result.Void]
}
