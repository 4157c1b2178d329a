package todo

import (
	"context"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// TodoUseCase handles todo-related business logic. Todos are single items,
// so every mutation here is one atomic write through the repository in
// immediate mode; only project-level operations need a unit of work.
type TodoUseCase struct {
	todoRepo     persistence.TodoRepository
	projectRepo  persistence.ProjectRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecaseport.TodoUseCase = (*TodoUseCase)(nil)

// NewTodoUseCase creates a new TodoUseCase
func NewTodoUseCase(
	todoRepo persistence.TodoRepository,
	projectRepo persistence.ProjectRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TodoUseCase {
	return &TodoUseCase{
		todoRepo:     todoRepo,
		projectRepo:  projectRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetTodo retrieves a todo by its identifier
func (t *TodoUseCase) GetTodo(ctx context.Context, id string) result.Result[*entity.Todo] {
	return t.todoRepo.FindByID(ctx, id)
}

// ListProjectTodos retrieves all todos that belong to a project
func (t *TodoUseCase) ListProjectTodos(ctx context.Context, projectID string) result.Result[[]*entity.Todo] {
	// Listing an unknown project is a not-found, not an empty list
	found := t.projectRepo.FindByID(ctx, projectID)
	if found.IsErr() {
		return result.MapErr[*entity.Project, []*entity.Todo](found)
	}
	return t.todoRepo.FindByProject(ctx, projectID)
}

// DeleteTodo removes a todo by its identifier
func (t *TodoUseCase) DeleteTodo(ctx context.Context, id string) result.Result[result.Void] {
	found := t.todoRepo.FindByID(ctx, id)
	if found.IsErr() {
		return result.MapErr[*entity.Todo, result.Void](found)
	}

	removed := t.todoRepo.Remove(ctx, id)
	if removed.IsErr() {
		t.logger.Error("Failed to delete todo", map[string]any{
			"todoId": id,
			"error":  removed.Error().Error(),
		})
		return removed
	}

	t.logger.Info("Todo deleted", map[string]any{"todoId": id})
	return removed
}
