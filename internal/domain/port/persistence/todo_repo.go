package persistence

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// TodoRepository defines the persistence operations for todos.
//
// Mutating methods registered against a unit of work only record the write;
// nothing reaches storage until the unit of work commits.
type TodoRepository interface {
	// Save upserts the full todo item. Updates are modeled as
	// read-then-save of the whole entity, never as partial updates.
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault (immediate mode only)
	Save(ctx context.Context, todo *entity.Todo) result.Result[result.Void]

	// Remove deletes the todo with the given ID. Removing a todo that does
	// not exist is not an error at this layer.
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault (immediate mode only)
	Remove(ctx context.Context, id string) result.Result[result.Void]

	// FindByID retrieves a todo by ID
	//
	// Possible failures:
	// - ErrTodoNotFound: no todo with the given ID exists
	// - ErrUnexpectedStorage: provider fault
	FindByID(ctx context.Context, id string) result.Result[*entity.Todo]

	// FindByProject retrieves all todos belonging to a project
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault
	FindByProject(ctx context.Context, projectID string) result.Result[[]*entity.Todo]
}
