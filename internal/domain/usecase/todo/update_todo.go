package todo

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// UpdateTodo replaces a todo's title, description and due date. The whole
// entity is read, mutated and saved back as one item write.
func (t *TodoUseCase) UpdateTodo(ctx context.Context, input usecaseport.UpdateTodoInput) result.Result[*entity.Todo] {
	found := t.todoRepo.FindByID(ctx, input.TodoID)
	if found.IsErr() {
		return found
	}
	item := found.Value()

	if err := item.Rename(input.Title, t.timeProvider); err != nil {
		return result.Err[*entity.Todo](err)
	}
	item.Describe(input.Description, t.timeProvider)
	item.DueDate = input.DueDate

	return t.save(ctx, item, "Failed to update todo")
}

// CompleteTodo marks a todo as done. Completing a done todo is a no-op.
func (t *TodoUseCase) CompleteTodo(ctx context.Context, id string) result.Result[*entity.Todo] {
	found := t.todoRepo.FindByID(ctx, id)
	if found.IsErr() {
		return found
	}
	item := found.Value()

	item.Complete(t.timeProvider)
	return t.save(ctx, item, "Failed to complete todo")
}

// ReopenTodo moves a done todo back to open
func (t *TodoUseCase) ReopenTodo(ctx context.Context, id string) result.Result[*entity.Todo] {
	found := t.todoRepo.FindByID(ctx, id)
	if found.IsErr() {
		return found
	}
	item := found.Value()

	item.Reopen(t.timeProvider)
	return t.save(ctx, item, "Failed to save todo")
}

func (t *TodoUseCase) save(ctx context.Context, item *entity.Todo, failMsg string) result.Result[*entity.Todo] {
	saved := t.todoRepo.Save(ctx, item)
	if saved.IsErr() {
		t.logger.Error(failMsg, map[string]any{
			"todoId": item.ID,
			"error":  saved.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.Todo](saved)
	}
	return result.Ok(item)
}
