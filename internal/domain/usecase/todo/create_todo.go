package todo

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// CreateTodo creates a todo inside a project. The actor must be a project
// member whose role allows editing.
func (t *TodoUseCase) CreateTodo(ctx context.Context, input usecaseport.CreateTodoInput) result.Result[*entity.Todo] {
	found := t.projectRepo.FindByID(ctx, input.ProjectID)
	if found.IsErr() {
		return result.MapErr[*entity.Project, *entity.Todo](found)
	}
	board := found.Value()

	role, ok := board.MemberRole(input.ActorID)
	if !ok {
		return result.Err[*entity.Todo](
			errs.NewMembershipError(input.ProjectID, input.ActorID, "actor is not a project member", errs.ErrNotProjectMember))
	}
	if !role.CanEdit() {
		return result.Err[*entity.Todo](
			errs.NewMembershipError(input.ProjectID, input.ActorID, "viewer role cannot create todos", errs.ErrNotProjectMember))
	}

	item, err := entity.NewTodo(uuid.NewString(), input.ProjectID, input.Title, input.Description, input.DueDate, t.timeProvider)
	if err != nil {
		return result.Err[*entity.Todo](err)
	}

	saved := t.todoRepo.Save(ctx, item)
	if saved.IsErr() {
		t.logger.Error("Failed to create todo", map[string]any{
			"todoId":    item.ID,
			"projectId": input.ProjectID,
			"error":     saved.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.Todo](saved)
	}

	t.logger.Info("Todo created", map[string]any{
		"todoId":    item.ID,
		"projectId": input.ProjectID,
	})
	return result.Ok(item)
}
