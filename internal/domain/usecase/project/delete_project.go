package project

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// DeleteProject removes the project, its membership rows and every todo
// that belongs to it. All deletions land in one atomic transaction, so a
// failure leaves the project fully intact.
func (p *ProjectUseCase) DeleteProject(ctx context.Context, id string) result.Result[result.Void] {
	// Surface not-found before opening a unit of work
	found := p.projectRepo.FindByID(ctx, id)
	if found.IsErr() {
		return result.MapErr[*entity.Project, result.Void](found)
	}

	res := p.runner.Run(ctx, func(uow *persistence.UnitOfWork) result.Result[result.Void] {
		todos := uow.Todos.FindByProject(ctx, id)
		if todos.IsErr() {
			return result.MapErr[[]*entity.Todo, result.Void](todos)
		}
		for _, todo := range todos.Value() {
			if removed := uow.Todos.Remove(ctx, todo.ID); removed.IsErr() {
				return removed
			}
		}
		return uow.Projects.Remove(ctx, id)
	})
	if res.IsErr() {
		p.logger.Error("Failed to delete project", map[string]any{
			"projectId": id,
			"error":     res.Error().Error(),
		})
		return res
	}

	p.logger.Info("Project deleted", map[string]any{"projectId": id})
	return res
}
