package project

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// UpdateProject renames a project and replaces its description. The whole
// aggregate is read, mutated and saved back; partial updates are never
// issued.
func (p *ProjectUseCase) UpdateProject(ctx context.Context, input usecaseport.UpdateProjectInput) result.Result[*entity.Project] {
	found := p.projectRepo.FindByID(ctx, input.ProjectID)
	if found.IsErr() {
		return found
	}
	board := found.Value()

	if err := board.Rename(input.Name, p.timeProvider); err != nil {
		return result.Err[*entity.Project](err)
	}
	board.Describe(input.Description, p.timeProvider)

	res := p.runner.Run(ctx, func(uow *persistence.UnitOfWork) result.Result[result.Void] {
		return uow.Projects.Save(ctx, board)
	})
	if res.IsErr() {
		p.logger.Error("Failed to update project", map[string]any{
			"projectId": board.ID,
			"error":     res.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.Project](res)
	}

	return result.Ok(board)
}
