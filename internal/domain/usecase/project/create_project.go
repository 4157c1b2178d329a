package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// CreateProject creates a project with its creator as first owner
func (p *ProjectUseCase) CreateProject(ctx context.Context, input usecaseport.CreateProjectInput) result.Result[*entity.Project] {
	// The owner must be a registered user
	owner := p.userRepo.FindByID(ctx, input.OwnerID)
	if owner.IsErr() {
		return result.MapErr[*entity.User, *entity.Project](owner)
	}

	board, err := entity.NewProject(uuid.NewString(), input.Name, input.Description, input.OwnerID, p.timeProvider)
	if err != nil {
		return result.Err[*entity.Project](err)
	}

	// One unit of work writes the project row and the owner membership row
	// atomically
	res := p.runner.Run(ctx, func(uow *persistence.UnitOfWork) result.Result[result.Void] {
		return uow.Projects.Save(ctx, board)
	})
	if res.IsErr() {
		p.logger.Error("Failed to create project", map[string]any{
			"projectId": board.ID,
			"error":     res.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.Project](res)
	}

	p.logger.Info("Project created", map[string]any{
		"projectId": board.ID,
		"ownerId":   input.OwnerID,
	})
	return result.Ok(board)
}
