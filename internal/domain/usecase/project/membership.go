package project

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// AddMember adds a user to the project with the given role
func (p *ProjectUseCase) AddMember(ctx context.Context, projectID, userID, role string) result.Result[*entity.Project] {
	memberRole, err := entity.ParseMemberRole(role)
	if err != nil {
		return result.Err[*entity.Project](err)
	}

	// The new member must be a registered user
	member := p.userRepo.FindByID(ctx, userID)
	if member.IsErr() {
		return result.MapErr[*entity.User, *entity.Project](member)
	}

	found := p.projectRepo.FindByID(ctx, projectID)
	if found.IsErr() {
		return found
	}
	board := found.Value()

	if err := board.AddMember(userID, memberRole, p.timeProvider); err != nil {
		return result.Err[*entity.Project](err)
	}

	res := p.runner.Run(ctx, func(uow *persistence.UnitOfWork) result.Result[result.Void] {
		return uow.Projects.Save(ctx, board)
	})
	if res.IsErr() {
		p.logger.Error("Failed to add member", map[string]any{
			"projectId": projectID,
			"userId":    userID,
			"error":     res.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.Project](res)
	}

	p.logger.Info("Member added", map[string]any{
		"projectId": projectID,
		"userId":    userID,
		"role":      role,
	})
	return result.Ok(board)
}

// RemoveMember removes a user from the project. Removing the last owner is
// rejected so every project keeps at least one owner.
func (p *ProjectUseCase) RemoveMember(ctx context.Context, projectID, userID string) result.Result[*entity.Project] {
	found := p.projectRepo.FindByID(ctx, projectID)
	if found.IsErr() {
		return found
	}
	board := found.Value()

	if err := board.RemoveMember(userID, p.timeProvider); err != nil {
		return result.Err[*entity.Project](err)
	}

	res := p.runner.Run(ctx, func(uow *persistence.UnitOfWork) result.Result[result.Void] {
		return uow.Projects.Save(ctx, board)
	})
	if res.IsErr() {
		p.logger.Error("Failed to remove member", map[string]any{
			"projectId": projectID,
			"userId":    userID,
			"error":     res.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.Project](res)
	}

	p.logger.Info("Member removed", map[string]any{
		"projectId": projectID,
		"userId":    userID,
	})
	return result.Ok(board)
}
