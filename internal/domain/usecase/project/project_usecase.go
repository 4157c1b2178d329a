package project

import (
	"context"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// ProjectUseCase handles project-related business logic. Mutations that
// touch more than one item run through the unit-of-work runner so the
// project row, its memberships and its todos stay consistent.
type ProjectUseCase struct {
	runner       persistence.UnitOfWorkRunner
	projectRepo  persistence.ProjectRepository
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecaseport.ProjectUseCase = (*ProjectUseCase)(nil)

// NewProjectUseCase creates a new ProjectUseCase
func NewProjectUseCase(
	runner persistence.UnitOfWorkRunner,
	projectRepo persistence.ProjectRepository,
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *ProjectUseCase {
	return &ProjectUseCase{
		runner:       runner,
		projectRepo:  projectRepo,
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetProject retrieves a project with its member list
func (p *ProjectUseCase) GetProject(ctx context.Context, id string) result.Result[*entity.Project] {
	return p.projectRepo.FindByID(ctx, id)
}
