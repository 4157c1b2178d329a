package usecase

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// CreateProjectInput carries the fields needed to create a project
type CreateProjectInput struct {
	Name        string
	Description string
	OwnerID     string
}

// UpdateProjectInput carries the fields needed to update a project
type UpdateProjectInput struct {
	ProjectID   string
	Name        string
	Description string
}

// ProjectUseCase defines the project-related business operations
type ProjectUseCase interface {
	// CreateProject creates a project with its creator as first owner
	CreateProject(ctx context.Context, input CreateProjectInput) result.Result[*entity.Project]

	// GetProject retrieves a project with its member list
	GetProject(ctx context.Context, id string) result.Result[*entity.Project]

	// UpdateProject renames a project and replaces its description
	UpdateProject(ctx context.Context, input UpdateProjectInput) result.Result[*entity.Project]

	// DeleteProject removes the project, its memberships and its todos as
	// one atomic unit
	DeleteProject(ctx context.Context, id string) result.Result[result.Void]

	// AddMember adds a user to the project with the given role
	AddMember(ctx context.Context, projectID, userID, role string) result.Result[*entity.Project]

	// RemoveMember removes a user from the project, refusing to remove the
	// last owner
	RemoveMember(ctx context.Context, projectID, userID string) result.Result[*entity.Project]
}
