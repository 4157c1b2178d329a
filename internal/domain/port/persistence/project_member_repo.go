package persistence

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// ProjectMemberRepository provides read access to project memberships.
// Membership writes go through ProjectRepository.Save as part of the
// Project aggregate, so this port is read-only.
type ProjectMemberRepository interface {
	// FindByProject retrieves all memberships of a project
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault
	FindByProject(ctx context.Context, projectID string) result.Result[[]entity.ProjectMember]
}
