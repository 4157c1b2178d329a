package persistence

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// ProjectRepository defines the persistence operations for the Project
// aggregate, including its membership child collection.
type ProjectRepository interface {
	// Save persists the project row and reconciles the membership table
	// with the aggregate's current member list: memberships present in
	// storage but absent from the aggregate are deleted, all current
	// memberships are upserted. The existing-member read happens at call
	// time, before any write is recorded.
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault on the member read, or on the
	//   write in immediate mode
	Save(ctx context.Context, project *entity.Project) result.Result[result.Void]

	// Remove deletes the project row together with all of its membership
	// rows. The membership read happens at call time.
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault
	Remove(ctx context.Context, id string) result.Result[result.Void]

	// FindByID retrieves a project by ID with its member list hydrated
	//
	// Possible failures:
	// - ErrProjectNotFound: no project with the given ID exists
	// - ErrUnexpectedStorage: provider fault
	FindByID(ctx context.Context, id string) result.Result[*entity.Project]
}
