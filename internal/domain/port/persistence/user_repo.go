package persistence

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// UserRepository defines the persistence operations for users
type UserRepository interface {
	// Save upserts the full user item
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault (immediate mode only)
	Save(ctx context.Context, user *entity.User) result.Result[result.Void]

	// Remove deletes the user with the given ID
	//
	// Possible failures:
	// - ErrUnexpectedStorage: provider fault (immediate mode only)
	Remove(ctx context.Context, id string) result.Result[result.Void]

	// FindByID retrieves a user by ID
	//
	// Possible failures:
	// - ErrUserNotFound: no user with the given ID exists
	// - ErrUnexpectedStorage: provider fault
	FindByID(ctx context.Context, id string) result.Result[*entity.User]
}
