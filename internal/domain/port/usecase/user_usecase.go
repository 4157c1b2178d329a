package usecase

import (
	"context"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// UserUseCase defines the user-related business operations
type UserUseCase interface {
	// RegisterUser creates a user account with a normalized email address
	RegisterUser(ctx context.Context, email, name string) result.Result[*entity.User]

	// GetUser retrieves a user by its identifier
	GetUser(ctx context.Context, id string) result.Result[*entity.User]

	// RemoveUser deletes a user account
	RemoveUser(ctx context.Context, id string) result.Result[result.Void]
}
