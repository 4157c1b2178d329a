package user

import (
	"context"

	coreport "github.com/lucasferrari/taskboard/internal/domain/port/core"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// UserUseCase handles user-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecaseport.UserUseCase = (*UserUseCase)(nil)

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetUser retrieves a user by its identifier
func (u *UserUseCase) GetUser(ctx context.Context, id string) result.Result[*entity.User] {
	return u.userRepo.FindByID(ctx, id)
}

// RemoveUser deletes a user account
func (u *UserUseCase) RemoveUser(ctx context.Context, id string) result.Result[result.Void] {
	// Make sure the user exists so callers get a not-found instead of a
	// silent no-op
	found := u.userRepo.FindByID(ctx, id)
	if found.IsErr() {
		return result.MapErr[*entity.User, result.Void](found)
	}

	removed := u.userRepo.Remove(ctx, id)
	if removed.IsErr() {
		u.logger.Error("Failed to remove user", map[string]any{
			"userId": id,
			"error":  removed.Error().Error(),
		})
		return removed
	}

	u.logger.Info("User removed", map[string]any{"userId": id})
	return removed
}
