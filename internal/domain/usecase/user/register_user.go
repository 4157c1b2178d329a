package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	"github.com/lucasferrari/taskboard/internal/domain/result"
)

// RegisterUser creates a new user account with a normalized email address
func (u *UserUseCase) RegisterUser(ctx context.Context, email, name string) result.Result[*entity.User] {
	// Build the user entity; validation happens in the constructor
	account, err := entity.NewUser(uuid.NewString(), email, name, u.timeProvider)
	if err != nil {
		return result.Err[*entity.User](err)
	}

	saved := u.userRepo.Save(ctx, account)
	if saved.IsErr() {
		u.logger.Error("Failed to register user", map[string]any{
			"userId": account.ID,
			"error":  saved.Error().Error(),
		})
		return result.MapErr[result.Void, *entity.User](saved)
	}

	u.logger.Info("User registered", map[string]any{
		"userId": account.ID,
		"email":  account.Email,
	})
	return result.Ok(account)
}
