package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	coremocks "github.com/lucasferrari/taskboard/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation normalizes email", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime)

		user, err := NewUser("user-1", " Ada@Example.COM ", "Ada", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Invalid email is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		for _, email := range []string{"", "ada", "ada@", "@example.com", "ada@example"} {
			user, err := NewUser("user-1", email, "Ada", mockTime)
			assert.Nil(t, user, "email %q should be rejected", email)
			assert.Equal(t, errs.ErrInvalidEmail, err)
		}
	})

	t.Run("Empty name is rejected", func(t *testing.T) {
		mockTime := coremocks.NewMockTimeProvider(t)

		user, err := NewUser("user-1", "ada@example.com", "  ", mockTime)

		assert.Nil(t, user)
		assert.Equal(t, errs.ErrInvalidName, err)
	})
}

func TestUserRename(t *testing.T) {
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	renamedAt := createdAt.Add(time.Hour)

	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(createdAt).Once()

	user, err := NewUser("user-1", "ada@example.com", "Ada", mockTime)
	require.NoError(t, err)

	mockTime.EXPECT().Now().Return(renamedAt).Once()
	require.NoError(t, user.Rename("Ada Lovelace", mockTime))
	assert.Equal(t, "Ada Lovelace", user.Name)
	assert.Equal(t, renamedAt, user.UpdatedAt)

	assert.Equal(t, errs.ErrInvalidName, user.Rename(" ", mockTime))
}
