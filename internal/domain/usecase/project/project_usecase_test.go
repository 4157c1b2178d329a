package project

import (
	"context"
	"testing"
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	"github.com/lucasferrari/taskboard/internal/domain/port/persistence"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/domain/result"
	coremocks "github.com/lucasferrari/taskboard/mocks/port/core"
	persistencemocks "github.com/lucasferrari/taskboard/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passThrough makes the runner mock execute the callback against the given
// unit of work, mimicking a successful commit path.
func passThrough(runner *persistencemocks.MockUnitOfWorkRunner, uow *persistence.UnitOfWork) {
	runner.EXPECT().Run(mock.Anything, mock.Anything).RunAndReturn(
		func(_ context.Context, fn func(*persistence.UnitOfWork) result.Result[result.Void]) result.Result[result.Void] {
			return fn(uow)
		}).Once()
}

func TestCreateProject(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful creation", func(t *testing.T) {
		// Setup mocks
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockUserRepo.EXPECT().FindByID(mock.Anything, "owner-1").
			Return(result.Ok(&entity.User{ID: "owner-1"})).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockProjectRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *entity.Project) bool {
			role, ok := p.MemberRole("owner-1")
			return p.Name == "Launch" && ok && role == entity.RoleOwner
		})).Return(result.OkVoid()).Once()
		passThrough(mockRunner, &persistence.UnitOfWork{Projects: mockProjectRepo})
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		// Execute
		res := projectUseCase.CreateProject(ctx, usecaseport.CreateProjectInput{
			Name:        "Launch",
			Description: "Q2 launch checklist",
			OwnerID:     "owner-1",
		})

		// Assertions
		require.True(t, res.IsOk())
		assert.Equal(t, 1, res.Value().OwnerCount())
	})

	t.Run("Unknown owner", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().FindByID(mock.Anything, "ghost").
			Return(result.Err[*entity.User](errs.ErrUserNotFound)).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.CreateProject(ctx, usecaseport.CreateProjectInput{
			Name: "Launch", OwnerID: "ghost",
		})

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrUserNotFound)
	})

	t.Run("Invalid name skips persistence", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().FindByID(mock.Anything, "owner-1").
			Return(result.Ok(&entity.User{ID: "owner-1"})).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.CreateProject(ctx, usecaseport.CreateProjectInput{
			Name: "   ", OwnerID: "owner-1",
		})

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrInvalidProjectName)
	})
}

func TestMembership(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	newBoard := func(t *testing.T) *entity.Project {
		t.Helper()
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		board, err := entity.NewProject("proj-1", "Launch", "", "owner-1", mockTime)
		require.NoError(t, err)
		return board
	}

	t.Run("Add member with valid role", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().FindByID(mock.Anything, "user-2").
			Return(result.Ok(&entity.User{ID: "user-2"})).Once()
		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(newBoard(t))).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockProjectRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *entity.Project) bool {
			role, ok := p.MemberRole("user-2")
			return ok && role == entity.RoleEditor
		})).Return(result.OkVoid()).Once()
		passThrough(mockRunner, &persistence.UnitOfWork{Projects: mockProjectRepo})
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.AddMember(ctx, "proj-1", "user-2", "editor")

		assert.True(t, res.IsOk())
	})

	t.Run("Invalid role is rejected before any lookup", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.AddMember(ctx, "proj-1", "user-2", "superadmin")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrInvalidRole)
	})

	t.Run("Duplicate member", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockUserRepo.EXPECT().FindByID(mock.Anything, "owner-1").
			Return(result.Ok(&entity.User{ID: "owner-1"})).Once()
		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(newBoard(t))).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.AddMember(ctx, "proj-1", "owner-1", "viewer")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrDuplicateMember)
	})

	t.Run("Removing the last owner is refused", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(newBoard(t))).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.RemoveMember(ctx, "proj-1", "owner-1")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrLastOwner)
	})
}

func TestDeleteProject(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Deletes the project with its todos", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		board := &entity.Project{ID: "proj-1", Name: "Launch", CreatedAt: fixedTime}
		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(board)).Once()
		mockTodoRepo.EXPECT().FindByProject(mock.Anything, "proj-1").
			Return(result.Ok([]*entity.Todo{{ID: "todo-1"}, {ID: "todo-2"}})).Once()
		mockTodoRepo.EXPECT().Remove(mock.Anything, "todo-1").Return(result.OkVoid()).Once()
		mockTodoRepo.EXPECT().Remove(mock.Anything, "todo-2").Return(result.OkVoid()).Once()
		mockProjectRepo.EXPECT().Remove(mock.Anything, "proj-1").Return(result.OkVoid()).Once()
		passThrough(mockRunner, &persistence.UnitOfWork{Todos: mockTodoRepo, Projects: mockProjectRepo})
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.DeleteProject(ctx, "proj-1")

		assert.True(t, res.IsOk())
	})

	t.Run("Commit failure is propagated", func(t *testing.T) {
		mockRunner := persistencemocks.NewMockUnitOfWorkRunner(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockUserRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(&entity.Project{ID: "proj-1"})).Once()
		storageErr := errs.NewStorageError("transact commit", "", assert.AnError)
		mockRunner.EXPECT().Run(mock.Anything, mock.Anything).
			Return(result.Err[result.Void](storageErr)).Once()
		mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Once()

		projectUseCase := NewProjectUseCase(mockRunner, mockProjectRepo, mockUserRepo, mockTime, mockLogger)

		res := projectUseCase.DeleteProject(ctx, "proj-1")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrUnexpectedStorage)
	})
}
