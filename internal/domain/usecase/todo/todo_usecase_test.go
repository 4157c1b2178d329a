package todo

import (
	"context"
	"testing"
	"time"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	usecaseport "github.com/lucasferrari/taskboard/internal/domain/port/usecase"
	"github.com/lucasferrari/taskboard/internal/domain/result"
	coremocks "github.com/lucasferrari/taskboard/mocks/port/core"
	persistencemocks "github.com/lucasferrari/taskboard/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func boardWithMembers(t *testing.T, fixedTime time.Time) *entity.Project {
	t.Helper()
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	board, err := entity.NewProject("proj-1", "Launch", "", "owner-1", mockTime)
	require.NoError(t, err)
	require.NoError(t, board.AddMember("editor-1", entity.RoleEditor, mockTime))
	require.NoError(t, board.AddMember("viewer-1", entity.RoleViewer, mockTime))
	return board
}

func TestCreateTodo(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Editor creates a todo", func(t *testing.T) {
		// Setup mocks
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		// Setup expectations
		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(boardWithMembers(t, fixedTime))).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTodoRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.ProjectID == "proj-1" && todo.Title == "Ship release notes" && todo.Status == entity.TodoStatusOpen
		})).Return(result.OkVoid()).Once()
		mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		// Execute
		res := todoUseCase.CreateTodo(ctx, usecaseport.CreateTodoInput{
			ProjectID: "proj-1",
			Title:     "Ship release notes",
			ActorID:   "editor-1",
		})

		// Assertions
		require.True(t, res.IsOk())
		assert.NotEmpty(t, res.Value().ID)
	})

	t.Run("Non-member cannot create", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(boardWithMembers(t, fixedTime))).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.CreateTodo(ctx, usecaseport.CreateTodoInput{
			ProjectID: "proj-1",
			Title:     "Sneaky todo",
			ActorID:   "stranger",
		})

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrNotProjectMember)
	})

	t.Run("Viewer cannot create", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(boardWithMembers(t, fixedTime))).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.CreateTodo(ctx, usecaseport.CreateTodoInput{
			ProjectID: "proj-1",
			Title:     "Read-only wish",
			ActorID:   "viewer-1",
		})

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrNotProjectMember)
	})

	t.Run("Unknown project", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "ghost").
			Return(result.Err[*entity.Project](errs.ErrProjectNotFound)).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.CreateTodo(ctx, usecaseport.CreateTodoInput{
			ProjectID: "ghost",
			Title:     "Orphan",
			ActorID:   "owner-1",
		})

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrProjectNotFound)
	})
}

func TestCompleteTodo(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	laterTime := fixedTime.Add(2 * time.Hour)

	t.Run("Marks an open todo done", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		item := &entity.Todo{ID: "todo-1", Status: entity.TodoStatusOpen, UpdatedAt: fixedTime}
		mockTodoRepo.EXPECT().FindByID(mock.Anything, "todo-1").
			Return(result.Ok(item)).Once()
		mockTime.EXPECT().Now().Return(laterTime).Once()
		mockTodoRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.IsDone() && todo.UpdatedAt.Equal(laterTime)
		})).Return(result.OkVoid()).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.CompleteTodo(ctx, "todo-1")

		require.True(t, res.IsOk())
		assert.True(t, res.Value().IsDone())
	})

	t.Run("Completing a done todo keeps its timestamp", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		item := &entity.Todo{ID: "todo-1", Status: entity.TodoStatusDone, UpdatedAt: fixedTime}
		mockTodoRepo.EXPECT().FindByID(mock.Anything, "todo-1").
			Return(result.Ok(item)).Once()
		mockTodoRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.IsDone() && todo.UpdatedAt.Equal(fixedTime)
		})).Return(result.OkVoid()).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.CompleteTodo(ctx, "todo-1")

		assert.True(t, res.IsOk())
	})

	t.Run("Unknown todo", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTodoRepo.EXPECT().FindByID(mock.Anything, "ghost").
			Return(result.Err[*entity.Todo](errs.ErrTodoNotFound)).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.CompleteTodo(ctx, "ghost")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrTodoNotFound)
	})
}

func TestListProjectTodos(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown project is a not-found, not an empty list", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "ghost").
			Return(result.Err[*entity.Project](errs.ErrProjectNotFound)).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.ListProjectTodos(ctx, "ghost")

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrProjectNotFound)
	})

	t.Run("Returns the project's todos", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockProjectRepo.EXPECT().FindByID(mock.Anything, "proj-1").
			Return(result.Ok(&entity.Project{ID: "proj-1"})).Once()
		mockTodoRepo.EXPECT().FindByProject(mock.Anything, "proj-1").
			Return(result.Ok([]*entity.Todo{{ID: "todo-1"}})).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.ListProjectTodos(ctx, "proj-1")

		require.True(t, res.IsOk())
		assert.Len(t, res.Value(), 1)
	})
}

func TestUpdateTodo(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Replaces title, description and due date", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		due := fixedTime.Add(48 * time.Hour)
		item := &entity.Todo{ID: "todo-1", Title: "Old", Status: entity.TodoStatusOpen}
		mockTodoRepo.EXPECT().FindByID(mock.Anything, "todo-1").
			Return(result.Ok(item)).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockTodoRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.Title == "New title" && todo.Description == "details" && todo.DueDate.Equal(due)
		})).Return(result.OkVoid()).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.UpdateTodo(ctx, usecaseport.UpdateTodoInput{
			TodoID:      "todo-1",
			Title:       "New title",
			Description: "details",
			DueDate:     &due,
		})

		assert.True(t, res.IsOk())
	})

	t.Run("Empty title is rejected", func(t *testing.T) {
		mockTodoRepo := persistencemocks.NewMockTodoRepository(t)
		mockProjectRepo := persistencemocks.NewMockProjectRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockTodoRepo.EXPECT().FindByID(mock.Anything, "todo-1").
			Return(result.Ok(&entity.Todo{ID: "todo-1", Title: "Old"})).Once()

		todoUseCase := NewTodoUseCase(mockTodoRepo, mockProjectRepo, mockTime, mockLogger)

		res := todoUseCase.UpdateTodo(ctx, usecaseport.UpdateTodoInput{
			TodoID: "todo-1",
			Title:  "  ",
		})

		require.True(t, res.IsErr())
		assert.ErrorIs(t, res.Error(), errs.ErrInvalidTitle)
	})
}
