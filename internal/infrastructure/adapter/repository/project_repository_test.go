package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasferrari/taskboard/internal/domain/entity"
	errs "github.com/lucasferrari/taskboard/internal/domain/error"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/dynamo"
	"github.com/lucasferrari/taskboard/internal/infrastructure/adapter/logger"
	timeprovider "github.com/lucasferrari/taskboard/internal/infrastructure/adapter/time"
)

func newTestProject(t *testing.T, id, name, ownerID string) *entity.Project {
	t.Helper()
	project, err := entity.NewProject(id, name, "", ownerID, timeprovider.NewRealTimeProvider())
	require.NoError(t, err)
	return project
}

func TestProjectRepositorySaveAggregate(t *testing.T) {
	ctx := context.Background()
	fake := newTaskboardFake()
	repo := NewProjectRepository(fake, "projects", "project_members", nil, logger.NewNoopLogger())

	project := newTestProject(t, "project-1", "Launch", "user-1")
	require.NoError(t, project.AddMember("user-2", entity.RoleEditor, timeprovider.NewRealTimeProvider()))

	res := repo.Save(ctx, project)

	require.True(t, res.IsOk())
	assert.Equal(t, 1, fake.ItemCount("projects"))
	assert.Equal(t, 2, fake.ItemCount("project_members"))
	assert.Equal(t, 1, fake.TransactCalls, "project row and member rows in one transaction")
}

func TestProjectRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	fake := newTaskboardFake()
	repo := NewProjectRepository(fake, "projects", "project_members", nil, logger.NewNoopLogger())

	project := newTestProject(t, "project-1", "Launch", "user-1")
	require.True(t, repo.Save(ctx, project).IsOk())

	t.Run("Hydrates the member list", func(t *testing.T) {
		res := repo.FindByID(ctx, "project-1")

		require.True(t, res.IsOk())
		found := res.Value()
		assert.Equal(t, "Launch", found.Name)
		require.Len(t, found.Members, 1)
		assert.Equal(t, entity.RoleOwner, found.Members[0].Role)
	})

	t.Run("Missing project", func(t *testing.T) {
		res := repo.FindByID(ctx, "missing")

		require.True(t, res.IsErr())
		assert.Equal(t, errs.ErrProjectNotFound, res.Error())
	})
}

func TestProjectRepositoryMemberDiff(t *testing.T) {
	ctx := context.Background()
	fake := newTaskboardFake()
	clock := timeprovider.NewRealTimeProvider()
	repo := NewProjectRepository(fake, "projects", "project_members", nil, logger.NewNoopLogger())

	// First save: owner plus one editor.
	project := newTestProject(t, "project-1", "Launch", "user-1")
	require.NoError(t, project.AddMember("user-2", entity.RoleEditor, clock))
	require.True(t, repo.Save(ctx, project).IsOk())
	require.Equal(t, 2, fake.ItemCount("project_members"))

	// Second save: user-2 leaves, user-3 joins.
	require.NoError(t, project.RemoveMember("user-2", clock))
	require.NoError(t, project.AddMember("user-3", entity.RoleViewer, clock))
	require.True(t, repo.Save(ctx, project).IsOk())

	assert.Equal(t, 2, fake.ItemCount("project_members"))

	res := repo.FindByID(ctx, "project-1")
	require.True(t, res.IsOk())
	found := res.Value()
	assert.True(t, found.HasMember("user-1"), "carried-over member must remain")
	assert.True(t, found.HasMember("user-3"), "new member must be present")
	assert.False(t, found.HasMember("user-2"), "removed member's row must be absent")
}

func TestProjectRepositoryBufferedSaveDefersMemberWrites(t *testing.T) {
	ctx := context.Background()
	fake := newTaskboardFake()
	buffer := dynamo.NewTransactionBuffer(0)
	repo := NewProjectRepository(fake, "projects", "project_members", buffer, logger.NewNoopLogger())

	project := newTestProject(t, "project-1", "Launch", "user-1")
	require.NoError(t, project.AddMember("user-2", entity.RoleEditor, timeprovider.NewRealTimeProvider()))

	res := repo.Save(ctx, project)

	require.True(t, res.IsOk())
	// One project put plus two member puts recorded; nothing written yet.
	assert.Equal(t, 3, buffer.OperationCount())
	assert.Equal(t, 0, fake.TransactCalls)
	assert.Equal(t, 0, fake.ItemCount("projects"))
	assert.Equal(t, 0, fake.ItemCount("project_members"))
}

func TestProjectRepositoryRemove(t *testing.T) {
	ctx := context.Background()
	fake := newTaskboardFake()
	repo := NewProjectRepository(fake, "projects", "project_members", nil, logger.NewNoopLogger())

	project := newTestProject(t, "project-1", "Launch", "user-1")
	require.NoError(t, project.AddMember("user-2", entity.RoleEditor, timeprovider.NewRealTimeProvider()))
	require.True(t, repo.Save(ctx, project).IsOk())

	res := repo.Remove(ctx, "project-1")

	require.True(t, res.IsOk())
	assert.Equal(t, 0, fake.ItemCount("projects"))
	assert.Equal(t, 0, fake.ItemCount("project_members"), "membership rows must be deleted with the project")
}
