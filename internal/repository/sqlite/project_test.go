package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/domain"
)

func TestProjectRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "alice")
	project := createProject(t, db, owner, "backend")
	require.NotNil(t, project.CreatedAt)

	got, err := repo.GetByID(ctx, project.ProjectID)
	require.NoError(t, err)
	assert.Equal(t, "backend", got.Name)
	assert.Equal(t, owner.UserID, got.OwnerID)
	require.Len(t, got.Members, 1)
	assert.Equal(t, owner.UserID, got.Members[0].UserID)

	_, err = repo.GetByID(ctx, newID())
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)

	orphan := &domain.Project{ProjectID: newID(), Name: "orphan", OwnerID: newID()}
	assert.ErrorIs(t, repo.Create(ctx, orphan), domain.ErrUserNotFound)
}

func TestProjectRepository_AddMember(t *testing.T) {
	db := setupDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	project := createProject(t, db, owner, "backend")

	require.NoError(t, repo.AddMember(ctx, project.ProjectID, bob.UserID))
	require.NoError(t, repo.AddMember(ctx, project.ProjectID, bob.UserID), "idempotent")
	require.NoError(t, repo.AddMember(ctx, project.ProjectID, carol.UserID))

	got, err := repo.GetByID(ctx, project.ProjectID)
	require.NoError(t, err)
	require.Len(t, got.Members, 3)
	assert.Equal(t, []string{owner.UserID, bob.UserID, carol.UserID},
		[]string{got.Members[0].UserID, got.Members[1].UserID, got.Members[2].UserID})

	isMember, err := repo.IsMember(ctx, project.ProjectID, bob.UserID)
	require.NoError(t, err)
	assert.True(t, isMember)

	isMember, err = repo.IsMember(ctx, project.ProjectID, newID())
	require.NoError(t, err)
	assert.False(t, isMember)

	err = repo.AddMember(ctx, project.ProjectID, newID())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectRepository_GetByMember(t *testing.T) {
	db := setupDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	first := createProject(t, db, alice, "first")
	second := createProject(t, db, bob, "second")
	require.NoError(t, repo.AddMember(ctx, second.ProjectID, alice.UserID))

	projects, err := repo.GetByMember(ctx, alice.UserID)
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, second.ProjectID, projects[0].ProjectID, "newest first")
	assert.Equal(t, first.ProjectID, projects[1].ProjectID)

	none, err := repo.GetByMember(ctx, newID())
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
