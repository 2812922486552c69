package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

func TestTaskRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "alice")
	project := createProject(t, db, owner, "backend")
	task := createTask(t, db, project, owner, "write tests")

	got, err := repo.GetByID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, "write tests", got.Title)
	assert.Equal(t, domain.StatusTodo, got.Status)
	assert.Equal(t, project.ProjectID, got.ProjectID)
	assert.Equal(t, owner.UserID, got.CreatorID)
	assert.Nil(t, got.AssigneeID)
	assert.NotNil(t, got.Comments)
	require.NotNil(t, got.CreatedAt)
	require.NotNil(t, got.UpdatedAt)

	_, err = repo.GetByID(ctx, newID())
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	orphan := &domain.Task{TaskID: newID(), ProjectID: newID(), CreatorID: owner.UserID, Title: "x", Status: domain.StatusTodo}
	assert.ErrorIs(t, repo.Create(ctx, orphan), domain.ErrProjectNotFound)
}

func TestTaskRepository_Updates(t *testing.T) {
	db := setupDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	project := createProject(t, db, owner, "backend")
	task := createTask(t, db, project, owner, "ship it")

	require.NoError(t, repo.UpdateStatus(ctx, task.TaskID, domain.StatusInProgress))
	require.NoError(t, repo.UpdateAssignee(ctx, task.TaskID, &bob.UserID))

	got, err := repo.GetByID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, got.Status)
	require.NotNil(t, got.AssigneeID)
	assert.Equal(t, bob.UserID, *got.AssigneeID)

	require.NoError(t, repo.UpdateAssignee(ctx, task.TaskID, nil))
	got, err = repo.GetByID(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Nil(t, got.AssigneeID)

	missing := newID()
	assert.ErrorIs(t, repo.UpdateStatus(ctx, missing, domain.StatusDone), domain.ErrTaskNotFound)
	assert.ErrorIs(t, repo.UpdateAssignee(ctx, missing, nil), domain.ErrTaskNotFound)

	ghost := newID()
	assert.ErrorIs(t, repo.UpdateAssignee(ctx, task.TaskID, &ghost), domain.ErrUserNotFound)
}

func TestTaskRepository_Lists(t *testing.T) {
	db := setupDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()

	owner := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	project := createProject(t, db, owner, "backend")
	first := createTask(t, db, project, owner, "first")
	second := createTask(t, db, project, owner, "second")
	third := createTask(t, db, project, owner, "third")

	require.NoError(t, repo.UpdateStatus(ctx, second.TaskID, domain.StatusDone))
	require.NoError(t, repo.UpdateAssignee(ctx, first.TaskID, &bob.UserID))
	require.NoError(t, repo.UpdateAssignee(ctx, third.TaskID, &bob.UserID))

	all, err := repo.GetByProject(ctx, project.ProjectID, repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{first.TaskID, second.TaskID, third.TaskID},
		[]string{all[0].TaskID, all[1].TaskID, all[2].TaskID})

	done := domain.StatusDone
	filtered, err := repo.GetByProject(ctx, project.ProjectID, repository.TaskFilter{Status: &done})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.TaskID, filtered[0].TaskID)

	assigned, err := repo.GetByAssignee(ctx, bob.UserID)
	require.NoError(t, err)
	assert.Len(t, assigned, 2)
	for _, task := range assigned {
		require.NotNil(t, task.AssigneeID)
		assert.Equal(t, bob.UserID, *task.AssigneeID)
	}

	none, err := repo.GetByAssignee(ctx, owner.UserID)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
