package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/domain"
)

func TestTaskService_CreateTask(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	eve := svc.register(t, "eve")
	project := svc.projectWithMembers(t, alice)

	task, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, " Fix bug ", "  stack trace attached ")
	require.NoError(t, err)
	assert.NotEmpty(t, task.TaskID)
	assert.Equal(t, "Fix bug", task.Title)
	assert.Equal(t, "stack trace attached", task.Description)
	assert.Equal(t, domain.StatusTodo, task.Status)
	assert.Equal(t, alice.UserID, task.CreatorID)
	assert.Nil(t, task.AssigneeID)

	_, err = svc.tasks.CreateTask(ctx, eve.UserID, project.ProjectID, "intrusion", "")
	assert.ErrorIs(t, err, domain.ErrNotMember)

	_, err = svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, " ", "")
	assert.ErrorIs(t, err, domain.ErrEmptyTitle)

	_, err = svc.tasks.CreateTask(ctx, alice.UserID, "missing", "x", "")
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestTaskService_ChangeStatus(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	bob := svc.register(t, "bob")
	eve := svc.register(t, "eve")
	project := svc.projectWithMembers(t, alice, bob)

	task, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, "ship", "")
	require.NoError(t, err)

	updated, err := svc.tasks.ChangeStatus(ctx, bob.UserID, task.TaskID, "in_progress")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	same, err := svc.tasks.ChangeStatus(ctx, bob.UserID, task.TaskID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, same.Status)

	_, err = svc.tasks.ChangeStatus(ctx, bob.UserID, task.TaskID, "paused")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = svc.tasks.ChangeStatus(ctx, eve.UserID, task.TaskID, "DONE")
	assert.ErrorIs(t, err, domain.ErrNotMember)

	_, err = svc.tasks.ChangeStatus(ctx, bob.UserID, "missing", "DONE")
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)

	stored, err := svc.tasks.GetTask(ctx, alice.UserID, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, stored.Status)
}

func TestTaskService_AssignTo(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	bob := svc.register(t, "bob")
	eve := svc.register(t, "eve")
	project := svc.projectWithMembers(t, alice, bob)

	task, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, "review", "")
	require.NoError(t, err)

	assigned, err := svc.tasks.AssignTo(ctx, alice.UserID, task.TaskID, bob.UserID)
	require.NoError(t, err)
	assert.True(t, assigned.IsAssignedTo(bob.UserID))

	_, err = svc.tasks.AssignTo(ctx, alice.UserID, task.TaskID, eve.UserID)
	assert.ErrorIs(t, err, domain.ErrNotMember, "assignee must be a member")

	_, err = svc.tasks.AssignTo(ctx, eve.UserID, task.TaskID, bob.UserID)
	assert.ErrorIs(t, err, domain.ErrNotMember, "caller must be a member")

	_, err = svc.tasks.AssignTo(ctx, alice.UserID, task.TaskID, "missing")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	unassigned, err := svc.tasks.Unassign(ctx, alice.UserID, task.TaskID)
	require.NoError(t, err)
	assert.Nil(t, unassigned.AssigneeID)
}

func TestTaskService_AutoAssign(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	bob := svc.register(t, "bob")
	project := svc.projectWithMembers(t, alice, bob)

	task, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, "triage", "")
	require.NoError(t, err)

	updated, chosen, err := svc.tasks.AutoAssign(ctx, alice.UserID, task.TaskID)
	require.NoError(t, err)
	assert.Contains(t, []string{alice.UserID, bob.UserID}, chosen)
	assert.True(t, updated.IsAssignedTo(chosen))

	again, next, err := svc.tasks.AutoAssign(ctx, alice.UserID, task.TaskID)
	require.NoError(t, err)
	assert.NotEqual(t, chosen, next, "current assignee is excluded")
	assert.True(t, again.IsAssignedTo(next))

	solo := svc.projectWithMembers(t, alice)
	soloTask, err := svc.tasks.CreateTask(ctx, alice.UserID, solo.ProjectID, "alone", "")
	require.NoError(t, err)
	_, err = svc.tasks.AssignTo(ctx, alice.UserID, soloTask.TaskID, alice.UserID)
	require.NoError(t, err)

	_, _, err = svc.tasks.AutoAssign(ctx, alice.UserID, soloTask.TaskID)
	assert.ErrorIs(t, err, domain.ErrNoCandidate)
}

func TestTaskService_GetTaskIncludesComments(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	eve := svc.register(t, "eve")
	project := svc.projectWithMembers(t, alice)

	task, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, "discuss", "")
	require.NoError(t, err)

	empty, err := svc.tasks.GetTask(ctx, alice.UserID, task.TaskID)
	require.NoError(t, err)
	assert.NotNil(t, empty.Comments)
	assert.Empty(t, empty.Comments)

	_, err = svc.comments.AddComment(ctx, alice.UserID, task.TaskID, "first")
	require.NoError(t, err)
	_, err = svc.comments.AddComment(ctx, alice.UserID, task.TaskID, "second")
	require.NoError(t, err)

	got, err := svc.tasks.GetTask(ctx, alice.UserID, task.TaskID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 2)
	assert.Equal(t, "first", got.Comments[0].Content)
	assert.Equal(t, "second", got.Comments[1].Content)

	_, err = svc.tasks.GetTask(ctx, eve.UserID, task.TaskID)
	assert.ErrorIs(t, err, domain.ErrNotMember)
}
