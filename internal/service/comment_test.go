package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/domain"
)

func TestCommentService(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	bob := svc.register(t, "bob")
	eve := svc.register(t, "eve")
	project := svc.projectWithMembers(t, alice, bob)

	task, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, "discuss", "")
	require.NoError(t, err)

	comment, err := svc.comments.AddComment(ctx, bob.UserID, task.TaskID, " needs tests ")
	require.NoError(t, err)
	assert.NotEmpty(t, comment.CommentID)
	assert.Equal(t, "needs tests", comment.Content)
	assert.Equal(t, bob.UserID, comment.AuthorID)
	assert.False(t, comment.IsEdited())

	t.Run("non-member cannot comment", func(t *testing.T) {
		_, err := svc.comments.AddComment(ctx, eve.UserID, task.TaskID, "hi")
		assert.ErrorIs(t, err, domain.ErrNotMember)
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.comments.AddComment(ctx, bob.UserID, task.TaskID, "  ")
		assert.ErrorIs(t, err, domain.ErrEmptyContent)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.comments.AddComment(ctx, bob.UserID, "missing", "hi")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("only author edits", func(t *testing.T) {
		_, err := svc.comments.EditComment(ctx, alice.UserID, comment.CommentID, "rewritten")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("author edits", func(t *testing.T) {
		edited, err := svc.comments.EditComment(ctx, bob.UserID, comment.CommentID, "needs more tests")
		require.NoError(t, err)
		assert.Equal(t, "needs more tests", edited.Content)
		assert.True(t, edited.IsEdited())

		stored, err := svc.tasks.GetTask(ctx, alice.UserID, task.TaskID)
		require.NoError(t, err)
		require.Len(t, stored.Comments, 1)
		assert.Equal(t, "needs more tests", stored.Comments[0].Content)
		assert.NotNil(t, stored.Comments[0].UpdatedAt)
	})

	t.Run("missing comment", func(t *testing.T) {
		_, err := svc.comments.EditComment(ctx, bob.UserID, "missing", "x")
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}
