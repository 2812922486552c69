package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/domain"
)

func TestUserRepository(t *testing.T) {
	db := setupDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &domain.User{UserID: newID(), Username: "alice", Email: "alice@example.com"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotNil(t, user.CreatedAt)

	got, err := repo.GetByID(ctx, user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, got.UserID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	require.NotNil(t, got.CreatedAt)
	assert.WithinDuration(t, *user.CreatedAt, *got.CreatedAt, time.Millisecond)

	dup := &domain.User{UserID: newID(), Username: "alice2", Email: "alice@example.com"}
	assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrUserExists)

	_, err = repo.GetByID(ctx, newID())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
