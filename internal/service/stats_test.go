package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService(t *testing.T) {
	svc := setupServices(t, NewID)
	ctx := context.Background()
	alice := svc.register(t, "alice")
	project := svc.projectWithMembers(t, alice)

	_, err := svc.tasks.CreateTask(ctx, alice.UserID, project.ProjectID, "one", "")
	require.NoError(t, err)

	stats, err := svc.stats.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TaskStats.TotalTasks)
	assert.Equal(t, 1, stats.TaskStats.TodoTasks)

	us, err := svc.stats.GetUserStats(ctx, alice.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, us.OwnedProjects)
	assert.Equal(t, 1, us.CreatedTasks)
}
