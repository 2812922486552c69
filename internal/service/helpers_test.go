package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository/sqlite"
)

// testServices wires every service to a fresh SQLite database.
type testServices struct {
	users    *UserService
	projects *ProjectService
	tasks    *TaskService
	comments *CommentService
	auth     *AuthService
	stats    *StatsService
}

// sequentialIDs returns an IDGenerator yielding id-1, id-2, ... for readable assertions.
func sequentialIDs() IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func setupServices(t *testing.T, newID IDGenerator) *testServices {
	t.Helper()

	db, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "tracker.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	userRepo := sqlite.NewUserRepository(db)
	projectRepo := sqlite.NewProjectRepository(db)
	taskRepo := sqlite.NewTaskRepository(db)
	commentRepo := sqlite.NewCommentRepository(db)

	return &testServices{
		users:    NewUserService(userRepo, projectRepo, taskRepo, newID),
		projects: NewProjectService(projectRepo, userRepo, taskRepo, newID),
		tasks:    NewTaskService(taskRepo, projectRepo, userRepo, commentRepo, NewAssigneeSelectorWithSeed(1), newID),
		comments: NewCommentService(commentRepo, taskRepo, projectRepo, userRepo, newID),
		auth:     NewAuthService(userRepo, "test-secret", time.Hour),
		stats:    NewStatsService(sqlite.NewStatsRepository(db)),
	}
}

func (s *testServices) register(t *testing.T, username string) *domain.User {
	t.Helper()
	user, err := s.users.Register(context.Background(), username, username+"@example.com")
	require.NoError(t, err)
	return user
}

// projectWithMembers creates a project owned by owner and adds members to it.
func (s *testServices) projectWithMembers(t *testing.T, owner *domain.User, members ...*domain.User) *domain.Project {
	t.Helper()
	ctx := context.Background()

	project, err := s.projects.CreateProject(ctx, owner.UserID, "project")
	require.NoError(t, err)

	for _, m := range members {
		project, err = s.projects.AddMember(ctx, owner.UserID, project.ProjectID, m.UserID)
		require.NoError(t, err)
	}
	return project
}
