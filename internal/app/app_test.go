package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/task-tracker/internal/client"
	"github.com/aidar/task-tracker/internal/config"
	"github.com/aidar/task-tracker/internal/domain"
)

func setupApp(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: "0"},
		Database: config.DatabaseConfig{
			Driver:     config.DriverSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "app.db"),
		},
		JWT: config.JWTConfig{Secret: "app-test-secret", ExpirationHours: 1},
		Log: config.LogConfig{Level: "error", Format: "text"},
	}

	application, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, application.Initialize(context.Background()))

	srv := httptest.NewServer(application.Handler())
	t.Cleanup(func() {
		srv.Close()
		_ = application.Shutdown(context.Background())
	})
	return srv
}

func newClient(t *testing.T, baseURL string) *client.Client {
	t.Helper()
	cl, err := client.New(baseURL)
	require.NoError(t, err)
	return cl
}

// signUp registers a user and returns a client logged in as that user.
func signUp(t *testing.T, baseURL, username string) (*client.Client, *domain.User) {
	t.Helper()
	ctx := context.Background()

	cl := newClient(t, baseURL)
	user, err := cl.CreateUser(ctx, username, username+"@example.com")
	require.NoError(t, err)
	_, err = cl.Login(ctx, user.UserID)
	require.NoError(t, err)
	return cl, user
}

func TestNew_RejectsUnknownDriver(t *testing.T) {
	_, err := New(&config.Config{
		Database: config.DatabaseConfig{Driver: "oracle"},
		JWT:      config.JWTConfig{Secret: "s", ExpirationHours: 1},
	})
	assert.Error(t, err)
}

func TestApp_Health(t *testing.T) {
	srv := setupApp(t)
	require.NoError(t, newClient(t, srv.URL).Health(context.Background()))
}

func TestApp_RequiresToken(t *testing.T) {
	srv := setupApp(t)

	resp, err := http.Get(srv.URL + "/stats")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, err = newClient(t, srv.URL).Stats(context.Background())
	assert.True(t, client.IsCode(err, domain.CodeUnauthorized))
}

func TestApp_CompleteWorkflow(t *testing.T) {
	srv := setupApp(t)
	ctx := context.Background()

	alice, aliceUser := signUp(t, srv.URL, "alice")
	bob, bobUser := signUp(t, srv.URL, "bob")
	eve, eveUser := signUp(t, srv.URL, "eve")

	t.Run("duplicate email", func(t *testing.T) {
		_, err := newClient(t, srv.URL).CreateUser(ctx, "alice2", "ALICE@example.com")
		assert.True(t, client.IsCode(err, domain.CodeUserExists))
	})

	t.Run("invalid email", func(t *testing.T) {
		_, err := newClient(t, srv.URL).CreateUser(ctx, "x", "not-an-email")
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	})

	project, err := alice.CreateProject(ctx, "Tracker")
	require.NoError(t, err)
	assert.Equal(t, aliceUser.UserID, project.OwnerID)
	require.Len(t, project.Members, 1)

	t.Run("only owner adds members", func(t *testing.T) {
		_, err := bob.AddMember(ctx, project.ProjectID, bobUser.UserID)
		assert.True(t, client.IsCode(err, domain.CodeForbidden))
	})

	project, err = alice.AddMember(ctx, project.ProjectID, bobUser.UserID)
	require.NoError(t, err)
	assert.Len(t, project.Members, 2)

	project, err = alice.AddMember(ctx, project.ProjectID, bobUser.UserID)
	require.NoError(t, err)
	assert.Len(t, project.Members, 2, "adding twice is a no-op")

	task, err := bob.CreateTask(ctx, project.ProjectID, "Write docs", "README and API")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusTodo, task.Status)

	t.Run("non-member is rejected", func(t *testing.T) {
		_, err := eve.CreateTask(ctx, project.ProjectID, "sneaky", "")
		assert.True(t, client.IsCode(err, domain.CodeNotMember))

		_, err = eve.GetProject(ctx, project.ProjectID)
		assert.True(t, client.IsCode(err, domain.CodeNotMember))

		_, err = alice.Assign(ctx, task.TaskID, eveUser.UserID)
		assert.True(t, client.IsCode(err, domain.CodeNotMember))
	})

	t.Run("blank comment from non-member", func(t *testing.T) {
		_, err := eve.AddComment(ctx, task.TaskID, "  ")
		assert.True(t, client.IsCode(err, domain.CodeNotMember))
	})

	t.Run("title longer than column", func(t *testing.T) {
		_, err := bob.CreateTask(ctx, project.ProjectID, strings.Repeat("x", domain.MaxTitleLength+1), "")
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.Status)
		assert.Equal(t, string(domain.CodeValidation), apiErr.Code)
	})

	task, err = alice.Assign(ctx, task.TaskID, bobUser.UserID)
	require.NoError(t, err)
	require.NotNil(t, task.AssigneeID)
	assert.Equal(t, bobUser.UserID, *task.AssigneeID)

	task, err = bob.ChangeStatus(ctx, task.TaskID, domain.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInProgress, task.Status)

	t.Run("invalid status", func(t *testing.T) {
		_, err := bob.ChangeStatus(ctx, task.TaskID, domain.TaskStatus("BLOCKED"))
		assert.True(t, client.IsCode(err, domain.CodeInvalidStatus))
	})

	comment, err := alice.AddComment(ctx, task.TaskID, "Looks good")
	require.NoError(t, err)

	t.Run("only author edits", func(t *testing.T) {
		_, err := bob.EditComment(ctx, comment.CommentID, "hijacked")
		assert.True(t, client.IsCode(err, domain.CodeForbidden))
	})

	edited, err := alice.EditComment(ctx, comment.CommentID, "Looks great")
	require.NoError(t, err)
	assert.True(t, edited.IsEdited())

	full, err := bob.GetTask(ctx, task.TaskID)
	require.NoError(t, err)
	require.Len(t, full.Comments, 1)
	assert.Equal(t, "Looks great", full.Comments[0].Content)

	inProgress, err := alice.ListProjectTasks(ctx, project.ProjectID, "IN_PROGRESS")
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)

	done, err := alice.ListProjectTasks(ctx, project.ProjectID, "DONE")
	require.NoError(t, err)
	assert.Empty(t, done)

	bobTasks, err := bob.GetUserTasks(ctx, "")
	require.NoError(t, err)
	require.Len(t, bobTasks, 1)
	assert.Equal(t, task.TaskID, bobTasks[0].TaskID)

	bobProjects, err := bob.GetUserProjects(ctx, bobUser.UserID)
	require.NoError(t, err)
	require.Len(t, bobProjects, 1)

	me, err := eve.GetUser(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, eveUser.UserID, me.UserID)

	_, assignedTo, err := alice.AutoAssign(ctx, task.TaskID)
	require.NoError(t, err)
	assert.Equal(t, aliceUser.UserID, assignedTo, "bob is excluded as current assignee")

	unassigned, err := alice.Assign(ctx, task.TaskID, "")
	require.NoError(t, err)
	assert.Nil(t, unassigned.AssigneeID)

	stats, err := alice.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TaskStats.TotalUsers)
	assert.Equal(t, 1, stats.TaskStats.TotalTasks)
	assert.Equal(t, 1, stats.TaskStats.TotalComments)

	aliceStats, err := alice.UserStats(ctx, aliceUser.UserID)
	require.NoError(t, err)
	assert.Equal(t, 1, aliceStats.OwnedProjects)
	assert.Equal(t, 1, aliceStats.Comments)

	_, err = alice.GetTask(ctx, "missing")
	assert.True(t, client.IsCode(err, domain.CodeNotFound))
}
