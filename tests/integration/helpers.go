package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/aidar/task-tracker/internal/app"
	"github.com/aidar/task-tracker/internal/config"
	"github.com/aidar/task-tracker/internal/domain"
)

const (
	dbName     = "tracker_test"
	dbUser     = "test_user"
	dbPassword = "test_password"
)

// TestEnvironment содержит поднятый PostgreSQL, запущенное приложение и пул для прямых запросов
type TestEnvironment struct {
	PostgresContainer *postgres.PostgresContainer
	App               *app.App
	BaseURL           string
	DB                *pgxpool.Pool
	http              *http.Client
}

// SetupTestEnvironment поднимает PostgreSQL в контейнере, применяет миграции и запускает API
func SetupTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")

	env := &TestEnvironment{
		PostgresContainer: pgContainer,
		http:              &http.Client{Timeout: 10 * time.Second},
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	env.DB, err = pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	applyMigrations(t, env.DB)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	serverPort := freePort(t)
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: serverPort},
		Database: config.DatabaseConfig{
			Driver:   config.DriverPostgres,
			Host:     host,
			Port:     port.Port(),
			User:     dbUser,
			Password: dbPassword,
			Name:     dbName,
			SSLMode:  "disable",
			MaxConns: 10,
			MinConns: 1,
		},
		JWT: config.JWTConfig{
			Secret:          "test-jwt-secret-key-for-integration-tests",
			ExpirationHours: 24,
		},
		Log: config.LogConfig{Level: "warn", Format: "text"},
	}

	env.App, err = app.New(cfg)
	require.NoError(t, err, "Failed to create application")
	require.NoError(t, env.App.Initialize(ctx), "Failed to initialize application")

	go func() {
		if err := env.App.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			t.Logf("Server error: %v", err)
		}
	}()

	env.BaseURL = fmt.Sprintf("http://127.0.0.1:%s", serverPort)
	return env
}

// Cleanup останавливает приложение, закрывает пул и удаляет контейнер
func (te *TestEnvironment) Cleanup(t *testing.T) {
	t.Helper()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if te.App != nil {
		_ = te.App.Shutdown(shutdownCtx)
	}
	if te.DB != nil {
		te.DB.Close()
	}
	if te.PostgresContainer != nil {
		_ = testcontainers.TerminateContainer(te.PostgresContainer)
	}
}

// applyMigrations выполняет up-миграцию из каталога migrations/
func applyMigrations(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	migrationSQL, err := os.ReadFile(filepath.Join(projectRoot(t), "migrations", "000001_init_schema.up.sql"))
	require.NoError(t, err, "Failed to read migration file")

	_, err = pool.Exec(context.Background(), string(migrationSQL))
	require.NoError(t, err, "Failed to apply migration")
}

// projectRoot ищет каталог с go.mod, поднимаясь вверх от текущего
func projectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("Could not find project root (go.mod not found)")
		}
		dir = parent
	}
}

// freePort возвращает свободный TCP порт на localhost
func freePort(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	return strconv.Itoa(l.Addr().(*net.TCPAddr).Port)
}

// MakeRequest выполняет HTTP запрос к API с опциональным Bearer токеном
func (te *TestEnvironment) MakeRequest(t *testing.T, method, path string, body io.Reader, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, te.BaseURL+path, body)
	require.NoError(t, err, "Failed to create request")

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := te.http.Do(req)
	require.NoError(t, err, "Failed to make request")
	return resp
}

// WaitForHealthCheck ждет, пока /health начнет отвечать 200
func (te *TestEnvironment) WaitForHealthCheck(t *testing.T) {
	t.Helper()

	require.Eventually(t, func() bool {
		resp, err := te.http.Get(te.BaseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 100*time.Millisecond, "Application did not become healthy in time")
}

func encodeBody(t *testing.T, in any) io.Reader {
	t.Helper()
	if in == nil {
		return nil
	}
	buf, err := json.Marshal(in)
	require.NoError(t, err)
	return bytes.NewReader(buf)
}

// DoJSON отправляет JSON запрос и при успехе декодирует ответ в out (если out != nil).
// Возвращает HTTP статус ответа.
func (te *TestEnvironment) DoJSON(t *testing.T, method, path string, in any, token string, out any) int {
	t.Helper()

	resp := te.MakeRequest(t, method, path, encodeBody(t, in), token)
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// ErrorCode отправляет запрос, ожидая ошибку, и возвращает статус и код ошибки из тела
func (te *TestEnvironment) ErrorCode(t *testing.T, method, path string, in any, token string) (int, string) {
	t.Helper()

	resp := te.MakeRequest(t, method, path, encodeBody(t, in), token)
	defer resp.Body.Close()

	var errResp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&errResp)
	return resp.StatusCode, errResp.Error.Code
}

// SignUp регистрирует пользователя и возвращает его вместе с токеном
func (te *TestEnvironment) SignUp(t *testing.T, username string) (*domain.User, string) {
	t.Helper()

	var created struct {
		User *domain.User `json:"user"`
	}
	status := te.DoJSON(t, http.MethodPost, "/users/create",
		map[string]string{"username": username, "email": username + "@example.com"}, "", &created)
	require.Equal(t, http.StatusCreated, status, "User creation should succeed")

	var login struct {
		Token string `json:"token"`
	}
	status = te.DoJSON(t, http.MethodPost, "/auth/login", map[string]string{"user_id": created.User.UserID}, "", &login)
	require.Equal(t, http.StatusOK, status, "Login should succeed")
	require.NotEmpty(t, login.Token)

	return created.User, login.Token
}
