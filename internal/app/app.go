package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/task-tracker/internal/config"
	"github.com/aidar/task-tracker/internal/handler"
	"github.com/aidar/task-tracker/internal/logging"
	"github.com/aidar/task-tracker/internal/middleware"
	"github.com/aidar/task-tracker/internal/repository"
	"github.com/aidar/task-tracker/internal/repository/postgres"
	"github.com/aidar/task-tracker/internal/repository/sqlite"
	"github.com/aidar/task-tracker/internal/service"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config  *config.Config
	pool    *pgxpool.Pool // заполнен при DB_DRIVER=postgres
	sqlite  *sql.DB       // заполнен при DB_DRIVER=sqlite
	repos   Repositories
	handler http.Handler
	server  *http.Server
	logger  *slog.Logger
}

// Repositories набор репозиториев одного хранилища
type Repositories struct {
	Users    repository.UserRepository
	Projects repository.ProjectRepository
	Tasks    repository.TaskRepository
	Comments repository.CommentRepository
	Stats    repository.StatsRepository
}

// New создает новый экземпляр приложения
func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{
		config: cfg,
		logger: logging.New(cfg.Log),
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Подключаемся к базе данных
	if err := a.connectDB(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer()

	a.logger.Info("Application initialized successfully", "driver", a.config.Database.Driver)
	return nil
}

// connectDB подключается к выбранному хранилищу и создает репозитории
func (a *App) connectDB(ctx context.Context) error {
	switch a.config.Database.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, a.config.Database.SQLitePath)
		if err != nil {
			return err
		}
		a.sqlite = db
		a.repos = SQLiteRepositories(db)
		a.logger.Info("Opened SQLite database", "path", a.config.Database.SQLitePath)
		return nil
	default:
		return a.connectPostgres(ctx)
	}
}

// connectPostgres устанавливает подключение к PostgreSQL с connection pool
func (a *App) connectPostgres(ctx context.Context) error {
	poolConfig, err := pgxpool.ParseConfig(a.config.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to parse database config: %w", err)
	}

	// Настраиваем размеры connection pool
	poolConfig.MaxConns = a.config.Database.MaxConns
	poolConfig.MinConns = a.config.Database.MinConns

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	// Проверяем подключение к БД
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.pool = pool
	a.repos = PostgresRepositories(pool)
	a.logger.Info("Connected to database")
	return nil
}

// PostgresRepositories создает репозитории поверх pgxpool
func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    postgres.NewUserRepository(pool),
		Projects: postgres.NewProjectRepository(pool),
		Tasks:    postgres.NewTaskRepository(pool),
		Comments: postgres.NewCommentRepository(pool),
		Stats:    postgres.NewStatsRepository(pool),
	}
}

// SQLiteRepositories создает репозитории поверх SQLite
func SQLiteRepositories(db *sql.DB) Repositories {
	return Repositories{
		Users:    sqlite.NewUserRepository(db),
		Projects: sqlite.NewProjectRepository(db),
		Tasks:    sqlite.NewTaskRepository(db),
		Comments: sqlite.NewCommentRepository(db),
		Stats:    sqlite.NewStatsRepository(db),
	}
}

// NewRouter собирает сервисы, обработчики и маршруты поверх набора репозиториев
func NewRouter(repos Repositories, jwt config.JWTConfig, logger *slog.Logger) http.Handler {
	// Инициализируем слой сервисов (бизнес-логика)
	assigneeSelector := service.NewAssigneeSelector()
	userService := service.NewUserService(repos.Users, repos.Projects, repos.Tasks, service.NewID)
	projectService := service.NewProjectService(repos.Projects, repos.Users, repos.Tasks, service.NewID)
	taskService := service.NewTaskService(repos.Tasks, repos.Projects, repos.Users, repos.Comments, assigneeSelector, service.NewID)
	commentService := service.NewCommentService(repos.Comments, repos.Tasks, repos.Projects, repos.Users, service.NewID)
	authService := service.NewAuthService(repos.Users, jwt.Secret, jwt.GetExpiration())
	statsService := service.NewStatsService(repos.Stats)

	// Инициализируем HTTP обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService)
	commentHandler := handler.NewCommentHandler(commentService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Инициализируем middleware для JWT авторизации
	authMiddleware := middleware.AuthMiddleware(authService)

	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(handler.WithLogger(logger))

	// Health check для мониторинга
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Публичные эндпоинты (без авторизации)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/users/create", userHandler.CreateUser)

	// Защищенные эндпоинты (требуют JWT токен в заголовке Authorization)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/users/get", userHandler.GetUser)
		r.Get("/users/getTasks", userHandler.GetTasks)
		r.Get("/users/getProjects", userHandler.GetProjects)

		r.Post("/projects/create", projectHandler.CreateProject)
		r.Get("/projects/get", projectHandler.GetProject)
		r.Post("/projects/addMember", projectHandler.AddMember)
		r.Get("/projects/getTasks", projectHandler.GetTasks)

		r.Post("/tasks/create", taskHandler.CreateTask)
		r.Get("/tasks/get", taskHandler.GetTask)
		r.Post("/tasks/changeStatus", taskHandler.ChangeStatus)
		r.Post("/tasks/assign", taskHandler.Assign)
		r.Post("/tasks/autoAssign", taskHandler.AutoAssign)

		r.Post("/comments/add", commentHandler.AddComment)
		r.Post("/comments/edit", commentHandler.EditComment)

		r.Get("/stats", statsHandler.GetStats)
		r.Get("/stats/user", statsHandler.GetUserStats)
	})

	return r
}

// setupServer инициализирует HTTP роутер и сервер
func (a *App) setupServer() {
	a.handler = NewRouter(a.repos, a.config.JWT, a.logger)

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      a.handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик; доступен после Initialize
func (a *App) Handler() http.Handler {
	return a.handler
}

// Logger возвращает логгер приложения
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	// Закрываем подключения к базе данных
	if a.pool != nil {
		a.pool.Close()
	}
	if a.sqlite != nil {
		if err := a.sqlite.Close(); err != nil {
			return fmt.Errorf("failed to close sqlite: %w", err)
		}
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
