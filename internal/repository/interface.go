package repository

import (
	"context"

	"github.com/aidar/task-tracker/internal/domain"
)

// UserRepository определяет методы для работы с данными пользователей
type UserRepository interface {
	// Create создает нового пользователя, ErrUserExists если email занят
	Create(ctx context.Context, user *domain.User) error

	// GetByID получает пользователя по ID
	GetByID(ctx context.Context, userID string) (*domain.User, error)
}

// ProjectRepository определяет методы для работы с данными проектов
type ProjectRepository interface {
	// Create создает проект и добавляет владельца в участники
	Create(ctx context.Context, project *domain.Project) error

	// GetByID получает проект со всеми участниками
	GetByID(ctx context.Context, projectID string) (*domain.Project, error)

	// AddMember добавляет участника (идемпотентная операция)
	AddMember(ctx context.Context, projectID, userID string) error

	// IsMember проверяет, состоит ли пользователь в проекте
	IsMember(ctx context.Context, projectID, userID string) (bool, error)

	// GetByMember возвращает все проекты, в которых состоит пользователь
	GetByMember(ctx context.Context, userID string) ([]*domain.ProjectShort, error)
}

// TaskFilter задает необязательные условия выборки задач
type TaskFilter struct {
	Status *domain.TaskStatus
}

// TaskRepository определяет методы для работы с данными задач
type TaskRepository interface {
	// Create создает новую задачу
	Create(ctx context.Context, task *domain.Task) error

	// GetByID получает задачу по ID (без комментариев)
	GetByID(ctx context.Context, taskID string) (*domain.Task, error)

	// UpdateStatus обновляет статус задачи
	UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) error

	// UpdateAssignee назначает или снимает (nil) исполнителя
	UpdateAssignee(ctx context.Context, taskID string, assigneeID *string) error

	// GetByProject возвращает задачи проекта
	GetByProject(ctx context.Context, projectID string, filter TaskFilter) ([]*domain.TaskShort, error)

	// GetByAssignee возвращает все задачи, назначенные пользователю
	GetByAssignee(ctx context.Context, userID string) ([]*domain.TaskShort, error)
}

// CommentRepository определяет методы для работы с комментариями
type CommentRepository interface {
	// Create создает комментарий к задаче
	Create(ctx context.Context, comment *domain.Comment) error

	// GetByID получает комментарий по ID
	GetByID(ctx context.Context, commentID string) (*domain.Comment, error)

	// Update сохраняет новый текст и время редактирования
	Update(ctx context.Context, comment *domain.Comment) error

	// GetByTask возвращает комментарии задачи в порядке создания
	GetByTask(ctx context.Context, taskID string) ([]domain.Comment, error)
}

// StatsRepository определяет агрегирующие запросы для статистики
type StatsRepository interface {
	// GetStats возвращает общую статистику и статистику по пользователям
	GetStats(ctx context.Context) (*domain.Stats, error)

	// GetUserStats возвращает статистику одного пользователя
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
}
