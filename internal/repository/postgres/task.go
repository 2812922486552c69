package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

// TaskRepository реализует repository.TaskRepository для PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository создает новый экземпляр TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task; a missing project or creator yields a not-found error
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (task_id, project_id, creator_id, title, description, status, assignee_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`

	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, query,
		task.TaskID, task.ProjectID, task.CreatorID, task.Title, task.Description,
		task.Status, task.AssigneeID, now,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProjectNotFound
		}
		return err
	}

	task.CreatedAt = &now
	task.UpdatedAt = &now
	return nil
}

// GetByID получает задачу по ID
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `
		SELECT task_id, project_id, creator_id, title, description, status, assignee_id, created_at, updated_at
		FROM tasks
		WHERE task_id = $1
	`

	var task domain.Task
	err := r.db.QueryRow(ctx, query, taskID).Scan(
		&task.TaskID,
		&task.ProjectID,
		&task.CreatorID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.AssigneeID,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	task.Comments = []domain.Comment{}
	return &task, nil
}

// UpdateStatus обновляет статус задачи
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	query := `
		UPDATE tasks
		SET status = $1, updated_at = NOW()
		WHERE task_id = $2
	`

	result, err := r.db.Exec(ctx, query, status, taskID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// UpdateAssignee sets or clears (nil) the assignee
func (r *TaskRepository) UpdateAssignee(ctx context.Context, taskID string, assigneeID *string) error {
	query := `
		UPDATE tasks
		SET assignee_id = $1, updated_at = NOW()
		WHERE task_id = $2
	`

	result, err := r.db.Exec(ctx, query, assigneeID, taskID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

// GetByProject returns the project's tasks, oldest first, optionally filtered by status
func (r *TaskRepository) GetByProject(ctx context.Context, projectID string, filter repository.TaskFilter) ([]*domain.TaskShort, error) {
	query := `
		SELECT task_id, project_id, title, status, assignee_id
		FROM tasks
		WHERE project_id = $1 AND ($2::text IS NULL OR status = $2::text)
		ORDER BY created_at, task_id
	`

	var status *string
	if filter.Status != nil {
		s := string(*filter.Status)
		status = &s
	}

	rows, err := r.db.Query(ctx, query, projectID, status)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// GetByAssignee returns the tasks assigned to a user, most recently updated first
func (r *TaskRepository) GetByAssignee(ctx context.Context, userID string) ([]*domain.TaskShort, error) {
	query := `
		SELECT task_id, project_id, title, status, assignee_id
		FROM tasks
		WHERE assignee_id = $1
		ORDER BY updated_at DESC, task_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func collectTasks(rows pgx.Rows) ([]*domain.TaskShort, error) {
	defer rows.Close()

	tasks := []*domain.TaskShort{}
	for rows.Next() {
		var t domain.TaskShort
		if err := rows.Scan(&t.TaskID, &t.ProjectID, &t.Title, &t.Status, &t.AssigneeID); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}

	return tasks, rows.Err()
}
