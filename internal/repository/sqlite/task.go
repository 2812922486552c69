package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

// TaskRepository implements repository.TaskRepository for SQLite
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create inserts a task; a missing project or creator yields a not-found error
func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (task_id, project_id, creator_id, title, description, status, assignee_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, task.TaskID, task.ProjectID, task.CreatorID, task.Title, task.Description,
		string(task.Status), task.AssigneeID, now, now)
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

// GetByID retrieves a task by ID without its comments
func (r *TaskRepository) GetByID(ctx context.Context, taskID string) (*domain.Task, error) {
	var task domain.Task
	err := r.db.QueryRowContext(ctx, `
		SELECT task_id, project_id, creator_id, title, description, status, assignee_id, created_at, updated_at
		FROM tasks
		WHERE task_id = ?
	`, taskID).Scan(
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

// UpdateStatus updates the task status
func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status domain.TaskStatus) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = ? WHERE task_id = ?`,
		string(status), time.Now().UTC(), taskID,
	)
	if err != nil {
		return err
	}

	return requireAffected(result, domain.ErrTaskNotFound)
}

// UpdateAssignee sets or clears (nil) the assignee
func (r *TaskRepository) UpdateAssignee(ctx context.Context, taskID string, assigneeID *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET assignee_id = ?, updated_at = ? WHERE task_id = ?`,
		assigneeID, time.Now().UTC(), taskID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return requireAffected(result, domain.ErrTaskNotFound)
}

// GetByProject returns the project's tasks, oldest first, optionally filtered by status
func (r *TaskRepository) GetByProject(ctx context.Context, projectID string, filter repository.TaskFilter) ([]*domain.TaskShort, error) {
	var status any
	if filter.Status != nil {
		status = string(*filter.Status)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT task_id, project_id, title, status, assignee_id
		FROM tasks
		WHERE project_id = ? AND (? IS NULL OR status = ?)
		ORDER BY rowid
	`, projectID, status, status)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

// GetByAssignee returns the tasks assigned to a user, most recently updated first
func (r *TaskRepository) GetByAssignee(ctx context.Context, userID string) ([]*domain.TaskShort, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT task_id, project_id, title, status, assignee_id
		FROM tasks
		WHERE assignee_id = ?
		ORDER BY updated_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]*domain.TaskShort, error) {
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

func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
