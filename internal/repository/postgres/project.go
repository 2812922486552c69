package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/task-tracker/internal/domain"
)

// ProjectRepository реализует repository.ProjectRepository для PostgreSQL
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository создает новый экземпляр ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts the project and its owner membership in one transaction
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx) // Ignore error as it will fail if transaction was committed
	}()

	createdAt := time.Now().UTC()
	query := `
		INSERT INTO projects (project_id, name, owner_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	if _, err = tx.Exec(ctx, query, project.ProjectID, project.Name, project.OwnerID, createdAt); err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return err
	}

	memberQuery := `
		INSERT INTO project_members (project_id, user_id, joined_at)
		VALUES ($1, $2, $3)
	`
	if _, err = tx.Exec(ctx, memberQuery, project.ProjectID, project.OwnerID, createdAt); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	project.CreatedAt = &createdAt
	return nil
}

// GetByID returns the project with members ordered by join time
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `
		SELECT project_id, name, owner_id, created_at
		FROM projects
		WHERE project_id = $1
	`

	var project domain.Project
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&project.ProjectID,
		&project.Name,
		&project.OwnerID,
		&project.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	membersQuery := `
		SELECT u.user_id, u.username, u.email, u.created_at
		FROM project_members pm
		INNER JOIN users u ON u.user_id = pm.user_id
		WHERE pm.project_id = $1
		ORDER BY pm.joined_at, u.user_id
	`

	rows, err := r.db.Query(ctx, membersQuery, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.User{}
	for rows.Next() {
		var member domain.User
		if err := rows.Scan(&member.UserID, &member.Username, &member.Email, &member.CreatedAt); err != nil {
			return nil, err
		}
		members = append(members, member)
	}

	project.Members = members

	return &project, rows.Err()
}

// AddMember is idempotent: an existing membership is left untouched
func (r *ProjectRepository) AddMember(ctx context.Context, projectID, userID string) error {
	query := `
		INSERT INTO project_members (project_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, projectID, userID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}

	return nil
}

// IsMember проверяет, состоит ли пользователь в проекте
func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`

	var exists bool
	err := r.db.QueryRow(ctx, query, projectID, userID).Scan(&exists)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, err
	}

	return exists, nil
}

// GetByMember returns the projects a user belongs to, newest first
func (r *ProjectRepository) GetByMember(ctx context.Context, userID string) ([]*domain.ProjectShort, error) {
	query := `
		SELECT p.project_id, p.name, p.owner_id
		FROM projects p
		INNER JOIN project_members pm ON pm.project_id = p.project_id
		WHERE pm.user_id = $1
		ORDER BY p.created_at DESC, p.project_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		if isNoRows(err) {
			return []*domain.ProjectShort{}, nil
		}
		return nil, err
	}
	defer rows.Close()

	projects := []*domain.ProjectShort{}
	for rows.Next() {
		var p domain.ProjectShort
		if err := rows.Scan(&p.ProjectID, &p.Name, &p.OwnerID); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}

	return projects, rows.Err()
}
