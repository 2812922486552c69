package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aidar/task-tracker/internal/domain"
)

// ProjectRepository implements repository.ProjectRepository for SQLite
type ProjectRepository struct {
	db *sql.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create inserts the project and its owner membership in one transaction
func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	createdAt := time.Now().UTC()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO projects (project_id, name, owner_id, created_at) VALUES (?, ?, ?, ?)`,
		project.ProjectID, project.Name, project.OwnerID, createdAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUserNotFound
		}
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO project_members (project_id, user_id, joined_at) VALUES (?, ?, ?)`,
		project.ProjectID, project.OwnerID, createdAt,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	project.CreatedAt = &createdAt
	return nil
}

// GetByID returns the project with members in join order
func (r *ProjectRepository) GetByID(ctx context.Context, projectID string) (*domain.Project, error) {
	var project domain.Project
	err := r.db.QueryRowContext(ctx,
		`SELECT project_id, name, owner_id, created_at FROM projects WHERE project_id = ?`,
		projectID,
	).Scan(&project.ProjectID, &project.Name, &project.OwnerID, &project.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT u.user_id, u.username, u.email, u.created_at
		FROM project_members pm
		INNER JOIN users u ON u.user_id = pm.user_id
		WHERE pm.project_id = ?
		ORDER BY pm.rowid
	`, projectID)
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
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO project_members (project_id, user_id, joined_at)
		VALUES (?, ?, ?)
		ON CONFLICT (project_id, user_id) DO NOTHING
	`, projectID, userID, time.Now().UTC())
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return err
	}

	return nil
}

// IsMember reports whether the user belongs to the project
func (r *ProjectRepository) IsMember(ctx context.Context, projectID, userID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM project_members WHERE project_id = ? AND user_id = ?)`,
		projectID, userID,
	).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// GetByMember returns the projects a user belongs to, newest first
func (r *ProjectRepository) GetByMember(ctx context.Context, userID string) ([]*domain.ProjectShort, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT p.project_id, p.name, p.owner_id
		FROM projects p
		INNER JOIN project_members pm ON pm.project_id = p.project_id
		WHERE pm.user_id = ?
		ORDER BY p.rowid DESC
	`, userID)
	if err != nil {
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
