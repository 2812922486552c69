package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aidar/task-tracker/internal/domain"
)

// CommentRepository implements repository.CommentRepository for SQLite
type CommentRepository struct {
	db *sql.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment; a missing task yields ErrTaskNotFound
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	createdAt := time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (comment_id, task_id, author_id, content, created_at) VALUES (?, ?, ?, ?, ?)`,
		comment.CommentID, comment.TaskID, comment.AuthorID, comment.Content, createdAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	comment.CreatedAt = &createdAt
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	var c domain.Comment
	err := r.db.QueryRowContext(ctx,
		`SELECT comment_id, task_id, author_id, content, created_at, updated_at FROM comments WHERE comment_id = ?`,
		commentID,
	).Scan(&c.CommentID, &c.TaskID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}

	return &c, nil
}

// Update persists the edited content and edit timestamp
func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE comments SET content = ?, updated_at = ? WHERE comment_id = ?`,
		comment.Content, comment.UpdatedAt, comment.CommentID,
	)
	if err != nil {
		return err
	}

	return requireAffected(result, domain.ErrCommentNotFound)
}

// GetByTask returns a task's comments in creation order
func (r *CommentRepository) GetByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT comment_id, task_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE task_id = ?
		ORDER BY rowid
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.CommentID, &c.TaskID, &c.AuthorID, &c.Content, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
