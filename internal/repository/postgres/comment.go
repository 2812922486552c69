package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aidar/task-tracker/internal/domain"
)

// CommentRepository реализует repository.CommentRepository для PostgreSQL
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository создает новый экземпляр CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment; a missing task yields ErrTaskNotFound
func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	query := `
		INSERT INTO comments (comment_id, task_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	createdAt := time.Now().UTC()
	_, err := r.db.Exec(ctx, query, comment.CommentID, comment.TaskID, comment.AuthorID, comment.Content, createdAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrTaskNotFound
		}
		return err
	}

	comment.CreatedAt = &createdAt
	return nil
}

// GetByID получает комментарий по ID
func (r *CommentRepository) GetByID(ctx context.Context, commentID string) (*domain.Comment, error) {
	query := `
		SELECT comment_id, task_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE comment_id = $1
	`

	var c domain.Comment
	err := r.db.QueryRow(ctx, query, commentID).Scan(
		&c.CommentID,
		&c.TaskID,
		&c.AuthorID,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
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
	query := `
		UPDATE comments
		SET content = $1, updated_at = $2
		WHERE comment_id = $3
	`

	result, err := r.db.Exec(ctx, query, comment.Content, comment.UpdatedAt, comment.CommentID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return domain.ErrCommentNotFound
	}

	return nil
}

// GetByTask returns a task's comments in creation order
func (r *CommentRepository) GetByTask(ctx context.Context, taskID string) ([]domain.Comment, error) {
	query := `
		SELECT comment_id, task_id, author_id, content, created_at, updated_at
		FROM comments
		WHERE task_id = $1
		ORDER BY created_at, comment_id
	`

	rows, err := r.db.Query(ctx, query, taskID)
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
