package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aidar/task-tracker/internal/domain"
)

// UserRepository implements repository.UserRepository for SQLite
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user; a duplicate email yields ErrUserExists
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (user_id, username, email, created_at) VALUES (?, ?, ?, ?)`

	createdAt := time.Now().UTC()
	if _, err := r.db.ExecContext(ctx, query, user.UserID, user.Username, user.Email, createdAt); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return err
	}

	user.CreatedAt = &createdAt
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT user_id, username, email, created_at FROM users WHERE user_id = ?`

	var user domain.User
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&user.UserID, &user.Username, &user.Email, &user.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
