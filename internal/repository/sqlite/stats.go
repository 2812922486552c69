package sqlite

import (
	"context"
	"database/sql"

	"github.com/aidar/task-tracker/internal/domain"
)

// StatsRepository implements repository.StatsRepository for SQLite
type StatsRepository struct {
	db *sql.DB
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

const userStatsSelect = `
	SELECT
		u.user_id,
		u.username,
		(SELECT COUNT(*) FROM projects p WHERE p.owner_id = u.user_id) AS owned_projects,
		(SELECT COUNT(*) FROM project_members pm WHERE pm.user_id = u.user_id) AS memberships,
		(SELECT COUNT(*) FROM tasks t WHERE t.creator_id = u.user_id) AS created_tasks,
		(SELECT COUNT(*) FROM tasks t WHERE t.assignee_id = u.user_id) AS assigned_tasks,
		(SELECT COUNT(*) FROM tasks t WHERE t.assignee_id = u.user_id AND t.status <> 'DONE') AS open_assigned,
		(SELECT COUNT(*) FROM comments c WHERE c.author_id = u.user_id) AS comments
	FROM users u
`

type scanner interface {
	Scan(dest ...any) error
}

func scanUserStats(row scanner) (domain.UserStats, error) {
	var us domain.UserStats
	err := row.Scan(
		&us.UserID, &us.Username, &us.OwnedProjects, &us.Memberships,
		&us.CreatedTasks, &us.AssignedTasks, &us.OpenAssigned, &us.Comments,
	)
	return us, err
}

// GetStats returns overall statistics
func (r *StatsRepository) GetStats(ctx context.Context) (*domain.Stats, error) {
	stats := &domain.Stats{UserStats: []domain.UserStats{}}

	rows, err := r.db.QueryContext(ctx, userStatsSelect+` ORDER BY assigned_tasks DESC, u.user_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		us, err := scanUserStats(rows)
		if err != nil {
			return nil, err
		}
		stats.UserStats = append(stats.UserStats, us)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	ts := &stats.TaskStats
	err = r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM projects),
			COUNT(*),
			COUNT(CASE WHEN status = 'TODO' THEN 1 END),
			COUNT(CASE WHEN status = 'IN_PROGRESS' THEN 1 END),
			COUNT(CASE WHEN status = 'DONE' THEN 1 END),
			COUNT(CASE WHEN assignee_id IS NULL THEN 1 END),
			(SELECT COUNT(*) FROM comments)
		FROM tasks
	`).Scan(
		&ts.TotalUsers, &ts.TotalProjects, &ts.TotalTasks, &ts.TodoTasks,
		&ts.InProgress, &ts.DoneTasks, &ts.Unassigned, &ts.TotalComments,
	)
	if err != nil {
		return nil, err
	}

	return stats, nil
}

// GetUserStats returns statistics for a specific user
func (r *StatsRepository) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	us, err := scanUserStats(r.db.QueryRowContext(ctx, userStatsSelect+` WHERE u.user_id = ?`, userID))
	if err != nil {
		if isNoRows(err) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &us, nil
}
