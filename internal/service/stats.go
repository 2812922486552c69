package service

import (
	"context"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

// StatsService handles statistics queries
type StatsService struct {
	statsRepo repository.StatsRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(statsRepo repository.StatsRepository) *StatsService {
	return &StatsService{statsRepo: statsRepo}
}

// GetStats returns overall statistics
func (s *StatsService) GetStats(ctx context.Context) (*domain.Stats, error) {
	return s.statsRepo.GetStats(ctx)
}

// GetUserStats returns statistics for a specific user
func (s *StatsService) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	return s.statsRepo.GetUserStats(ctx, userID)
}
