package service

import (
	"context"
	"fmt"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

// UserService handles business logic for users
type UserService struct {
	userRepo    repository.UserRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	newID       IDGenerator
}

// NewUserService creates a new UserService
func NewUserService(
	userRepo repository.UserRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	newID IDGenerator,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		newID:       newID,
	}
}

// Register validates and stores a new user
func (s *UserService) Register(ctx context.Context, username, email string) (*domain.User, error) {
	user, err := domain.NewUser(username, email)
	if err != nil {
		return nil, err
	}

	user.UserID = s.newID()
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// GetByID retrieves a user by ID
func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// GetAssignedTasks returns all tasks where the user is the assignee
func (s *UserService) GetAssignedTasks(ctx context.Context, userID string) ([]*domain.TaskShort, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.taskRepo.GetByAssignee(ctx, userID)
}

// GetProjects returns all projects the user is a member of
func (s *UserService) GetProjects(ctx context.Context, userID string) ([]*domain.ProjectShort, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.projectRepo.GetByMember(ctx, userID)
}
