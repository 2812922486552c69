package service

import (
	"context"
	"fmt"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

// ProjectService handles business logic for projects and membership
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	taskRepo    repository.TaskRepository
	newID       IDGenerator
}

// NewProjectService creates a new ProjectService
func NewProjectService(
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	newID IDGenerator,
) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
		taskRepo:    taskRepo,
		newID:       newID,
	}
}

// CreateProject creates a project owned by ownerID; the owner becomes the first member
func (s *ProjectService) CreateProject(ctx context.Context, ownerID, name string) (*domain.Project, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	project, err := domain.NewProject(name, owner)
	if err != nil {
		return nil, err
	}

	project.ProjectID = s.newID()
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return s.projectRepo.GetByID(ctx, project.ProjectID)
}

// GetProject returns the project if the actor is one of its members
func (s *ProjectService) GetProject(ctx context.Context, actorID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !project.IsMember(actorID) {
		return nil, domain.ErrNotMember
	}

	return project, nil
}

// AddMember adds userID to the project. Only the owner may add members.
// Adding an existing member succeeds without changes.
func (s *ProjectService) AddMember(ctx context.Context, actorID, projectID, userID string) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !project.IsOwner(actorID) {
		return nil, domain.ErrForbidden
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if project.AddMember(*user) {
		if err := s.projectRepo.AddMember(ctx, projectID, user.UserID); err != nil {
			return nil, fmt.Errorf("add member: %w", err)
		}
	}

	return project, nil
}

// ListTasks returns the project's tasks, optionally filtered by status.
// An empty status means no filter.
func (s *ProjectService) ListTasks(ctx context.Context, actorID, projectID, status string) ([]*domain.TaskShort, error) {
	var filter repository.TaskFilter
	if status != "" {
		parsed, err := domain.ParseTaskStatus(status)
		if err != nil {
			return nil, err
		}
		filter.Status = &parsed
	}

	member, err := s.projectRepo.IsMember(ctx, projectID, actorID)
	if err != nil {
		return nil, err
	}
	if !member {
		// отличаем отсутствующий проект от чужого
		if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotMember
	}

	return s.taskRepo.GetByProject(ctx, projectID, filter)
}
