package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/repository"
)

// TaskService handles business logic for tasks
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	selector    *AssigneeSelector
	newID       IDGenerator
}

// NewTaskService creates a new TaskService
func NewTaskService(
	taskRepo repository.TaskRepository,
	projectRepo repository.ProjectRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	selector *AssigneeSelector,
	newID IDGenerator,
) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		selector:    selector,
		newID:       newID,
	}
}

// CreateTask creates a TODO task in the project on behalf of actorID, who must be a member
func (s *TaskService) CreateTask(ctx context.Context, actorID, projectID, title, description string) (*domain.Task, error) {
	creator, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	task, err := creator.CreateTask(title, project)
	if err != nil {
		return nil, err
	}

	task.TaskID = s.newID()
	task.Description = strings.TrimSpace(description)

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return task, nil
}

// GetTask returns the task with its comments
func (s *TaskService) GetTask(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	task, _, err := s.loadForMember(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task.Comments = comments

	return task, nil
}

// ChangeStatus moves the task to a new status. Setting the current status is a no-op.
func (s *TaskService) ChangeStatus(ctx context.Context, actorID, taskID, status string) (*domain.Task, error) {
	newStatus, err := domain.ParseTaskStatus(status)
	if err != nil {
		return nil, err
	}

	task, _, err := s.loadForMember(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	if task.Status == newStatus {
		return task, nil
	}

	if err := task.ChangeStatus(newStatus); err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateStatus(ctx, taskID, task.Status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	return s.taskRepo.GetByID(ctx, taskID)
}

// AssignTo makes userID the task assignee; the assignee must be a project member
func (s *TaskService) AssignTo(ctx context.Context, actorID, taskID, userID string) (*domain.Task, error) {
	task, project, err := s.loadForMember(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := task.AssignTo(user, project); err != nil {
		return nil, err
	}

	if err := s.taskRepo.UpdateAssignee(ctx, taskID, task.AssigneeID); err != nil {
		return nil, fmt.Errorf("update assignee: %w", err)
	}

	return s.taskRepo.GetByID(ctx, taskID)
}

// Unassign clears the task assignee
func (s *TaskService) Unassign(ctx context.Context, actorID, taskID string) (*domain.Task, error) {
	task, _, err := s.loadForMember(ctx, actorID, taskID)
	if err != nil {
		return nil, err
	}

	task.Unassign()
	if err := s.taskRepo.UpdateAssignee(ctx, taskID, nil); err != nil {
		return nil, fmt.Errorf("update assignee: %w", err)
	}

	return s.taskRepo.GetByID(ctx, taskID)
}

// AutoAssign assigns a random project member other than the current assignee.
// Returns the updated task and the chosen user ID.
func (s *TaskService) AutoAssign(ctx context.Context, actorID, taskID string) (*domain.Task, string, error) {
	task, project, err := s.loadForMember(ctx, actorID, taskID)
	if err != nil {
		return nil, "", err
	}

	var exclude []string
	if task.AssigneeID != nil {
		exclude = append(exclude, *task.AssigneeID)
	}

	candidate, err := s.selector.SelectAssignee(project.Members, exclude...)
	if err != nil {
		return nil, "", err
	}

	if err := task.AssignTo(candidate, project); err != nil {
		return nil, "", err
	}

	if err := s.taskRepo.UpdateAssignee(ctx, taskID, task.AssigneeID); err != nil {
		return nil, "", fmt.Errorf("update assignee: %w", err)
	}

	updated, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, "", err
	}

	return updated, candidate.UserID, nil
}

// loadForMember loads the task and its project and checks that actorID is a member
func (s *TaskService) loadForMember(ctx context.Context, actorID, taskID string) (*domain.Task, *domain.Project, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	if !project.IsMember(actorID) {
		return nil, nil, domain.ErrNotMember
	}

	return task, project, nil
}
