package handler

import (
	"net/http"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/middleware"
	"github.com/aidar/task-tracker/internal/service"
)

// TaskHandler обрабатывает эндпоинты задач
type TaskHandler struct {
	taskService *service.TaskService
}

// NewTaskHandler создает новый TaskHandler
func NewTaskHandler(taskService *service.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTaskRequest представляет тело запроса на создание задачи
type CreateTaskRequest struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChangeStatusRequest представляет тело запроса на смену статуса
type ChangeStatusRequest struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// AssignRequest представляет тело запроса на назначение исполнителя.
// Пустой user_id снимает назначение.
type AssignRequest struct {
	TaskID string `json:"task_id"`
	UserID string `json:"user_id"`
}

// AutoAssignRequest представляет тело запроса на автоназначение
type AutoAssignRequest struct {
	TaskID string `json:"task_id"`
}

// TaskResponse оборачивает задачу в ответе
type TaskResponse struct {
	Task *domain.Task `json:"task"`
}

// AutoAssignResponse представляет ответ на автоназначение
type AutoAssignResponse struct {
	Task       *domain.Task `json:"task"`
	AssignedTo string       `json:"assigned_to"`
}

// CreateTask обрабатывает POST /tasks/create
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.ProjectID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "project_id is required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	task, err := h.taskService.CreateTask(r.Context(), actorID, req.ProjectID, req.Title, req.Description)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, TaskResponse{Task: task})
}

// GetTask обрабатывает GET /tasks/get?task_id=...
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	taskID, ok := requireQuery(w, r, "task_id")
	if !ok {
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	task, err := h.taskService.GetTask(r.Context(), actorID, taskID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// ChangeStatus обрабатывает POST /tasks/changeStatus
func (h *TaskHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	var req ChangeStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.TaskID == "" || req.Status == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "task_id and status are required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	task, err := h.taskService.ChangeStatus(r.Context(), actorID, req.TaskID, req.Status)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// Assign обрабатывает POST /tasks/assign
func (h *TaskHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.TaskID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "task_id is required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())

	var (
		task *domain.Task
		err  error
	)
	if req.UserID == "" {
		task, err = h.taskService.Unassign(r.Context(), actorID, req.TaskID)
	} else {
		task, err = h.taskService.AssignTo(r.Context(), actorID, req.TaskID, req.UserID)
	}
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// AutoAssign обрабатывает POST /tasks/autoAssign
func (h *TaskHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	var req AutoAssignRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.TaskID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "task_id is required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	task, assignedTo, err := h.taskService.AutoAssign(r.Context(), actorID, req.TaskID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, AutoAssignResponse{Task: task, AssignedTo: assignedTo})
}
