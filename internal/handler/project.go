package handler

import (
	"net/http"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/middleware"
	"github.com/aidar/task-tracker/internal/service"
)

// ProjectHandler обрабатывает эндпоинты проектов
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler создает новый ProjectHandler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProjectRequest представляет тело запроса на создание проекта
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// AddMemberRequest представляет тело запроса на добавление участника
type AddMemberRequest struct {
	ProjectID string `json:"project_id"`
	UserID    string `json:"user_id"`
}

// ProjectResponse оборачивает проект в ответе
type ProjectResponse struct {
	Project *domain.Project `json:"project"`
}

// ProjectTasksResponse представляет список задач проекта
type ProjectTasksResponse struct {
	ProjectID string              `json:"project_id"`
	Tasks     []*domain.TaskShort `json:"tasks"`
}

// CreateProject обрабатывает POST /projects/create; владельцем становится текущий пользователь
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req CreateProjectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	project, err := h.projectService.CreateProject(r.Context(), actorID, req.Name)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, ProjectResponse{Project: project})
}

// GetProject обрабатывает GET /projects/get?project_id=...
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := requireQuery(w, r, "project_id")
	if !ok {
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	project, err := h.projectService.GetProject(r.Context(), actorID, projectID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ProjectResponse{Project: project})
}

// AddMember обрабатывает POST /projects/addMember (идемпотентная операция)
func (h *ProjectHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req AddMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.ProjectID == "" || req.UserID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "project_id and user_id are required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	project, err := h.projectService.AddMember(r.Context(), actorID, req.ProjectID, req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ProjectResponse{Project: project})
}

// GetTasks обрабатывает GET /projects/getTasks?project_id=...&status=...
func (h *ProjectHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	projectID, ok := requireQuery(w, r, "project_id")
	if !ok {
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	tasks, err := h.projectService.ListTasks(r.Context(), actorID, projectID, r.URL.Query().Get("status"))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, ProjectTasksResponse{ProjectID: projectID, Tasks: tasks})
}
