package handler

import (
	"net/http"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/middleware"
	"github.com/aidar/task-tracker/internal/service"
)

// UserHandler обрабатывает эндпоинты пользователей
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler создает новый UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// CreateUserRequest представляет тело запроса на регистрацию
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserResponse оборачивает пользователя в ответе
type UserResponse struct {
	User *domain.User `json:"user"`
}

// UserTasksResponse представляет список задач, назначенных пользователю
type UserTasksResponse struct {
	UserID string              `json:"user_id"`
	Tasks  []*domain.TaskShort `json:"tasks"`
}

// UserProjectsResponse представляет список проектов пользователя
type UserProjectsResponse struct {
	UserID   string                 `json:"user_id"`
	Projects []*domain.ProjectShort `json:"projects"`
}

// CreateUser обрабатывает POST /users/create
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.Username, req.Email)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, UserResponse{User: user})
}

// GetUser обрабатывает GET /users/get?user_id=...
// Без user_id возвращает текущего пользователя.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.GetByID(r.Context(), userIDOrSelf(r))
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// GetTasks обрабатывает GET /users/getTasks?user_id=...
func (h *UserHandler) GetTasks(w http.ResponseWriter, r *http.Request) {
	userID := userIDOrSelf(r)

	tasks, err := h.userService.GetAssignedTasks(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserTasksResponse{UserID: userID, Tasks: tasks})
}

// GetProjects обрабатывает GET /users/getProjects?user_id=...
func (h *UserHandler) GetProjects(w http.ResponseWriter, r *http.Request) {
	userID := userIDOrSelf(r)

	projects, err := h.userService.GetProjects(r.Context(), userID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, UserProjectsResponse{UserID: userID, Projects: projects})
}

func userIDOrSelf(r *http.Request) string {
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		return userID
	}
	return middleware.GetUserIDFromContext(r.Context())
}
