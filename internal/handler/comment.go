package handler

import (
	"net/http"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/middleware"
	"github.com/aidar/task-tracker/internal/service"
)

// CommentHandler обрабатывает эндпоинты комментариев
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler создает новый CommentHandler
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// AddCommentRequest представляет тело запроса на добавление комментария
type AddCommentRequest struct {
	TaskID  string `json:"task_id"`
	Content string `json:"content"`
}

// EditCommentRequest представляет тело запроса на редактирование комментария
type EditCommentRequest struct {
	CommentID string `json:"comment_id"`
	Content   string `json:"content"`
}

// CommentResponse оборачивает комментарий в ответе
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// AddComment обрабатывает POST /comments/add
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req AddCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.TaskID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "task_id is required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	comment, err := h.commentService.AddComment(r.Context(), actorID, req.TaskID, req.Content)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusCreated, CommentResponse{Comment: comment})
}

// EditComment обрабатывает POST /comments/edit; редактировать может только автор
func (h *CommentHandler) EditComment(w http.ResponseWriter, r *http.Request) {
	var req EditCommentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.CommentID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "comment_id is required")
		return
	}

	actorID := middleware.GetUserIDFromContext(r.Context())
	comment, err := h.commentService.EditComment(r.Context(), actorID, req.CommentID, req.Content)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CommentResponse{Comment: comment})
}
