package handler

import (
	"net/http"

	"github.com/aidar/task-tracker/internal/service"
)

// AuthHandler выдает JWT токены
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler создает новый AuthHandler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest тело запроса POST /auth/login
type LoginRequest struct {
	UserID string `json:"user_id"`
}

// Login обрабатывает POST /auth/login.
// Ответ: {"token": ..., "user_id": ..., "expires_at": ...}
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.UserID == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "user_id is required")
		return
	}

	session, err := h.authService.Login(r.Context(), req.UserID)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, session)
}
