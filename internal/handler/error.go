package handler

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/aidar/task-tracker/internal/domain"
	"github.com/aidar/task-tracker/internal/middleware"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит код и описание ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

// HandleError преобразует доменные ошибки в HTTP ответы
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.MapErrorToCode(err)

	switch code {
	case domain.CodeValidation, domain.CodeInvalidStatus:
		RespondWithError(w, r, http.StatusBadRequest, string(code), err.Error())
	case domain.CodeNotMember, domain.CodeForbidden:
		RespondWithError(w, r, http.StatusForbidden, string(code), err.Error())
	case domain.CodeUserExists, domain.CodeNoCandidate:
		RespondWithError(w, r, http.StatusConflict, string(code), err.Error())
	case domain.CodeNotFound:
		RespondWithError(w, r, http.StatusNotFound, string(code), err.Error())
	case domain.CodeUnauthorized:
		RespondWithError(w, r, http.StatusUnauthorized, string(code), "unauthorized")
	default:
		if logger := loggerFrom(r); logger != nil {
			ctx := r.Context()
			logger.Error("request failed",
				"path", r.URL.Path,
				"user_id", middleware.GetUserIDFromContext(ctx),
				"username", middleware.GetUsernameFromContext(ctx),
				"error", err,
			)
		}
		RespondWithError(w, r, http.StatusInternalServerError, string(domain.CodeInternal), "internal server error")
	}
}
