package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

type loggerKey struct{}

// WithLogger кладет логгер в контекст запроса, чтобы HandleError мог записать внутренние ошибки
func WithLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), loggerKey{}, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func loggerFrom(r *http.Request) *slog.Logger {
	logger, _ := r.Context().Value(loggerKey{}).(*slog.Logger)
	return logger
}

// RespondWithJSON отправляет JSON ответ с указанным статус кодом
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	render.Status(r, statusCode)
	render.JSON(w, r, data)
}

// decodeBody читает JSON тело запроса; при ошибке сам отвечает 400
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return false
	}
	return true
}

// requireQuery возвращает обязательный query параметр; при отсутствии отвечает 400
func requireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		RespondWithError(w, r, http.StatusBadRequest, "BAD_REQUEST", name+" query parameter is required")
		return "", false
	}
	return value, true
}
