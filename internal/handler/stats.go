package handler

import (
	"net/http"

	"github.com/aidar/task-tracker/internal/service"
)

// StatsHandler отдает счетчики по пользователям, проектам и задачам
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler создает новый StatsHandler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats обрабатывает GET /stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetStats(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, stats)
}

// GetUserStats обрабатывает GET /stats/user?user_id=...; без user_id отдает статистику текущего пользователя
func (h *StatsHandler) GetUserStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.GetUserStats(r.Context(), userIDOrSelf(r))
	if err != nil {
		HandleError(w, r, err)
		return
	}
	RespondWithJSON(w, r, http.StatusOK, stats)
}
