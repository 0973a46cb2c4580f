package team_performance

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

const msgInvalidParams = "ожидаются from и to в формате YYYY-MM-DD, from не позже to"

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/team-performance
// Query params: from, to (обязательные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, errFrom := handlers.ParseDate(q.Get("from"))
	to, errTo := handlers.ParseDate(q.Get("to"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /reports/team-performance - Invalid period: from=%q, to=%q", q.Get("from"), q.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.TeamPerformance(r.Context(), &models.TeamPerformanceRequest{From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /reports/team-performance - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
