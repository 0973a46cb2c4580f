package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
)

const readinessTimeout = 2 * time.Second

type statusResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

type Handler struct {
	checks map[string]Pinger
}

// NewHandler создает health handler; checks - зависимости для readiness (имя -> pinger)
func NewHandler(checks map[string]Pinger) *Handler {
	return &Handler{checks: checks}
}

// Live GET /health/live
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// Ready GET /health/ready
// 503, если хотя бы одна зависимость недоступна.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	resp := statusResponse{Status: "ok", Checks: make(map[string]string, len(h.checks))}
	status := http.StatusOK
	for name, p := range h.checks {
		if err := p.PingContext(ctx); err != nil {
			resp.Checks[name] = err.Error()
			resp.Status = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	handlers.RespondJSON(w, status, resp)
}
