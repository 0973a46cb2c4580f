package list_services

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
// Query params: search (опционально, подстрока названия)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.service.ListServices(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: search=%q, error=%v", search, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
