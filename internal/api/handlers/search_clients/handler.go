package search_clients

import (
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients
// Query params: search (имя или телефон)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	search := strings.TrimSpace(r.URL.Query().Get("search"))

	result, err := h.service.Search(r.Context(), search)
	if err != nil {
		h.logger.Error("GET /clients - Failed to search clients: search=%q, error=%v", search, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
