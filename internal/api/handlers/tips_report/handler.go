package tips_report

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports"
)

const (
	msgInvalidParams = "некорректные параметры, ожидаются from и to в формате YYYY-MM-DD"

	csvContentType = "text/csv; charset=utf-8"
)

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

// Register регистрирует маршруты отчета по чаевым
// Выгрузка вынесена на отдельный путь, чтобы /reports/tips/{member} принимал любое имя мастера.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/reports/tips", h.Handle).Methods(http.MethodGet)
	r.HandleFunc("/reports/tips-export", h.HandleExport).Methods(http.MethodGet)
	r.HandleFunc("/reports/tips/{member}", h.HandleMember).Methods(http.MethodGet)
}

// Handle GET /api/v1/reports/tips
// Query params: teamMember, from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/tips - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.TipsSummary(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /reports/tips", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExport GET /api/v1/reports/tips-export
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/tips-export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	data, err := h.service.ExportTipsCSV(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /reports/tips-export", err)
		return
	}

	filename := fmt.Sprintf("tips-%s.csv", time.Now().Format("20060102-150405"))
	handlers.RespondFile(w, csvContentType, filename, data)
}

// HandleMember GET /api/v1/reports/tips/{member}
// Детализация чаевых одного мастера за период.
func (h *Handler) HandleMember(w http.ResponseWriter, r *http.Request) {
	member := mux.Vars(r)["member"]

	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/tips/{member} - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.TipDetails(r.Context(), member, req)
	if err != nil {
		h.respondServiceError(w, "GET /reports/tips/{member}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reports.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
