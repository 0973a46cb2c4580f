package sales_log

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports"
)

const (
	msgInvalidParams = "некорректный период, ожидаются from и to в формате YYYY-MM-DD"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
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

// Handle GET /api/v1/reports/sales-log
// Query params: search, from, to (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/sales-log - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.SalesLog(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /reports/sales-log", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleExport GET /api/v1/reports/sales-log/export
// Те же фильтры, что и у журнала; ответ - файл XLSX.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reports/sales-log/export - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	data, err := h.service.ExportSalesLogXLSX(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, "GET /reports/sales-log/export", err)
		return
	}

	filename := fmt.Sprintf("sales-log-%s.xlsx", time.Now().Format("20060102-150405"))
	h.logger.Info("GET /reports/sales-log/export - Exported %d bytes", len(data))
	handlers.RespondFile(w, xlsxContentType, filename, data)
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
