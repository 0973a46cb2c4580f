package get_sale

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports"
)

const msgNotFound = "продажа не найдена"

type Handler struct {
	service SaleService
	logger  Logger
}

func NewHandler(service SaleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sales/{paymentRef}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentRef := mux.Vars(r)["paymentRef"]

	sale, err := h.service.GetSale(r.Context(), paymentRef)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrSaleNotFound):
			h.logger.Warn("GET /sales/{paymentRef} - Sale not found: payment_ref=%s", paymentRef)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /sales/{paymentRef} - Failed to get sale: payment_ref=%s, error=%v", paymentRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sale)
}
