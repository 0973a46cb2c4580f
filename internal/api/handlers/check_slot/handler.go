package check_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
)

const msgInvalidParams = "ожидаются параметры staffId, date (YYYY-MM-DD) и time (HH:MM)"

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/slots/booked
// Query params: staffId, date, time, excludeAppointmentId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req, err := ToServiceRequest(q.Get("staffId"), q.Get("date"), q.Get("time"), q.Get("excludeAppointmentId"))
	if err != nil {
		h.logger.Warn("GET /calendar/slots/booked - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.IsSlotBooked(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /calendar/slots/booked - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /calendar/slots/booked - Failed to check slot: staff_id=%d, error=%v", req.StaffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
