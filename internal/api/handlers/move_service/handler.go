package move_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	moveService "github.com/m04kA/SMC-SalonCalendar/internal/usecase/move_service"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput         = "некорректные данные переноса"
	msgInvalidTimeSlot      = "время должно совпадать с сеткой 08:00-23:45 с шагом 15 минут"
	msgSlotNotAvailable     = "выбранное время у мастера уже занято"
	msgScheduleLocked       = "расписание мастера сейчас изменяется, повторите попытку"
	msgNotFound             = "запись не найдена"
	msgServiceNotFound      = "услуга не найдена в записи"
	msgStaffNotFound        = "мастер не найден"
	msgCannotMove           = "оплаченную или отмененную запись нельзя изменить"
)

type Handler struct {
	useCase MoveServiceUseCase
	logger  Logger
}

func NewHandler(useCase MoveServiceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/services/{serviceId}/move
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/services/{serviceId}/move - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}
	serviceID := vars["serviceId"]

	var req MoveServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/services/{serviceId}/move - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/services/{serviceId}/move - Invalid start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &moveService.Request{
		AppointmentID: appointmentID,
		ServiceID:     serviceID,
		StaffID:       req.StaffID,
		StartTime:     startTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, moveService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, moveService.ErrInvalidTimeSlot):
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, moveService.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, moveService.ErrServiceNotFound):
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, moveService.ErrStaffNotFound):
			handlers.RespondNotFound(w, msgStaffNotFound)

		case errors.Is(err, moveService.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /appointments/{id}/services/{serviceId}/move - Slot not available: appointment_id=%d, service_id=%s, staff_id=%d, start=%s",
				appointmentID, serviceID, req.StaffID, startTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, moveService.ErrScheduleLocked):
			handlers.RespondConflict(w, msgScheduleLocked)

		case errors.Is(err, moveService.ErrCannotMove):
			handlers.RespondUnprocessable(w, msgCannotMove)

		default:
			h.logger.Error("PATCH /appointments/{id}/services/{serviceId}/move - Failed to move service: appointment_id=%d, service_id=%s, error=%v",
				appointmentID, serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/services/{serviceId}/move - Service moved: appointment_id=%d, service_id=%s, staff_id=%d, start=%s",
		appointmentID, serviceID, req.StaffID, startTime)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment))
}
