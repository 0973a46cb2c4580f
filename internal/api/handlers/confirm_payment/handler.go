package confirm_payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	confirmPayment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/confirm_payment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidMethod        = "неизвестный способ оплаты"
	msgNotFound             = "запись не найдена"
	msgCannotPay            = "запись уже оплачена, отменена или не содержит услуг"
	msgInvalidPrice         = "цена одной из услуг не распознана"
)

type Handler struct {
	useCase ConfirmPaymentUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := strconv.ParseInt(mux.Vars(r)["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /appointments/{id}/payment - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	userID, _ := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &confirmPayment.Request{
		AppointmentID: appointmentID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmPayment.ErrInvalidPaymentMethod), errors.Is(err, confirmPayment.ErrInvalidInput):
			h.logger.Warn("POST /appointments/{id}/payment - Invalid input: appointment_id=%d, method=%q",
				appointmentID, req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidMethod)

		case errors.Is(err, confirmPayment.ErrAppointmentNotFound):
			h.logger.Warn("POST /appointments/{id}/payment - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, confirmPayment.ErrCannotPay):
			h.logger.Warn("POST /appointments/{id}/payment - Cannot pay: appointment_id=%d", appointmentID)
			handlers.RespondUnprocessable(w, msgCannotPay)

		case errors.Is(err, confirmPayment.ErrInvalidPrice):
			h.logger.Warn("POST /appointments/{id}/payment - Invalid price: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondUnprocessable(w, msgInvalidPrice)

		default:
			h.logger.Error("POST /appointments/{id}/payment - Failed to confirm payment: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payment - Payment confirmed: appointment_id=%d, payment_ref=%s, user_id=%d",
		appointmentID, result.Sale.PaymentRef, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
