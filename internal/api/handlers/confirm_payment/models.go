package confirm_payment

import (
	appointmentModels "github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	reportModels "github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
	confirmPayment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/confirm_payment"
)

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"` // cash, gift, split, courtesy, online, card, loyalty
}

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	Appointment *appointmentModels.AppointmentResponse `json:"appointment"`
	Sale        *reportModels.SaleResponse             `json:"sale"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		Appointment: appointmentModels.FromDomainAppointment(resp.Appointment),
		Sale:        reportModels.FromDomainSale(resp.Sale),
	}
}
