package confirm_payment

import (
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Request подтверждение оплаты записи
type Request struct {
	AppointmentID int64
	PaymentMethod string
}

// Response оплаченная запись и созданная продажа
type Response struct {
	Appointment *domain.Appointment
	Sale        *domain.Sale
}
