package update_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Request модель запроса на изменение записи
// Список услуг заменяется целиком.
type Request struct {
	AppointmentID int64
	ClientID      *int64 // nil делает запись walk-in
	StaffID       int64
	Date          time.Time
	StartTime     types.TimeString
	Notes         *string
	Services      []ServiceRequest
}

// ServiceRequest услуга в запросе
type ServiceRequest struct {
	ID               *string // ID существующей услуги записи, сохраняется
	CatalogServiceID int64
	StaffID          *int64
	Tip              decimal.Decimal
}

// Response модель ответа с обновленной записью
type Response struct {
	Appointment *domain.Appointment
}
