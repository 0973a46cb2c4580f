package create_appointment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID  *int64           // ID клиента (nil для walk-in)
	StaffID   int64            // мастер, в колонку которого создается запись
	Date      time.Time        // дата записи (без времени)
	StartTime types.TimeString // слот начала, например "10:15"
	Notes     *string
	Services  []ServiceRequest
}

// ServiceRequest услуга в запросе
type ServiceRequest struct {
	CatalogServiceID int64
	StaffID          *int64 // по умолчанию мастер записи
	Tip              decimal.Decimal
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
