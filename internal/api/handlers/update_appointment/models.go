package update_appointment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	updateAppointment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// UpdateAppointmentRequest HTTP request model
// Список услуг заменяет текущий; услуги с id сохраняют свой ID.
type UpdateAppointmentRequest struct {
	ClientID  *int64           `json:"clientId,omitempty"`
	StaffID   int64            `json:"staffId"`
	Date      string           `json:"date"`
	StartTime string           `json:"startTime"`
	Notes     *string          `json:"notes,omitempty"`
	Services  []ServiceRequest `json:"services"`
}

// ServiceRequest услуга в запросе
type ServiceRequest struct {
	ID               *string          `json:"id,omitempty"`
	CatalogServiceID int64            `json:"catalogServiceId"`
	StaffID          *int64           `json:"staffId,omitempty"`
	Tip              *decimal.Decimal `json:"tip,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*updateAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	services := make([]updateAppointment.ServiceRequest, 0, len(r.Services))
	for _, s := range r.Services {
		tip := decimal.Zero
		if s.Tip != nil {
			tip = *s.Tip
		}
		services = append(services, updateAppointment.ServiceRequest{
			ID:               s.ID,
			CatalogServiceID: s.CatalogServiceID,
			StaffID:          s.StaffID,
			Tip:              tip,
		})
	}

	return &updateAppointment.Request{
		AppointmentID: appointmentID,
		ClientID:      r.ClientID,
		StaffID:       r.StaffID,
		Date:          date,
		StartTime:     startTime,
		Notes:         r.Notes,
		Services:      services,
	}, nil
}
