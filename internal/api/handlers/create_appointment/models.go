package create_appointment

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-SalonCalendar/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID  *int64           `json:"clientId,omitempty"` // не указан для walk-in
	StaffID   int64            `json:"staffId"`
	Date      string           `json:"date"`      // "2025-06-04"
	StartTime string           `json:"startTime"` // "10:15"
	Notes     *string          `json:"notes,omitempty"`
	Services  []ServiceRequest `json:"services"`
}

// ServiceRequest услуга в запросе
type ServiceRequest struct {
	CatalogServiceID int64            `json:"catalogServiceId"`
	StaffID          *int64           `json:"staffId,omitempty"`
	Tip              *decimal.Decimal `json:"tip,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}

	services := make([]createAppointment.ServiceRequest, 0, len(r.Services))
	for _, s := range r.Services {
		tip := decimal.Zero
		if s.Tip != nil {
			tip = *s.Tip
		}
		services = append(services, createAppointment.ServiceRequest{
			CatalogServiceID: s.CatalogServiceID,
			StaffID:          s.StaffID,
			Tip:              tip,
		})
	}

	return &createAppointment.Request{
		ClientID:  r.ClientID,
		StaffID:   r.StaffID,
		Date:      date,
		StartTime: startTime,
		Notes:     r.Notes,
		Services:  services,
	}, nil
}
