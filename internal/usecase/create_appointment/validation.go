package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// validateRequest проверяет входные данные до обращения к БД
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if req.ClientID != nil && *req.ClientID <= 0 {
		return fmt.Errorf("%w: client id must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !domain.IsGridSlot(req.StartTime) {
		return fmt.Errorf("%w: %s is not a 15-minute slot between 08:00 and 23:45", ErrInvalidTimeSlot, req.StartTime)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if len(req.Services) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}
	if len(req.Services) > domain.MaxServicesPerAppointment {
		return fmt.Errorf("%w: at most %d services per appointment", ErrInvalidInput, domain.MaxServicesPerAppointment)
	}
	for i, s := range req.Services {
		if s.CatalogServiceID <= 0 {
			return fmt.Errorf("%w: services[%d]: catalog service id is required", ErrInvalidInput, i)
		}
		if s.StaffID != nil && *s.StaffID <= 0 {
			return fmt.Errorf("%w: services[%d]: staff id must be positive", ErrInvalidInput, i)
		}
		if s.Tip.IsNegative() {
			return fmt.Errorf("%w: services[%d]: tip must not be negative", ErrInvalidInput, i)
		}
	}

	return nil
}

// catalogIDs уникальные ID услуг меню из запроса
func catalogIDs(services []ServiceRequest) []int64 {
	seen := make(map[int64]struct{}, len(services))
	ids := make([]int64, 0, len(services))
	for _, s := range services {
		if _, ok := seen[s.CatalogServiceID]; ok {
			continue
		}
		seen[s.CatalogServiceID] = struct{}{}
		ids = append(ids, s.CatalogServiceID)
	}
	return ids
}
