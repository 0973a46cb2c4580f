package move_service

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointment id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	if !domain.IsGridSlot(req.StartTime) {
		return fmt.Errorf("%w: %s is not a 15-minute slot between 08:00 and 23:45", ErrInvalidTimeSlot, req.StartTime)
	}
	return nil
}
