package check_slot

import (
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// ToServiceRequest собирает запрос из query параметров staffId, date, time, excludeAppointmentId
func ToServiceRequest(staffIDStr, dateStr, timeStr, excludeStr string) (*models.SlotCheckRequest, error) {
	staffID, err := strconv.ParseInt(staffIDStr, 10, 64)
	if err != nil || staffID <= 0 {
		return nil, fmt.Errorf("invalid staffId %q", staffIDStr)
	}

	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}

	slot, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid time %q: %w", timeStr, err)
	}

	req := &models.SlotCheckRequest{
		StaffID: staffID,
		Date:    date,
		Time:    slot,
	}

	if excludeStr != "" {
		exclude, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid excludeAppointmentId %q", excludeStr)
		}
		req.ExcludeAppointmentID = &exclude
	}

	return req, nil
}
