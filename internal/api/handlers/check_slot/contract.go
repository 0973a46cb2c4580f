package check_slot

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
)

type AppointmentService interface {
	IsSlotBooked(ctx context.Context, req *models.SlotCheckRequest) (*models.SlotCheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
