package move_service

import (
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Request перенос услуги в другую колонку и/или время
type Request struct {
	AppointmentID int64
	ServiceID     string
	StaffID       int64            // мастер колонки, куда перенесли услугу
	StartTime     types.TimeString // слот, куда перенесли услугу
}

// Response запись после переноса
type Response struct {
	Appointment *domain.Appointment
}
