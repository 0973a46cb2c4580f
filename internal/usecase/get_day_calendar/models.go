package get_day_calendar

import (
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// Request запрос календаря на день
type Request struct {
	Date time.Time
}

// Response календарь на день
type Response struct {
	Date              time.Time
	TimeSlots         []types.TimeString
	WeekDates         []time.Time
	CurrentTimeOffset *int // минуты от 08:00, nil если индикатор не показывается
	Columns           []Column
}

// Column колонка мастера
type Column struct {
	Staff        *domain.Staff
	Appointments []Card
}

// Card услуга записи в колонке мастера вместе с ее положением
type Card struct {
	Appointment *domain.Appointment
	Service     *domain.AppointmentService // nil для записи без услуг
	Layout      domain.Layout
}
