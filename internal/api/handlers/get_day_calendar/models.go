package get_day_calendar

import (
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	getDayCalendar "github.com/m04kA/SMC-SalonCalendar/internal/usecase/get_day_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Date              string           `json:"date"`
	TimeSlots         []string         `json:"timeSlots"`
	WeekDates         []string         `json:"weekDates"`
	CurrentTimeOffset *int             `json:"currentTimeOffset,omitempty"`
	Columns           []ColumnResponse `json:"columns"`
}

// ColumnResponse колонка мастера
type ColumnResponse struct {
	StaffID      int64          `json:"staffId"`
	StaffName    string         `json:"staffName"`
	Initial      string         `json:"initial"`
	Appointments []CardResponse `json:"appointments"`
}

// CardResponse карточка услуги записи в колонке мастера
// Service пустой для записи без услуг, тогда карточка занимает всю запись.
type CardResponse struct {
	models.AppointmentResponse
	Service *models.ServiceResponse `json:"service,omitempty"`
	Layout  LayoutResponse          `json:"layout"`
}

// LayoutResponse положение карточки: top/height в слотах, width/left в процентах
type LayoutResponse struct {
	ConcurrentCount int     `json:"concurrentCount"`
	Position        int     `json:"position"`
	WidthPercent    float64 `json:"widthPercent"`
	LeftPercent     float64 `json:"leftPercent"`
	Top             float64 `json:"top"`
	Height          float64 `json:"height"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		TimeSlots:         make([]string, 0, len(resp.TimeSlots)),
		WeekDates:         make([]string, 0, len(resp.WeekDates)),
		CurrentTimeOffset: resp.CurrentTimeOffset,
		Columns:           make([]ColumnResponse, 0, len(resp.Columns)),
	}

	for _, slot := range resp.TimeSlots {
		out.TimeSlots = append(out.TimeSlots, slot.String())
	}
	for _, d := range resp.WeekDates {
		out.WeekDates = append(out.WeekDates, d.Format(domain.DateFormat))
	}

	for _, col := range resp.Columns {
		column := ColumnResponse{
			StaffID:      col.Staff.ID,
			StaffName:    col.Staff.Name,
			Initial:      col.Staff.Initial,
			Appointments: make([]CardResponse, 0, len(col.Appointments)),
		}
		for _, card := range col.Appointments {
			cardResp := CardResponse{
				AppointmentResponse: *models.FromDomainAppointment(card.Appointment),
				Layout: LayoutResponse{
					ConcurrentCount: card.Layout.ConcurrentCount,
					Position:        card.Layout.Position,
					WidthPercent:    card.Layout.WidthPercent,
					LeftPercent:     card.Layout.LeftPercent,
					Top:             card.Layout.Top,
					Height:          card.Layout.Height,
				},
			}
			if card.Service != nil {
				service := models.FromDomainService(card.Service)
				cardResp.Service = &service
			}
			column.Appointments = append(column.Appointments, cardResp)
		}
		out.Columns = append(out.Columns, column)
	}

	return out
}
