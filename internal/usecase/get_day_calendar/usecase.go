package get_day_calendar

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// UseCase use case построения календаря на день
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffRepo       StaffRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffRepo StaffRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffRepo:       staffRepo,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute возвращает сетку дня, неделю, индикатор времени и колонки мастеров
// Отмененные записи в календарь не попадают.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := req.Date

	// 1. Мастера
	staff, err := uc.staffRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetDayCalendar: failed to list staff: %v", err)
		return nil, fmt.Errorf("%w: failed to list staff: %v", ErrInternal, err)
	}

	// 2. Активные записи на дату
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("GetDayCalendar: failed to list appointments for %s: %v",
			date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	// 3. Карточки строятся по услугам: каждая услуга в колонке своего мастера
	blocks := domain.Blocks(appointments)
	layouts := domain.ComputeLayout(blocks)

	byStaff := make(map[int64][]Card, len(staff))
	for i, b := range blocks {
		byStaff[b.StaffID] = append(byStaff[b.StaffID], Card{Appointment: b.Appointment, Service: b.Service, Layout: layouts[i]})
	}
	for _, cards := range byStaff {
		sort.SliceStable(cards, func(i, j int) bool {
			if cards[i].Layout.Top != cards[j].Layout.Top {
				return cards[i].Layout.Top < cards[j].Layout.Top
			}
			return cards[i].Layout.Position < cards[j].Layout.Position
		})
	}

	columns := make([]Column, 0, len(staff))
	for _, s := range staff {
		cards := byStaff[s.ID]
		if cards == nil {
			cards = []Card{}
		}
		columns = append(columns, Column{Staff: s, Appointments: cards})
		delete(byStaff, s.ID)
	}
	for staffID, cards := range byStaff {
		uc.logger.Warn("GetDayCalendar: %d card(s) of unknown staff id=%d skipped", len(cards), staffID)
	}

	return &Response{
		Date:              date,
		TimeSlots:         domain.DayTimeSlots(),
		WeekDates:         domain.WeekDates(date),
		CurrentTimeOffset: domain.CurrentTimeOffset(uc.timeProvider.Now(), date),
		Columns:           columns,
	}, nil
}
