package domain

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "booked"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusBooked, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment запись клиента в календаре
type Appointment struct {
	ID         int64
	ClientID   *int64 // nil для walk-in
	ClientName string
	StaffID    int64
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString
	Notes      *string
	Status     AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time
	PaymentRef         *string

	Services []*AppointmentService

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AppointmentService услуга внутри записи
type AppointmentService struct {
	ID               string // 8 символов, генерируется сервером
	AppointmentID    int64
	CatalogServiceID int64
	Position         int

	// Денормализованные данные услуги
	Name     string
	Duration string
	Price    string
	Category string

	StaffID    int64
	StaffName  string
	StartTime  types.TimeString
	Tip        decimal.Decimal
	Completed  bool
	PaymentRef *string
}

// NewAppointmentService создает услугу записи из позиции меню
// Название, длительность, цена и категория копируются из меню на момент записи.
func NewAppointmentService(catalog *CatalogService, staff *Staff, tip decimal.Decimal) *AppointmentService {
	return &AppointmentService{
		ID:               NewServiceLineID(),
		CatalogServiceID: catalog.ID,
		Name:             catalog.Name,
		Duration:         catalog.Duration,
		Price:            catalog.Price,
		Category:         catalog.Category,
		StaffID:          staff.ID,
		StaffName:        staff.Name,
		Tip:              tip,
	}
}

// DurationMinutes длительность услуги в минутах
func (s *AppointmentService) DurationMinutes() int {
	return ParseDurationMinutes(s.Duration)
}

// EndTime время окончания услуги
func (s *AppointmentService) EndTime() (types.TimeString, error) {
	return s.StartTime.AddMinutes(s.DurationMinutes())
}

// IsActive true, если запись занимает время мастера
func (a *Appointment) IsActive() bool {
	return a.Status == StatusBooked || a.Status == StatusCompleted
}

// IsWalkIn true, если клиент не выбран
func (a *Appointment) IsWalkIn() bool {
	return a.ClientID == nil
}

// CanBeEdited true, если запись можно изменить
func (a *Appointment) CanBeEdited() bool {
	return a.Status == StatusBooked
}

// CanBeCancelled true, если запись можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusBooked
}

// CanBePaid true, если запись можно оплатить
func (a *Appointment) CanBePaid() bool {
	return a.Status == StatusBooked && len(a.Services) > 0
}

// DisplayClientName имя клиента для календаря и журнала продаж
func (a *Appointment) DisplayClientName() string {
	if a.IsWalkIn() || a.ClientName == "" {
		return WalkInClientName
	}
	return a.ClientName
}

// DurationMinutes длительность записи в минутах
func (a *Appointment) DurationMinutes() int {
	d, err := a.EndTime.DiffMinutes(a.StartTime)
	if err != nil || d < 0 {
		return 0
	}
	return d
}

// FindService ищет услугу записи по ID
func (a *Appointment) FindService(serviceID string) *AppointmentService {
	for _, s := range a.Services {
		if s.ID == serviceID {
			return s
		}
	}
	return nil
}

// ScheduleServices проставляет услугам последовательное время начала
// от start и возвращает время окончания записи
func ScheduleServices(start types.TimeString, services []*AppointmentService) (types.TimeString, error) {
	current := start
	for i, s := range services {
		s.Position = i
		s.StartTime = current

		next, err := current.AddMinutes(s.DurationMinutes())
		if err != nil {
			return "", err
		}
		current = next
	}
	return current, nil
}

// RecalculateBounds пересчитывает мастера, начало и конец записи по ее услугам
// Мастер и начало берутся у самой ранней услуги, конец - максимальный конец услуг.
func (a *Appointment) RecalculateBounds() error {
	if len(a.Services) == 0 {
		return nil
	}

	earliest := a.Services[0]
	end, err := earliest.EndTime()
	if err != nil {
		return err
	}

	for _, s := range a.Services[1:] {
		if s.StartTime.IsBefore(earliest.StartTime) {
			earliest = s
		}
		sEnd, err := s.EndTime()
		if err != nil {
			return err
		}
		if sEnd.IsAfter(end) {
			end = sEnd
		}
	}

	a.StaffID = earliest.StaffID
	a.StartTime = earliest.StartTime
	a.EndTime = end
	return nil
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	StaffID         *int64
	ClientID        *int64
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
