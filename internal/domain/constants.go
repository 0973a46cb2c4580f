package domain

import "github.com/shopspring/decimal"

// Параметры сетки календаря
const (
	DayStartMinutes    = 8 * 60 // 08:00
	SlotMinutes        = 15
	SlotsPerDay        = 64 // 08:00 - 23:45
	IndicatorEndMinute = 20 * 60
)

// Параметры раскладки пересекающихся записей
const (
	OverlapToleranceMinutes = 30
	MaxLayoutColumns        = 4
)

// Business validation constants
const (
	MaxNotesLength             = 500
	MaxOtherReasonLength       = 500
	MaxClientNameLength        = 255
	MaxServicesPerAppointment  = 20
	ScheduledHoursPerDay       = 16
	ServiceLineIDLength        = 8
	PaymentSerialDigits        = 6
	DefaultSalesLogSearchLimit = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Значения строк журнала продаж
const (
	SalesLogTypeService   = "Service"
	SalesLogChannel       = "Offline"
	DefaultLocationName   = "Lushways Salon - Barsha"
	DefaultBranchCode     = "LushwaysBarsha"
	WalkInClientName      = "Walk-In"
	DefaultCurrencyPrefix = "AED"
)

// TaxRate ставка налога с продаж (5%)
var TaxRate = decimal.NewFromFloat(0.05)

// ActiveStatuses статусы записей, которые занимают время мастера
var ActiveStatuses = []AppointmentStatus{
	StatusBooked,
	StatusCompleted,
}

// InactiveStatuses статусы записей, которые не отображаются в календаре
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
