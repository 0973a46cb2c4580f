package reports

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// SaleRepository интерфейс репозитория продаж и журнала продаж
type SaleRepository interface {
	GetByPaymentRef(ctx context.Context, paymentRef string) (*domain.Sale, error)
	ListSalesLog(ctx context.Context, filter domain.SalesLogFilter) ([]*domain.SalesLogEntry, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// StaffRepository интерфейс репозитория мастеров
type StaffRepository interface {
	List(ctx context.Context) ([]*domain.Staff, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
