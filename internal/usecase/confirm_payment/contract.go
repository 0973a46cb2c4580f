package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/pkg/asyncqueue"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	MarkCompleted(ctx context.Context, id int64, paymentRef string) error
}

// SaleRepository интерфейс репозитория продаж
type SaleRepository interface {
	NextSerial(ctx context.Context) (int64, error)
	Create(ctx context.Context, sale *domain.Sale) (*domain.Sale, error)
	InsertSalesLog(ctx context.Context, entries []*domain.SalesLogEntry) error
}

// SaleMirror копирование продажи во внешнее табличное хранилище
type SaleMirror interface {
	MirrorSale(ctx context.Context, appointment *domain.Appointment, sale *domain.Sale) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// JobDispatcher очередь фоновых задач
type JobDispatcher interface {
	Dispatch(job asyncqueue.Job) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
