package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// ServiceRepository интерфейс репозитория меню услуг
type ServiceRepository interface {
	List(ctx context.Context, search string) ([]*domain.CatalogService, error)
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
