package get_sale

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

type SaleService interface {
	GetSale(ctx context.Context, paymentRef string) (*models.SaleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
