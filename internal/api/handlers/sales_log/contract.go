package sales_log

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

type ReportService interface {
	SalesLog(ctx context.Context, req *models.SalesLogRequest) (*models.SalesLogResponse, error)
	ExportSalesLogXLSX(ctx context.Context, req *models.SalesLogRequest) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
