package tips_report

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

type ReportService interface {
	TipsSummary(ctx context.Context, req *models.TipsRequest) (*models.TipsSummaryResponse, error)
	ExportTipsCSV(ctx context.Context, req *models.TipsRequest) ([]byte, error)
	TipDetails(ctx context.Context, member string, req *models.TipsRequest) (*models.TipDetailsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
