package team_performance

import (
	"context"

	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

type ReportService interface {
	TeamPerformance(ctx context.Context, req *models.TeamPerformanceRequest) (*models.TeamPerformanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
