package jobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/reports/models"
)

// TipsExporter выгрузка сводки чаевых в CSV
type TipsExporter interface {
	ExportTipsCSV(ctx context.Context, req *models.TipsRequest) ([]byte, error)
}

// TipsExport ежедневно сохраняет сводку чаевых за текущий день в каталог
type TipsExport struct {
	reports      TipsExporter
	dir          string
	timeProvider TimeProvider
	logger       Logger
}

// NewTipsExport создает задачу выгрузки чаевых в dir
func NewTipsExport(reports TipsExporter, dir string, timeProvider TimeProvider, logger Logger) *TipsExport {
	return &TipsExport{
		reports:      reports,
		dir:          dir,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (e *TipsExport) Name() string {
	return "tips_export"
}

// Run пишет файл tips-YYYY-MM-DD.csv, существующий файл перезаписывается
func (e *TipsExport) Run(ctx context.Context) error {
	now := e.timeProvider.Now()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	data, err := e.reports.ExportTipsCSV(ctx, &models.TipsRequest{From: &day, To: &day})
	if err != nil {
		return fmt.Errorf("export tips: %w", err)
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(e.dir, fmt.Sprintf("tips-%s.csv", day.Format(domain.DateFormat)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Info("TipsExport: saved %s (%d bytes)", path, len(data))
	return nil
}
