package reports

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

const (
	salesLogSheet      = "Sales log"
	salesLogDateLayout = "2006-01-02 15:04"
)

// TipsCSVHeader заголовок CSV выгрузки чаевых
var TipsCSVHeader = []string{"Team member", "Tips collected", "Tips refunded", "Total tips"}

// WriteTipsCSV пишет сводку по чаевым в CSV: заголовок, строка Total, строки мастеров
func WriteTipsCSV(w io.Writer, summary *domain.TipsSummary) error {
	cw := csv.NewWriter(w)

	records := make([][]string, 0, len(summary.Rows)+2)
	records = append(records, TipsCSVHeader, tipsRecord(summary.Total))
	for _, row := range summary.Rows {
		records = append(records, tipsRecord(row))
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("%w: tips csv: %v", ErrExport, err)
	}
	return nil
}

func tipsRecord(r domain.TipsRow) []string {
	return []string{
		r.TeamMember,
		domain.FormatMoney(r.Collected),
		domain.FormatMoney(r.Refunded),
		domain.FormatMoney(r.Total),
	}
}

// WriteSalesLogXLSX пишет журнал продаж в XLSX (лист "Sales log", 18 колонок)
func WriteSalesLogXLSX(w io.Writer, entries []*domain.SalesLogEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", salesLogSheet); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrExport, err)
	}

	header := make([]interface{}, 0, len(domain.SalesLogHeaders))
	for _, h := range domain.SalesLogHeaders {
		header = append(header, h)
	}
	if err := f.SetSheetRow(salesLogSheet, "A1", &header); err != nil {
		return fmt.Errorf("%w: write header: %v", ErrExport, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("%w: header style: %v", ErrExport, err)
	}
	if err := f.SetRowStyle(salesLogSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("%w: header style: %v", ErrExport, err)
	}

	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("%w: cell name: %v", ErrExport, err)
		}

		row := []interface{}{
			e.SaleDate.Format(salesLogDateLayout),
			e.ServiceID,
			e.Location,
			e.Type,
			e.Item,
			e.Category,
			e.Client,
			e.TeamMember,
			e.Channel,
			e.GrossSales.InexactFloat64(),
			e.ItemDiscounts.InexactFloat64(),
			e.CartDiscounts.InexactFloat64(),
			e.TotalDiscounts.InexactFloat64(),
			e.Refunds.InexactFloat64(),
			e.NetSales.InexactFloat64(),
			e.Taxes.InexactFloat64(),
			e.TotalSales.InexactFloat64(),
			string(e.PaymentType),
		}
		if err := f.SetSheetRow(salesLogSheet, cell, &row); err != nil {
			return fmt.Errorf("%w: write row %d: %v", ErrExport, i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: write workbook: %v", ErrExport, err)
	}
	return nil
}
