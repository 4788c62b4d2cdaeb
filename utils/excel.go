package utils

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/sngrmvj/WorkoutWatcher/models"
)

const (
	// MonthlyReportSheet is the single worksheet of the export workbook.
	MonthlyReportSheet = "Monthly Report"

	// XLSXContentType is the MIME type the export is served with.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	reportColumnWidth = 30
	dateLayout        = "2006-01-02"
)

// MonthlyReportHeader is the fixed column order of the export.
var MonthlyReportHeader = []interface{}{"Exercise Category", "Hours", "Minutes", "Seconds", "Timestamp"}

// BuildMonthlyReport renders workout entries into an xlsx workbook: a header
// row followed by one row per entry, columns A:F widened to 30 with wrapped,
// left-aligned text. An empty slice yields a header-only sheet.
func BuildMonthlyReport(entries []models.WorkoutEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MonthlyReportSheet); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(MonthlyReportSheet, "A1", &MonthlyReportHeader); err != nil {
		return nil, err
	}

	for i, entry := range entries {
		row := []interface{}{
			entry.ExerciseCategory,
			entry.Hours,
			entry.Minutes,
			entry.Seconds,
			entry.Timestamp.Format(dateLayout),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(MonthlyReportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	styleID, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left", WrapText: true},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetColStyle(MonthlyReportSheet, "A:F", styleID); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(MonthlyReportSheet, "A", "F", reportColumnWidth); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
