package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// Row is one processed batch file in the run report.
type Row struct {
	File       string
	Customer   string
	ItemCount  int
	GrandTotal decimal.Decimal
	Artifact   string
	Status     string
	Detail     string
}

// Row statuses.
const (
	StatusOK      = "ok"
	StatusWarning = "warning"
	StatusFailed  = "failed"
)

// Writer builds the xlsx run report.
type Writer struct {
	now func() time.Time
}

// NewWriter creates a report writer.
func NewWriter() *Writer {
	return &Writer{now: time.Now}
}

// Write saves a run report for the given rows at path. Each run gets a
// fresh identifier so reports from repeated runs are distinguishable
// even when filenames collide.
func (w *Writer) Write(path string, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheetName = "Run Report"
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G"}
	lastCol := columns[len(columns)-1]

	widths := []float64{30, 25, 8, 14, 40, 10, 45}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	failedStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Color: "#CC0000", Size: 10},
	})
	if err != nil {
		return fmt.Errorf("create failed style: %w", err)
	}

	// Title and run metadata.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", "Quotation Batch Run")
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	f.SetCellValue(sheetName, "A2", "Run ID: "+uuid.NewString())
	f.SetCellValue(sheetName, "A3", "Generated: "+w.now().Format("01/02/2006 15:04"))

	// Column headers.
	headers := []string{"File", "Customer", "Items", "Grand Total", "Artifact", "Status", "Detail"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"5", h)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// Data rows.
	rowNum := 6
	failed := 0
	for _, r := range rows {
		n := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheetName, "A"+n, sanitizeCell(r.File))
		f.SetCellValue(sheetName, "B"+n, sanitizeCell(r.Customer))
		if r.Status != StatusFailed {
			f.SetCellValue(sheetName, "C"+n, r.ItemCount)
			f.SetCellValue(sheetName, "D"+n, r.GrandTotal.StringFixed(2))
			f.SetCellValue(sheetName, "E"+n, sanitizeCell(r.Artifact))
		}
		f.SetCellValue(sheetName, "F"+n, r.Status)
		f.SetCellValue(sheetName, "G"+n, sanitizeCell(r.Detail))

		if r.Status == StatusFailed {
			failed++
			f.SetCellStyle(sheetName, "A"+n, lastCol+n, failedStyle)
		}
		rowNum++
	}

	// Summary line.
	rowNum++
	n := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheetName, "A"+n,
		fmt.Sprintf("%d processed, %d succeeded, %d failed", len(rows), len(rows)-failed, failed))
	f.SetCellStyle(sheetName, "A"+n, "A"+n, titleStyle)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// sanitizeCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}
