// Package report renders reports into downloadable documents.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vyapar/backend/internal/domain/finance"
	"github.com/vyapar/backend/internal/domain/trade"
)

// XLSXContentType is the MIME type of the generated workbook
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	summarySheet = "Summary"
	salesSheet   = "Sales"
)

// ExcelExporter writes the daily report as an .xlsx workbook with a
// Summary sheet and a Sales sheet (one row per bill).
type ExcelExporter struct {
	loc   *time.Location
	title cases.Caser
}

// NewExcelExporter creates an exporter that prints times in loc
func NewExcelExporter(loc *time.Location) *ExcelExporter {
	if loc == nil {
		loc = time.Local
	}
	return &ExcelExporter{
		loc:   loc,
		title: cases.Title(language.English),
	}
}

// FileName returns the attachment name for the report's day
func (e *ExcelExporter) FileName(report *finance.DailyReport) string {
	return fmt.Sprintf("daily-report-%s.xlsx", report.Window.Start.Format(finance.DateLayout))
}

// ContentType returns the workbook MIME type
func (e *ExcelExporter) ContentType() string {
	return XLSXContentType
}

// Render builds the workbook
func (e *ExcelExporter) Render(businessName string, report *finance.DailyReport, sales []trade.Sale) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}
	if err := e.writeSummary(f, businessName, report); err != nil {
		return nil, fmt.Errorf("write summary sheet: %w", err)
	}

	if _, err := f.NewSheet(salesSheet); err != nil {
		return nil, err
	}
	if err := e.writeSales(f, sales); err != nil {
		return nil, fmt.Errorf("write sales sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

func (e *ExcelExporter) writeSummary(f *excelize.File, businessName string, report *finance.DailyReport) error {
	rows := [][]any{
		{e.title.String(strings.TrimSpace(businessName))},
		{"Date", report.Window.Start.Format(finance.DateLayout)},
		{},
		{"Total Sales", report.TotalSales.InexactFloat64()},
		{"Total Expenses", report.TotalExpenses.InexactFloat64()},
		{"Net Profit", report.NetProfit.InexactFloat64()},
		{"Sales Count", report.SalesCount},
		{},
		{"Payment Method", "Amount"},
	}
	for _, m := range trade.AllPaymentMethods() {
		rows = append(rows, []any{m.String(), report.SalesByMethod[m].InexactFloat64()})
	}
	return writeRows(f, summarySheet, rows)
}

func (e *ExcelExporter) writeSales(f *excelize.File, sales []trade.Sale) error {
	rows := make([][]any, 0, len(sales)+1)
	rows = append(rows, []any{"Bill No", "Time", "Payment Method", "Customer", "Amount"})
	for _, s := range sales {
		rows = append(rows, []any{
			s.BillNumber,
			s.CreatedAt.In(e.loc).Format("15:04:05"),
			s.PaymentMethod.String(),
			s.CustomerName,
			s.TotalAmount.InexactFloat64(),
		})
	}
	return writeRows(f, salesSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
