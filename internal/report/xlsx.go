package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"property-advisor/internal/invest"
)

// BuildWorkbook renders an analysis as a three-sheet workbook: a metric
// summary, the appreciation schedule and the recommendation notes.
func BuildWorkbook(a *invest.Analysis, rec invest.Recommendation) (*excelize.File, error) {
	f := excelize.NewFile()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, err
	}

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Purchase Price", a.PropertyPrice},
		{"ROI %", a.ROI.ROIPercentage},
		{"Net Profit", a.ROI.NetProfit},
		{"Future Property Value", a.ROI.FuturePropertyValue},
		{"Gross Rental Yield %", a.RentalYield.GrossYieldPercentage},
		{"Net Rental Yield %", a.RentalYield.NetYieldPercentage},
		{"Cap Rate %", a.CapRate.CapRatePercentage},
		{"Monthly Cash Flow", a.CashFlow.MonthlyCashFlow},
		{"Annual Cash Flow", a.CashFlow.AnnualCashFlow},
		{"Cash-on-Cash Return %", a.CashFlow.CashOnCashReturn},
		{"Break-even", a.BreakEven.Message},
	}
	if err := writeRows(f, summarySheet, summaryRows); err != nil {
		return nil, err
	}

	const scheduleSheet = "Schedule"
	if _, err := f.NewSheet(scheduleSheet); err != nil {
		return nil, err
	}
	scheduleRows := [][]interface{}{
		{"Year", "Property Value", "Appreciation", "Appreciation %"},
	}
	for _, y := range a.Appreciation.Schedule {
		scheduleRows = append(scheduleRows, []interface{}{
			y.Year, y.PropertyValue, y.AppreciationAmount, y.AppreciationPercentage,
		})
	}
	if err := writeRows(f, scheduleSheet, scheduleRows); err != nil {
		return nil, err
	}

	const recSheet = "Recommendation"
	if _, err := f.NewSheet(recSheet); err != nil {
		return nil, err
	}
	recRows := [][]interface{}{
		{"Score", rec.Score},
		{"Verdict", rec.OverallRecommendation},
	}
	for i, msg := range rec.DetailedRecommendations {
		recRows = append(recRows, []interface{}{fmt.Sprintf("Note %d", i+1), msg})
	}
	if err := writeRows(f, recSheet, recRows); err != nil {
		return nil, err
	}

	return f, nil
}

// WorkbookBytes builds the workbook and serializes it, for HTTP downloads.
func WorkbookBytes(a *invest.Analysis, rec invest.Recommendation) ([]byte, error) {
	f, err := BuildWorkbook(a, rec)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteWorkbook builds the workbook and saves it to path, for the CLI.
func WriteWorkbook(path string, a *invest.Analysis, rec invest.Recommendation) error {
	f, err := BuildWorkbook(a, rec)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
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
