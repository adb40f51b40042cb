package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"property-advisor/internal/invest"
)

func sampleAnalysis(t *testing.T) (*invest.Analysis, invest.Recommendation) {
	t.Helper()
	e, err := invest.New(invest.DefaultRates())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rent := 30000.0
	opEx := 8000.0
	a, err := e.ComprehensiveAnalysis(invest.PropertyInput{
		PurchasePrice:      500000,
		AnnualRentalIncome: &rent,
		OperatingExpenses:  &opEx,
		HoldingPeriodYears: 5,
	})
	if err != nil {
		t.Fatalf("ComprehensiveAnalysis: %v", err)
	}
	return a, e.Recommend(a)
}

func TestWriteScheduleCSV(t *testing.T) {
	a, _ := sampleAnalysis(t)

	path := filepath.Join(t.TempDir(), "schedule.csv")
	if err := WriteScheduleCSV(path, a); err != nil {
		t.Fatalf("WriteScheduleCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	// Header plus one row per holding year.
	if len(rows) != 6 {
		t.Fatalf("row count = %d, want 6", len(rows))
	}
	if rows[0][0] != "year" || rows[0][1] != "property_value" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "1" || rows[5][0] != "5" {
		t.Errorf("year column = %s..%s", rows[1][0], rows[5][0])
	}
	if rows[1][1] != "520000.00" {
		t.Errorf("year 1 value = %s, want 520000.00", rows[1][1])
	}
}

func TestWorkbookBytes(t *testing.T) {
	a, rec := sampleAnalysis(t)

	raw, err := WorkbookBytes(a, rec)
	if err != nil {
		t.Fatalf("WorkbookBytes: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := map[string]bool{"Summary": false, "Schedule": false, "Recommendation": false}
	for _, s := range sheets {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("sheet %q missing (have %v)", name, sheets)
		}
	}

	verdict, err := f.GetCellValue("Recommendation", "B2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if verdict != rec.OverallRecommendation {
		t.Errorf("verdict cell = %q, want %q", verdict, rec.OverallRecommendation)
	}

	year1, err := f.GetCellValue("Schedule", "A2")
	if err != nil {
		t.Fatalf("GetCellValue: %v", err)
	}
	if year1 != "1" {
		t.Errorf("schedule first year = %q", year1)
	}
}
