package report

import (
	"encoding/csv"
	"os"
	"strconv"

	"property-advisor/internal/invest"
)

// WriteScheduleCSV writes the year-by-year appreciation schedule of an
// analysis to path.
func WriteScheduleCSV(path string, a *invest.Analysis) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"year",
		"property_value",
		"appreciation_amount",
		"appreciation_percentage",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, y := range a.Appreciation.Schedule {
		row := []string{
			strconv.Itoa(y.Year),
			fmtFloat(y.PropertyValue),
			fmtFloat(y.AppreciationAmount),
			fmtFloat(y.AppreciationPercentage),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
