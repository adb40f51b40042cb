package data

import (
	"encoding/json"
	"fmt"
	"os"

	"property-advisor/internal/analysis"
	"property-advisor/internal/invest"
)

// PropertyRecord is one entry of a candidate-properties JSON file.
type PropertyRecord struct {
	Name               string   `json:"name"`
	PurchasePrice      float64  `json:"purchase_price"`
	AnnualRentalIncome *float64 `json:"annual_rental_income,omitempty"`
	OperatingExpenses  *float64 `json:"operating_expenses,omitempty"`
	HoldingPeriodYears int      `json:"holding_period_years,omitempty"`
}

// PropertyFile is the top-level shape of a candidate-properties file.
type PropertyFile struct {
	Properties []PropertyRecord `json:"properties"`
}

// LoadPropertiesJSON reads a candidate-properties file for ranking runs.
func LoadPropertiesJSON(path string) (*PropertyFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf PropertyFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, err
	}
	if len(pf.Properties) == 0 {
		return nil, fmt.Errorf("%s: no properties", path)
	}
	return &pf, nil
}

// Candidates converts loaded records into ranking candidates. Unnamed records
// get a positional name.
func Candidates(pf *PropertyFile) []analysis.Candidate {
	out := make([]analysis.Candidate, 0, len(pf.Properties))
	for i, p := range pf.Properties {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("property-%d", i+1)
		}
		out = append(out, analysis.Candidate{
			Name: name,
			Input: invest.PropertyInput{
				PurchasePrice:      p.PurchasePrice,
				AnnualRentalIncome: p.AnnualRentalIncome,
				OperatingExpenses:  p.OperatingExpenses,
				HoldingPeriodYears: p.HoldingPeriodYears,
			},
		})
	}
	return out
}
