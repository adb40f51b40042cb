package data

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPropertiesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "properties.json")
	payload := `{
  "properties": [
    {"name": "downtown-condo", "purchase_price": 500000, "annual_rental_income": 30000, "operating_expenses": 8000, "holding_period_years": 5},
    {"purchase_price": 300000}
  ]
}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatal(err)
	}

	pf, err := LoadPropertiesJSON(path)
	if err != nil {
		t.Fatalf("LoadPropertiesJSON: %v", err)
	}
	if len(pf.Properties) != 2 {
		t.Fatalf("len = %d, want 2", len(pf.Properties))
	}
	if pf.Properties[0].Name != "downtown-condo" {
		t.Errorf("name = %q", pf.Properties[0].Name)
	}
	if pf.Properties[0].AnnualRentalIncome == nil || *pf.Properties[0].AnnualRentalIncome != 30000 {
		t.Errorf("annual rental income = %v", pf.Properties[0].AnnualRentalIncome)
	}
	if pf.Properties[1].AnnualRentalIncome != nil {
		t.Error("omitted income should stay nil")
	}

	cands := Candidates(pf)
	if cands[1].Name != "property-2" {
		t.Errorf("fallback name = %q", cands[1].Name)
	}
	if cands[0].Input.PurchasePrice != 500000 {
		t.Errorf("price = %v", cands[0].Input.PurchasePrice)
	}
}

func TestLoadPropertiesJSON_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(path, []byte(`{"properties": []}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPropertiesJSON(path); err == nil {
		t.Error("expected error for empty property list")
	}
}
