package main

import (
	"fmt"

	"property-advisor/internal/invest"
)

// Runs the standard worked example: a 500k property renting for 30k/year with
// 8k/year operating expenses, held for 5 years.
func main() {
	engine, err := invest.New(invest.DefaultRates())
	if err != nil {
		panic(err)
	}

	rent := 30000.0
	expenses := 8000.0
	a, err := engine.ComprehensiveAnalysis(invest.PropertyInput{
		PurchasePrice:      500000,
		AnnualRentalIncome: &rent,
		OperatingExpenses:  &expenses,
		HoldingPeriodYears: 5,
	})
	if err != nil {
		panic(err)
	}
	rec := engine.Recommend(a)

	fmt.Println("=== Property Investment Analysis ===")
	fmt.Printf("Purchase price: %.2f\n\n", a.PropertyPrice)

	fmt.Printf("ROI over %d years: %.2f%% (net profit %.2f)\n",
		len(a.Appreciation.Schedule), a.ROI.ROIPercentage, a.ROI.NetProfit)
	fmt.Printf("Gross yield: %.2f%%  Net yield: %.2f%%\n",
		a.RentalYield.GrossYieldPercentage, a.RentalYield.NetYieldPercentage)
	fmt.Printf("Cap rate: %.2f%%\n", a.CapRate.CapRatePercentage)
	fmt.Printf("Cash flow: %.2f/month (%.2f/year)\n",
		a.CashFlow.MonthlyCashFlow, a.CashFlow.AnnualCashFlow)
	fmt.Printf("%s\n\n", a.BreakEven.Message)

	fmt.Println("Appreciation schedule:")
	for _, y := range a.Appreciation.Schedule {
		fmt.Printf("  year %d: %.2f (+%.2f%%)\n",
			y.Year, y.PropertyValue, y.AppreciationPercentage)
	}

	fmt.Printf("\nScore: %d/10\n", rec.Score)
	fmt.Printf("Verdict: %s\n", rec.OverallRecommendation)
	for _, msg := range rec.DetailedRecommendations {
		fmt.Printf("  - %s\n", msg)
	}
}
