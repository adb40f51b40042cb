package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"property-advisor/internal/analysis"
	"property-advisor/internal/config"
	"property-advisor/internal/data"
	"property-advisor/internal/invest"
	"property-advisor/internal/report"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "analyze":
		cmdAnalyze(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli analyze --price 500000 --rent 30000 --expenses 8000 --years 5 [--config examples/config.yaml] [--csv schedule.csv] [--xlsx report.xlsx]")
	fmt.Println("  cli rank --properties examples/properties.json [--config examples/config.yaml] [--limit 10]")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - analyze prints the full metric breakdown and a 0-10 recommendation")
	fmt.Println("  - rank scores every property in the JSON file and sorts them")
}

func cmdAnalyze(args []string) {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	price := fs.Float64("price", 0, "Purchase price (required)")
	rent := fs.Float64("rent", -1, "Annual rental income (-1 = assume 5% of price)")
	expenses := fs.Float64("expenses", -1, "Annual operating expenses (-1 = assume 2% of price)")
	years := fs.Int("years", 0, "Holding period in years (0 = default 5)")
	cfgPath := fs.String("config", "", "Path to YAML config")
	csvOut := fs.String("csv", "", "Optional: write appreciation schedule CSV")
	xlsxOut := fs.String("xlsx", "", "Optional: write full xlsx report")
	_ = fs.Parse(args)

	if *price <= 0 {
		fmt.Println("--price is required and must be > 0")
		os.Exit(2)
	}

	engine := buildEngine(*cfgPath)

	in := invest.PropertyInput{
		PurchasePrice:      *price,
		HoldingPeriodYears: *years,
	}
	if *rent >= 0 {
		in.AnnualRentalIncome = rent
	}
	if *expenses >= 0 {
		in.OperatingExpenses = expenses
	}

	a, err := engine.ComprehensiveAnalysis(in)
	if err != nil {
		fmt.Printf("analysis failed: %v\n", err)
		os.Exit(1)
	}
	rec := engine.Recommend(a)

	printAnalysis(a, rec)

	if *csvOut != "" {
		if err := report.WriteScheduleCSV(*csvOut, a); err != nil {
			fmt.Printf("failed to write CSV: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("\nwrote schedule to %s\n", *csvOut)
	}
	if *xlsxOut != "" {
		if err := report.WriteWorkbook(*xlsxOut, a, rec); err != nil {
			fmt.Printf("failed to write xlsx: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("wrote report to %s\n", *xlsxOut)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	propsPath := fs.String("properties", "examples/properties.json", "Path to candidate properties JSON")
	cfgPath := fs.String("config", "", "Path to YAML config")
	limit := fs.Int("limit", 0, "Optional: show only the top N (0=all)")
	asJSON := fs.Bool("json", false, "Print machine-readable JSON instead of a table")
	_ = fs.Parse(args)

	engine := buildEngine(*cfgPath)

	pf, err := data.LoadPropertiesJSON(*propsPath)
	if err != nil {
		fmt.Printf("failed to load properties: %v\n", err)
		os.Exit(1)
	}

	ranked, err := analysis.RankProperties(engine, data.Candidates(pf))
	if err != nil {
		fmt.Printf("ranking failed: %v\n", err)
		os.Exit(1)
	}
	if *limit > 0 && *limit < len(ranked) {
		ranked = ranked[:*limit]
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(ranked); err != nil {
			fmt.Printf("failed to encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("%-4s %-24s %-6s %-10s %-10s %-12s\n", "rank", "name", "score", "roi%", "yield%", "cash flow/yr")
	for _, r := range ranked {
		fmt.Printf("%-4d %-24s %-6d %-10.2f %-10.2f %-12.2f\n",
			r.Rank, r.Name, r.Score,
			r.Analysis.ROI.ROIPercentage,
			r.Analysis.RentalYield.NetYieldPercentage,
			r.Analysis.CashFlow.AnnualCashFlow)
	}
}

func buildEngine(cfgPath string) *invest.Engine {
	market := config.MarketConfig{}
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("failed to load config: %v\n", err)
			os.Exit(1)
		}
		market = cfg.Market
	}

	engine, err := invest.New(market.ToRates())
	if err != nil {
		fmt.Printf("invalid market rates: %v\n", err)
		os.Exit(1)
	}
	return engine
}

func printAnalysis(a *invest.Analysis, rec invest.Recommendation) {
	fmt.Printf("Property price:        %.2f\n", a.PropertyPrice)
	fmt.Println()
	fmt.Printf("ROI:                   %.2f%%\n", a.ROI.ROIPercentage)
	fmt.Printf("Net profit:            %.2f\n", a.ROI.NetProfit)
	fmt.Printf("Future value:          %.2f\n", a.ROI.FuturePropertyValue)
	fmt.Printf("Gross rental yield:    %.2f%%\n", a.RentalYield.GrossYieldPercentage)
	fmt.Printf("Net rental yield:      %.2f%%\n", a.RentalYield.NetYieldPercentage)
	fmt.Printf("Cap rate:              %.2f%%\n", a.CapRate.CapRatePercentage)
	fmt.Printf("Monthly cash flow:     %.2f\n", a.CashFlow.MonthlyCashFlow)
	fmt.Printf("Annual cash flow:      %.2f\n", a.CashFlow.AnnualCashFlow)
	fmt.Printf("Break-even:            %s\n", a.BreakEven.Message)
	fmt.Println()
	fmt.Printf("Score:                 %d/10\n", rec.Score)
	fmt.Printf("Verdict:               %s\n", rec.OverallRecommendation)
	for _, msg := range rec.DetailedRecommendations {
		fmt.Printf("  - %s\n", msg)
	}
}
