package invest

import (
	"errors"
	"fmt"
	"math"
)

// Engine computes investment metrics for a single property. It is stateless
// across calls: the only fixed state is the Rates set at construction, so one
// instance is safe for concurrent use.
type Engine struct {
	rates Rates
}

func New(rates Rates) (*Engine, error) {
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rates: %w", err)
	}
	return &Engine{rates: rates}, nil
}

func (e *Engine) Rates() Rates { return e.rates }

// PropertyInput describes one property for a comprehensive analysis.
// Optional fields are pointers so that "not provided" and "explicitly zero"
// stay distinguishable.
type PropertyInput struct {
	PurchasePrice      float64
	AnnualRentalIncome *float64 // default: 5% of purchase price
	OperatingExpenses  *float64 // default: 2% of purchase price
	HoldingPeriodYears int      // default: 5
}

// Validate checks the engine preconditions. Range validation of rates and
// request-level fields belongs to the HTTP layer; this only rejects inputs
// the arithmetic cannot tolerate.
func (in PropertyInput) Validate() error {
	if in.PurchasePrice <= 0 {
		return errors.New("purchase price must be > 0")
	}
	if in.AnnualRentalIncome != nil && *in.AnnualRentalIncome < 0 {
		return errors.New("annual rental income must be >= 0")
	}
	if in.OperatingExpenses != nil && *in.OperatingExpenses < 0 {
		return errors.New("operating expenses must be >= 0")
	}
	if in.HoldingPeriodYears < 0 {
		return errors.New("holding period must not be negative")
	}
	return nil
}

// CalculateROI computes total return over the holding period:
// appreciation gain plus net rental income, relative to purchase price.
func (e *Engine) CalculateROI(purchasePrice, annualRentalIncome, operatingExpenses float64, holdingPeriodYears int) ROIResult {
	totalRentalIncome := annualRentalIncome * float64(holdingPeriodYears)
	totalExpenses := operatingExpenses * float64(holdingPeriodYears)

	futureValue := purchasePrice * math.Pow(1+e.rates.AppreciationRate, float64(holdingPeriodYears))

	netProfit := (futureValue - purchasePrice) + (totalRentalIncome - totalExpenses)

	return ROIResult{
		ROIPercentage:       (netProfit / purchasePrice) * 100,
		NetProfit:           netProfit,
		FuturePropertyValue: futureValue,
		TotalRentalIncome:   totalRentalIncome,
		TotalExpenses:       totalExpenses,
	}
}

// CalculateRentalYield computes gross yield and net yield after the standard
// maintenance + vacancy expense estimate.
func (e *Engine) CalculateRentalYield(purchasePrice, annualRentalIncome float64) RentalYieldResult {
	grossYield := (annualRentalIncome / purchasePrice) * 100

	annualExpenses := purchasePrice * (e.rates.MaintenanceRate + e.rates.VacancyRate)
	netAnnualIncome := annualRentalIncome - annualExpenses

	return RentalYieldResult{
		GrossYieldPercentage: grossYield,
		NetYieldPercentage:   (netAnnualIncome / purchasePrice) * 100,
		AnnualRentalIncome:   annualRentalIncome,
		AnnualExpenses:       annualExpenses,
		NetAnnualIncome:      netAnnualIncome,
	}
}

// CalculateAppreciation builds the year-by-year compounded value schedule.
// A nil appreciationRate uses the engine rate. Each year compounds on the
// previous year's value; amounts and percentages are cumulative vs the
// purchase price.
func (e *Engine) CalculateAppreciation(purchasePrice float64, years int, appreciationRate *float64) AppreciationResult {
	rate := e.rates.AppreciationRate
	if appreciationRate != nil {
		rate = *appreciationRate
	}

	schedule := make([]AppreciationYear, 0, years)
	currentValue := purchasePrice

	for year := 1; year <= years; year++ {
		currentValue = currentValue * (1 + rate)
		amount := currentValue - purchasePrice
		schedule = append(schedule, AppreciationYear{
			Year:                   year,
			PropertyValue:          currentValue,
			AppreciationAmount:     amount,
			AppreciationPercentage: (amount / purchasePrice) * 100,
		})
	}

	return AppreciationResult{
		Schedule:                    schedule,
		FinalValue:                  currentValue,
		TotalAppreciation:           currentValue - purchasePrice,
		TotalAppreciationPercentage: ((currentValue - purchasePrice) / purchasePrice) * 100,
	}
}

// CashFlowExpenses carries the annual expense inputs for CalculateCashFlow.
// Maintenance is a pointer: nil means "estimate as purchase price times the
// maintenance rate", while an explicit zero is honored as zero.
type CashFlowExpenses struct {
	MortgagePayment float64
	PropertyTax     float64
	Insurance       float64
	Maintenance     *float64
}

// CalculateCashFlow computes annual and monthly cash flow after vacancy and
// the supplied expenses.
func (e *Engine) CalculateCashFlow(purchasePrice, annualRentalIncome float64, expenses CashFlowExpenses) CashFlowResult {
	maintenance := purchasePrice * e.rates.MaintenanceRate
	if expenses.Maintenance != nil {
		maintenance = *expenses.Maintenance
	}

	totalExpenses := expenses.MortgagePayment + expenses.PropertyTax + expenses.Insurance + maintenance
	effectiveRentalIncome := annualRentalIncome * (1 - e.rates.VacancyRate)

	annualCashFlow := effectiveRentalIncome - totalExpenses

	return CashFlowResult{
		AnnualCashFlow:        annualCashFlow,
		MonthlyCashFlow:       annualCashFlow / 12,
		EffectiveRentalIncome: effectiveRentalIncome,
		TotalAnnualExpenses:   totalExpenses,
		CashOnCashReturn:      (annualCashFlow / purchasePrice) * 100,
	}
}

// CalculateCapRate computes net operating income over purchase price.
// A nil operatingExpenses uses the standard maintenance + vacancy estimate.
func (e *Engine) CalculateCapRate(purchasePrice, annualRentalIncome float64, operatingExpenses *float64) CapRateResult {
	opEx := purchasePrice * (e.rates.MaintenanceRate + e.rates.VacancyRate)
	if operatingExpenses != nil {
		opEx = *operatingExpenses
	}

	noi := annualRentalIncome - opEx

	return CapRateResult{
		CapRatePercentage:  (noi / purchasePrice) * 100,
		NetOperatingIncome: noi,
		AnnualRentalIncome: annualRentalIncome,
		OperatingExpenses:  opEx,
	}
}

// CalculateBreakEven computes the years of net income needed to recover the
// purchase price. A non-positive net income is a reported condition, not an
// error: BreakEvenYears comes back nil with an explanatory message.
func (e *Engine) CalculateBreakEven(purchasePrice, annualRentalIncome, annualExpenses float64) BreakEvenResult {
	annualNetIncome := annualRentalIncome - annualExpenses

	if annualNetIncome <= 0 {
		return BreakEvenResult{
			BreakEvenYears:  nil,
			AnnualNetIncome: annualNetIncome,
			Message:         "Property generates negative cash flow",
		}
	}

	years := purchasePrice / annualNetIncome
	return BreakEvenResult{
		BreakEvenYears:  &years,
		AnnualNetIncome: annualNetIncome,
		Message:         fmt.Sprintf("Break-even in %.1f years", years),
	}
}

// ComprehensiveAnalysis runs every metric for one property. This is the entry
// point the HTTP layer and CLI use. Defaults: rental income 5% of price,
// operating expenses 2% of price, holding period 5 years.
func (e *Engine) ComprehensiveAnalysis(in PropertyInput) (*Analysis, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	price := in.PurchasePrice

	annualRentalIncome := price * 0.05
	if in.AnnualRentalIncome != nil {
		annualRentalIncome = *in.AnnualRentalIncome
	}
	operatingExpenses := price * 0.02
	if in.OperatingExpenses != nil {
		operatingExpenses = *in.OperatingExpenses
	}
	holdingPeriod := in.HoldingPeriodYears
	if holdingPeriod == 0 {
		holdingPeriod = 5
	}

	return &Analysis{
		PropertyPrice: price,
		ROI:           e.CalculateROI(price, annualRentalIncome, operatingExpenses, holdingPeriod),
		RentalYield:   e.CalculateRentalYield(price, annualRentalIncome),
		Appreciation:  e.CalculateAppreciation(price, holdingPeriod, nil),
		CashFlow:      e.CalculateCashFlow(price, annualRentalIncome, CashFlowExpenses{}),
		CapRate:       e.CalculateCapRate(price, annualRentalIncome, nil),
		BreakEven:     e.CalculateBreakEven(price, annualRentalIncome, operatingExpenses),
	}, nil
}
