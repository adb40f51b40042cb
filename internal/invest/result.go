package invest

// ROIResult summarizes total return over the holding period.
type ROIResult struct {
	ROIPercentage       float64 `json:"roi_percentage"`
	NetProfit           float64 `json:"net_profit"`
	FuturePropertyValue float64 `json:"future_property_value"`
	TotalRentalIncome   float64 `json:"total_rental_income"`
	TotalExpenses       float64 `json:"total_expenses"`
}

// RentalYieldResult reports gross and net annual yield.
// NetAnnualIncome may be negative; that is a signal, not an error.
type RentalYieldResult struct {
	GrossYieldPercentage float64 `json:"gross_yield_percentage"`
	NetYieldPercentage   float64 `json:"net_yield_percentage"`
	AnnualRentalIncome   float64 `json:"annual_rental_income"`
	AnnualExpenses       float64 `json:"annual_expenses"`
	NetAnnualIncome      float64 `json:"net_annual_income"`
}

// AppreciationYear is one row of the compounded value projection.
// Amount and percentage are cumulative relative to the purchase price.
type AppreciationYear struct {
	Year                   int     `json:"year"`
	PropertyValue          float64 `json:"property_value"`
	AppreciationAmount     float64 `json:"appreciation_amount"`
	AppreciationPercentage float64 `json:"appreciation_percentage"`
}

type AppreciationResult struct {
	Schedule                    []AppreciationYear `json:"appreciation_schedule"`
	FinalValue                  float64            `json:"final_value"`
	TotalAppreciation           float64            `json:"total_appreciation"`
	TotalAppreciationPercentage float64            `json:"total_appreciation_percentage"`
}

type CashFlowResult struct {
	AnnualCashFlow        float64 `json:"annual_cash_flow"`
	MonthlyCashFlow       float64 `json:"monthly_cash_flow"`
	EffectiveRentalIncome float64 `json:"effective_rental_income"`
	TotalAnnualExpenses   float64 `json:"total_annual_expenses"`
	CashOnCashReturn      float64 `json:"cash_on_cash_return"`
}

type CapRateResult struct {
	CapRatePercentage  float64 `json:"cap_rate_percentage"`
	NetOperatingIncome float64 `json:"net_operating_income"`
	AnnualRentalIncome float64 `json:"annual_rental_income"`
	OperatingExpenses  float64 `json:"operating_expenses"`
}

// BreakEvenResult reports the recovery period for the purchase price.
// BreakEvenYears is nil exactly when the property nets zero or less per year.
type BreakEvenResult struct {
	BreakEvenYears  *float64 `json:"break_even_years"`
	AnnualNetIncome float64  `json:"annual_net_income"`
	Message         string   `json:"message"`
}

// Analysis is the full result aggregate produced by ComprehensiveAnalysis.
// It is built fresh per call and carries no identity of its own.
type Analysis struct {
	PropertyPrice float64            `json:"property_price"`
	ROI           ROIResult          `json:"roi"`
	RentalYield   RentalYieldResult  `json:"rental_yield"`
	Appreciation  AppreciationResult `json:"appreciation"`
	CashFlow      CashFlowResult     `json:"cash_flow"`
	CapRate       CapRateResult      `json:"cap_rate"`
	BreakEven     BreakEvenResult    `json:"break_even"`
}

// Recommendation is the scored verdict derived from an Analysis.
type Recommendation struct {
	Score                   int      `json:"score"`
	OverallRecommendation   string   `json:"overall_recommendation"`
	DetailedRecommendations []string `json:"detailed_recommendations"`
}
