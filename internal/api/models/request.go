package models

// InvestmentInput is the request shape for a single property analysis.
// Optional numeric fields are pointers so an omitted field and an explicit
// zero stay distinguishable.
type InvestmentInput struct {
	PurchasePrice float64 `json:"purchase_price" binding:"required,gt=0"`

	// Rental income may be given monthly or annually; annual wins when both
	// are present. When neither is set the engine assumes 5% of price.
	MonthlyRentalIncome *float64 `json:"monthly_rental_income,omitempty" binding:"omitempty,gte=0"`
	AnnualRentalIncome  *float64 `json:"annual_rental_income,omitempty" binding:"omitempty,gte=0"`

	OperatingExpenses  *float64 `json:"operating_expenses,omitempty" binding:"omitempty,gte=0"`
	HoldingPeriodYears int      `json:"holding_period_years,omitempty" binding:"omitempty,gte=1,lte=50"`

	// Loan terms are accepted for schema compatibility with clients but are
	// not consumed by the analytics engine: the analysis models a cash
	// purchase. Mortgage costs enter only through the cash-flow expense
	// inputs.
	DownPaymentPercent *float64 `json:"down_payment_percent,omitempty" binding:"omitempty,gte=0,lte=100"`
	LoanInterestRate   *float64 `json:"loan_interest_rate,omitempty" binding:"omitempty,gte=0,lte=30"`
	LoanTermYears      *int     `json:"loan_term_years,omitempty" binding:"omitempty,gte=1,lte=40"`
}

// RatesOverride lets a request adjust the engine's market assumptions.
type RatesOverride struct {
	AppreciationRate *float64 `json:"appreciation_rate,omitempty" binding:"omitempty,gt=-1,lte=1"`
	VacancyRate      *float64 `json:"vacancy_rate,omitempty" binding:"omitempty,gte=0,lte=1"`
	MaintenanceRate  *float64 `json:"maintenance_rate,omitempty" binding:"omitempty,gte=0,lte=1"`
}

// AnalyzeRequest is the body for POST /api/v1/analyze.
type AnalyzeRequest struct {
	Input InvestmentInput `json:"input" binding:"required"`
	// MarketFile names a preset under the market directory (without .yaml).
	MarketFile string         `json:"market_file,omitempty"`
	Rates      *RatesOverride `json:"rates,omitempty"`
	Options    AnalyzeOptions `json:"options,omitempty"`
}

// AnalyzeOptions contains optional analysis parameters.
type AnalyzeOptions struct {
	IncludeBreakdown bool `json:"include_breakdown,omitempty"` // default: false
}

// InputOverride is a partial InvestmentInput for comparison variations.
// Every field is optional; set fields override the base input.
type InputOverride struct {
	PurchasePrice       *float64 `json:"purchase_price,omitempty" binding:"omitempty,gt=0"`
	MonthlyRentalIncome *float64 `json:"monthly_rental_income,omitempty" binding:"omitempty,gte=0"`
	AnnualRentalIncome  *float64 `json:"annual_rental_income,omitempty" binding:"omitempty,gte=0"`
	OperatingExpenses   *float64 `json:"operating_expenses,omitempty" binding:"omitempty,gte=0"`
	HoldingPeriodYears  *int     `json:"holding_period_years,omitempty" binding:"omitempty,gte=1,lte=50"`
}

// AnalyzeVariation defines one variation for a comparison run.
type AnalyzeVariation struct {
	Name  string        `json:"name" binding:"required"`
	Input InputOverride `json:"input"`
}

// CompareRequest is the body for POST /api/v1/analyze/compare.
type CompareRequest struct {
	BaseInput  InvestmentInput    `json:"base_input" binding:"required"`
	MarketFile string             `json:"market_file,omitempty"`
	Rates      *RatesOverride     `json:"rates,omitempty"`
	Variations []AnalyzeVariation `json:"variations" binding:"required,min=1"`
}

// RankCandidate is one property in a ranking request.
type RankCandidate struct {
	Name  string          `json:"name" binding:"required"`
	Input InvestmentInput `json:"input" binding:"required"`
}

// RankRequest is the body for POST /api/v1/rank.
type RankRequest struct {
	Candidates []RankCandidate `json:"candidates" binding:"required,min=1"`
	MarketFile string          `json:"market_file,omitempty"`
	Rates      *RatesOverride  `json:"rates,omitempty"`
	Limit      int             `json:"limit,omitempty"` // 0 = all
}

// PredictRequest mirrors the feature schema of the external price-prediction
// service and is passed through unchanged.
type PredictRequest struct {
	Area             float64 `json:"area" binding:"required,gt=0"`
	Bedrooms         int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms        int     `json:"bathrooms" binding:"gte=0"`
	Stories          int     `json:"stories" binding:"required,gte=1"`
	MainRoad         string  `json:"mainroad" binding:"required,oneof=yes no"`
	GuestRoom        string  `json:"guestroom" binding:"required,oneof=yes no"`
	Basement         string  `json:"basement" binding:"required,oneof=yes no"`
	HotWaterHeating  string  `json:"hotwaterheating" binding:"required,oneof=yes no"`
	AirConditioning  string  `json:"airconditioning" binding:"required,oneof=yes no"`
	Parking          int     `json:"parking" binding:"gte=0"`
	PrefArea         string  `json:"prefarea" binding:"required,oneof=yes no"`
	FurnishingStatus string  `json:"furnishingstatus" binding:"required,oneof=furnished semi-furnished unfurnished"`
}
