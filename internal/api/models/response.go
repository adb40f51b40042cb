package models

import (
	"time"

	"property-advisor/internal/invest"
)

// InvestmentSummary is the flat metric view returned to every client.
// total_return is the gross proceeds at exit (future value plus net rental
// income), so net_profit == total_return - purchase price.
type InvestmentSummary struct {
	ROI               float64 `json:"roi"`
	RentalYield       float64 `json:"rental_yield"`
	CapRate           float64 `json:"cap_rate"`
	CashFlowMonthly   float64 `json:"cash_flow_monthly"`
	CashFlowAnnual    float64 `json:"cash_flow_annual"`
	TotalReturn       float64 `json:"total_return"`
	AppreciationValue float64 `json:"appreciation_value"`
	TotalRentalIncome float64 `json:"total_rental_income"`
	TotalExpenses     float64 `json:"total_expenses"`
	NetProfit         float64 `json:"net_profit"`
	InvestmentGrade   string  `json:"investment_grade"`
	Recommendation    string  `json:"recommendation"`
}

// NewInvestmentSummary flattens an analysis + recommendation into the wire
// summary. The rental_yield field carries the NET yield; gross is available
// in the breakdown.
func NewInvestmentSummary(a *invest.Analysis, rec invest.Recommendation) InvestmentSummary {
	totalReturn := a.ROI.FuturePropertyValue + a.ROI.TotalRentalIncome - a.ROI.TotalExpenses
	return InvestmentSummary{
		ROI:               a.ROI.ROIPercentage,
		RentalYield:       a.RentalYield.NetYieldPercentage,
		CapRate:           a.CapRate.CapRatePercentage,
		CashFlowMonthly:   a.CashFlow.MonthlyCashFlow,
		CashFlowAnnual:    a.CashFlow.AnnualCashFlow,
		TotalReturn:       totalReturn,
		AppreciationValue: a.Appreciation.TotalAppreciation,
		TotalRentalIncome: a.ROI.TotalRentalIncome,
		TotalExpenses:     a.ROI.TotalExpenses,
		NetProfit:         a.ROI.NetProfit,
		InvestmentGrade:   Grade(rec.Score),
		Recommendation:    rec.OverallRecommendation,
	}
}

// Grade is the verdict keyword for a score band (the full sentence lives in
// the recommendation field).
func Grade(score int) string {
	switch {
	case score >= 8:
		return "STRONG BUY"
	case score >= 5:
		return "BUY"
	case score >= 3:
		return "HOLD"
	default:
		return "AVOID"
	}
}

// AnalyzeResponse is the response for POST /api/v1/analyze.
type AnalyzeResponse struct {
	ID             string                `json:"id,omitempty"`
	Status         string                `json:"status"`
	Summary        InvestmentSummary     `json:"summary"`
	Recommendation invest.Recommendation `json:"recommendation_detail"`
	// Breakdown is the full per-metric result graph, included when the
	// request asks for it.
	Breakdown *invest.Analysis `json:"breakdown,omitempty"`
}

// ComparisonResult contains results for one variation.
type ComparisonResult struct {
	Name    string            `json:"name"`
	Score   int               `json:"score"`
	Summary InvestmentSummary `json:"summary"`
}

// CompareResponse is the response for POST /api/v1/analyze/compare.
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// Ranking represents one ranked candidate property.
type Ranking struct {
	Rank           int     `json:"rank"`
	Name           string  `json:"name"`
	Score          int     `json:"score"`
	Grade          string  `json:"investment_grade"`
	ROIPercentage  float64 `json:"roi_percentage"`
	NetYield       float64 `json:"net_yield_percentage"`
	AnnualCashFlow float64 `json:"annual_cash_flow"`
}

// RankResponse is the response for POST /api/v1/rank.
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// MarketInfo represents one market rate preset.
type MarketInfo struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	File  string      `json:"file"`
	Rates MarketRates `json:"rates"`
}

// MarketRates reports the resolved rate assumptions of a preset.
type MarketRates struct {
	AppreciationRate float64 `json:"appreciation_rate"`
	VacancyRate      float64 `json:"vacancy_rate"`
	MaintenanceRate  float64 `json:"maintenance_rate"`
}

// AnalysisRecord is one stored history entry.
type AnalysisRecord struct {
	ID            string            `json:"id"`
	CreatedAt     time.Time         `json:"created_at"`
	PurchasePrice float64           `json:"purchase_price"`
	Score         int               `json:"score"`
	Grade         string            `json:"investment_grade"`
	Summary       InvestmentSummary `json:"summary"`
}

// HistoryResponse is the response for GET /api/v1/analyses.
type HistoryResponse struct {
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Total  int              `json:"total"`
	Items  []AnalysisRecord `json:"items"`
}

// PredictResponse mirrors the external prediction service's response.
type PredictResponse struct {
	PredictedPrice          float64 `json:"predicted_price"`
	PricePerSqft            float64 `json:"price_per_sqft"`
	ConfidenceIntervalLower float64 `json:"confidence_interval_lower,omitempty"`
	ConfidenceIntervalUpper float64 `json:"confidence_interval_upper,omitempty"`
	ModelUsed               string  `json:"model_used"`
	PredictionDate          string  `json:"prediction_date"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
