package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"property-advisor/internal/api/models"
	"property-advisor/internal/config"
	"property-advisor/internal/history"
	"property-advisor/internal/invest"
)

// AnalyzeHandler serves the single-property analysis and comparison routes.
type AnalyzeHandler struct {
	defaults config.MarketConfig
	store    *history.Store // nil disables persistence
}

// NewAnalyzeHandler creates an analyze handler. store may be nil when history
// is disabled.
func NewAnalyzeHandler(defaults config.MarketConfig, store *history.Store) *AnalyzeHandler {
	return &AnalyzeHandler{defaults: defaults, store: store}
}

// Analyze handles POST /api/v1/analyze
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	var req models.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	engine, err := resolveEngine(h.defaults, req.MarketFile, req.Rates)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_MARKET",
				Message: err.Error(),
			},
		})
		return
	}

	analysis, err := engine.ComprehensiveAnalysis(toPropertyInput(req.Input))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_INPUT",
				Message: err.Error(),
			},
		})
		return
	}
	rec := engine.Recommend(analysis)
	summary := models.NewInvestmentSummary(analysis, rec)

	resp := models.AnalyzeResponse{
		ID:             uuid.NewString(),
		Status:         "completed",
		Summary:        summary,
		Recommendation: rec,
	}
	if req.Options.IncludeBreakdown {
		resp.Breakdown = analysis
	}

	h.persist(resp.ID, req.Input, analysis, rec, summary)

	c.JSON(http.StatusOK, resp)
}

// Compare handles POST /api/v1/analyze/compare
func (h *AnalyzeHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	engine, err := resolveEngine(h.defaults, req.MarketFile, req.Rates)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_MARKET",
				Message: err.Error(),
			},
		})
		return
	}

	results := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, v := range req.Variations {
		input := mergeInput(req.BaseInput, v.Input)
		analysis, err := engine.ComprehensiveAnalysis(toPropertyInput(input))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_VARIATION",
					Message: err.Error(),
					Details: map[string]interface{}{"variation": v.Name},
				},
			})
			return
		}
		rec := engine.Recommend(analysis)
		results = append(results, models.ComparisonResult{
			Name:    v.Name,
			Score:   rec.Score,
			Summary: models.NewInvestmentSummary(analysis, rec),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: results})
}

func (h *AnalyzeHandler) persist(id string, input models.InvestmentInput, analysis *invest.Analysis, rec invest.Recommendation, summary models.InvestmentSummary) {
	if h.store == nil {
		return
	}

	inputJSON, _ := json.Marshal(input)
	analysisJSON, _ := json.Marshal(analysis)
	summaryJSON, _ := json.Marshal(summary)

	err := h.store.Save(history.Record{
		ID:            id,
		CreatedAt:     time.Now().UTC(),
		PurchasePrice: input.PurchasePrice,
		Score:         rec.Score,
		Grade:         models.Grade(rec.Score),
		InputJSON:     string(inputJSON),
		AnalysisJSON:  string(analysisJSON),
		SummaryJSON:   string(summaryJSON),
	})
	if err != nil {
		// History is best effort: a storage failure never fails the analysis.
		zap.L().Warn("failed to save analysis history", zap.String("id", id), zap.Error(err))
	}
}

// toPropertyInput maps the wire input to the engine input. Annual rental
// income wins over monthly when both are set; loan fields are intentionally
// not mapped.
func toPropertyInput(in models.InvestmentInput) invest.PropertyInput {
	out := invest.PropertyInput{
		PurchasePrice:      in.PurchasePrice,
		OperatingExpenses:  in.OperatingExpenses,
		HoldingPeriodYears: in.HoldingPeriodYears,
	}
	switch {
	case in.AnnualRentalIncome != nil:
		out.AnnualRentalIncome = in.AnnualRentalIncome
	case in.MonthlyRentalIncome != nil:
		annual := *in.MonthlyRentalIncome * 12
		out.AnnualRentalIncome = &annual
	}
	return out
}

// mergeInput overlays set fields of a variation onto the base input.
func mergeInput(base models.InvestmentInput, override models.InputOverride) models.InvestmentInput {
	out := base
	if override.PurchasePrice != nil {
		out.PurchasePrice = *override.PurchasePrice
	}
	if override.MonthlyRentalIncome != nil {
		out.MonthlyRentalIncome = override.MonthlyRentalIncome
		out.AnnualRentalIncome = nil
	}
	if override.AnnualRentalIncome != nil {
		out.AnnualRentalIncome = override.AnnualRentalIncome
	}
	if override.OperatingExpenses != nil {
		out.OperatingExpenses = override.OperatingExpenses
	}
	if override.HoldingPeriodYears != nil {
		out.HoldingPeriodYears = *override.HoldingPeriodYears
	}
	return out
}
