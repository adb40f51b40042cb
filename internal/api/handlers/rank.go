package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-advisor/internal/analysis"
	"property-advisor/internal/api/models"
	"property-advisor/internal/config"
)

// RankHandler serves the multi-property ranking route.
type RankHandler struct {
	defaults config.MarketConfig
}

func NewRankHandler(defaults config.MarketConfig) *RankHandler {
	return &RankHandler{defaults: defaults}
}

// Rank handles POST /api/v1/rank
func (h *RankHandler) Rank(c *gin.Context) {
	var req models.RankRequest
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

	candidates := make([]analysis.Candidate, 0, len(req.Candidates))
	for _, cand := range req.Candidates {
		candidates = append(candidates, analysis.Candidate{
			Name:  cand.Name,
			Input: toPropertyInput(cand.Input),
		})
	}

	ranked, err := analysis.RankProperties(engine, candidates)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CANDIDATE",
				Message: err.Error(),
			},
		})
		return
	}

	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	rankings := make([]models.Ranking, 0, len(ranked))
	for _, r := range ranked {
		rankings = append(rankings, models.Ranking{
			Rank:           r.Rank,
			Name:           r.Name,
			Score:          r.Score,
			Grade:          models.Grade(r.Score),
			ROIPercentage:  r.Analysis.ROI.ROIPercentage,
			NetYield:       r.Analysis.RentalYield.NetYieldPercentage,
			AnnualCashFlow: r.Analysis.CashFlow.AnnualCashFlow,
		})
	}

	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
