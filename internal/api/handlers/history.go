package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"property-advisor/internal/api/models"
	"property-advisor/internal/history"
	"property-advisor/internal/invest"
	"property-advisor/internal/report"
)

// HistoryHandler serves stored analysis records and report downloads.
type HistoryHandler struct {
	store *history.Store
}

func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

func (h *HistoryHandler) unavailable(c *gin.Context) bool {
	if h.store != nil {
		return false
	}
	c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "HISTORY_DISABLED",
			Message: "Analysis history is not configured",
		},
	})
	return true
}

// List handles GET /api/v1/analyses
func (h *HistoryHandler) List(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	records, total, err := h.store.List(limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "HISTORY_READ_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	items := make([]models.AnalysisRecord, 0, len(records))
	for _, r := range records {
		var summary models.InvestmentSummary
		_ = json.Unmarshal([]byte(r.SummaryJSON), &summary)
		items = append(items, models.AnalysisRecord{
			ID:            r.ID,
			CreatedAt:     r.CreatedAt,
			PurchasePrice: r.PurchasePrice,
			Score:         r.Score,
			Grade:         r.Grade,
			Summary:       summary,
		})
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

// Get handles GET /api/v1/analyses/:id
func (h *HistoryHandler) Get(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	r, found, err := h.load(c)
	if err != nil || !found {
		return
	}

	var input json.RawMessage = []byte(r.InputJSON)
	var analysis json.RawMessage = []byte(r.AnalysisJSON)
	var summary json.RawMessage = []byte(r.SummaryJSON)

	c.JSON(http.StatusOK, gin.H{
		"id":         r.ID,
		"created_at": r.CreatedAt,
		"score":      r.Score,
		"grade":      r.Grade,
		"input":      input,
		"analysis":   analysis,
		"summary":    summary,
	})
}

// Report handles GET /api/v1/analyses/:id/report and streams an xlsx
// workbook built from the stored analysis.
func (h *HistoryHandler) Report(c *gin.Context) {
	if h.unavailable(c) {
		return
	}

	r, found, err := h.load(c)
	if err != nil || !found {
		return
	}

	var a invest.Analysis
	if err := json.Unmarshal([]byte(r.AnalysisJSON), &a); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_BUILD_ERROR",
				Message: fmt.Sprintf("Stored analysis is unreadable: %v", err),
			},
		})
		return
	}

	engine, err := invest.New(invest.DefaultRates())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "REPORT_BUILD_ERROR", Message: err.Error()},
		})
		return
	}
	rec := engine.Recommend(&a)

	raw, err := report.WorkbookBytes(&a, rec)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "REPORT_BUILD_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="analysis-%s.xlsx"`, r.ID))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", raw)
}

// load fetches the :id record and writes the error response itself on
// failure, so callers only need to check found/err.
func (h *HistoryHandler) load(c *gin.Context) (history.Record, bool, error) {
	id := c.Param("id")
	r, found, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "HISTORY_READ_ERROR",
				Message: err.Error(),
			},
		})
		return history.Record{}, false, err
	}
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("No analysis with id %q", id),
			},
		})
		return history.Record{}, false, nil
	}
	return r, true, nil
}
