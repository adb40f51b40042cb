package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"property-advisor/internal/api/models"
	"property-advisor/internal/predict"
)

// PredictHandler proxies price-estimate requests to the external prediction
// service.
type PredictHandler struct {
	client *predict.Client
}

func NewPredictHandler(client *predict.Client) *PredictHandler {
	return &PredictHandler{client: client}
}

// Predict handles POST /api/v1/predict
func (h *PredictHandler) Predict(c *gin.Context) {
	if h.client == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "PREDICTION_DISABLED",
				Message: "Prediction service is not configured",
			},
		})
		return
	}

	var req models.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	pred, err := h.client.Predict(predict.PropertyFeatures{
		Area:             req.Area,
		Bedrooms:         req.Bedrooms,
		Bathrooms:        req.Bathrooms,
		Stories:          req.Stories,
		MainRoad:         req.MainRoad,
		GuestRoom:        req.GuestRoom,
		Basement:         req.Basement,
		HotWaterHeating:  req.HotWaterHeating,
		AirConditioning:  req.AirConditioning,
		Parking:          req.Parking,
		PrefArea:         req.PrefArea,
		FurnishingStatus: req.FurnishingStatus,
	})
	if err != nil {
		if perr, ok := err.(*predict.Error); ok {
			statusCode := http.StatusBadGateway
			switch perr.StatusCode {
			case http.StatusUnauthorized, http.StatusForbidden:
				statusCode = http.StatusUnauthorized
			case http.StatusTooManyRequests:
				statusCode = http.StatusTooManyRequests
			case http.StatusServiceUnavailable:
				statusCode = http.StatusServiceUnavailable
			}
			c.JSON(statusCode, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    perr.Code,
					Message: perr.Message,
					Details: map[string]interface{}{
						"status_code": perr.StatusCode,
						"retry_after": perr.RetryAfter,
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "UPSTREAM_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.PredictResponse{
		PredictedPrice:          pred.PredictedPrice,
		PricePerSqft:            pred.PricePerSqft,
		ConfidenceIntervalLower: pred.ConfidenceIntervalLower,
		ConfidenceIntervalUpper: pred.ConfidenceIntervalUpper,
		ModelUsed:               pred.ModelUsed,
		PredictionDate:          pred.PredictionDate,
	})
}
