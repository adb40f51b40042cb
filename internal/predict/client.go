package predict

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// PropertyFeatures is the feature vector the prediction service scores.
// Field names match the service's JSON schema.
type PropertyFeatures struct {
	Area             float64 `json:"area"`
	Bedrooms         int     `json:"bedrooms"`
	Bathrooms        int     `json:"bathrooms"`
	Stories          int     `json:"stories"`
	MainRoad         string  `json:"mainroad"`
	GuestRoom        string  `json:"guestroom"`
	Basement         string  `json:"basement"`
	HotWaterHeating  string  `json:"hotwaterheating"`
	AirConditioning  string  `json:"airconditioning"`
	Parking          int     `json:"parking"`
	PrefArea         string  `json:"prefarea"`
	FurnishingStatus string  `json:"furnishingstatus"`
}

// Prediction is the service's point estimate for one property.
type Prediction struct {
	PredictedPrice          float64 `json:"predicted_price"`
	PricePerSqft            float64 `json:"price_per_sqft"`
	ConfidenceIntervalLower float64 `json:"confidence_interval_lower"`
	ConfidenceIntervalUpper float64 `json:"confidence_interval_upper"`
	ModelUsed               string  `json:"model_used"`
	PredictionDate          string  `json:"prediction_date"`
}

// Error represents an error from the prediction service.
type Error struct {
	StatusCode int
	Code       string
	Message    string
	RetryAfter string // for rate limit errors
}

func (e *Error) Error() string { return e.Message }

// Client calls the external price-prediction service. The analytics engine
// never depends on it; predictions only feed the /predict passthrough.
type Client struct {
	http *resty.Client
}

// NewClient creates a prediction service client. timeout <= 0 defaults to
// 30 seconds.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		c.SetHeader("x-api-key", apiKey)
	}
	return &Client{http: c}
}

// Predict requests a price estimate for one property.
//
// If caching is enabled (ENABLE_PREDICTION_CACHE=true, development only),
// repeated requests for the same features are served from memory.
func (c *Client) Predict(features PropertyFeatures) (*Prediction, error) {
	cache := GetCache()
	if cache != nil {
		key := CacheKey(features)
		if cached, found := cache.Get(key); found {
			zap.L().Debug("prediction cache hit", zap.Float64("area", features.Area))
			return cached, nil
		}
	}

	var result Prediction
	start := time.Now()
	resp, err := c.http.R().
		SetBody(features).
		SetResult(&result).
		Post("/predict")
	if err != nil {
		return nil, fmt.Errorf("prediction request failed: %w", err)
	}

	zap.L().Info("prediction service response",
		zap.Int("status", resp.StatusCode()),
		zap.Duration("duration", time.Since(start)))

	switch resp.StatusCode() {
	case http.StatusOK:
		// Success, continue.
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &Error{
			StatusCode: resp.StatusCode(),
			Code:       "INVALID_API_KEY",
			Message:    "Invalid API key or insufficient permissions",
		}
	case http.StatusTooManyRequests:
		retryAfter := resp.Header().Get("Retry-After")
		return nil, &Error{
			StatusCode: resp.StatusCode(),
			Code:       "RATE_LIMIT_EXCEEDED",
			Message:    fmt.Sprintf("Rate limit exceeded. Retry after: %s", retryAfter),
			RetryAfter: retryAfter,
		}
	case http.StatusServiceUnavailable:
		return nil, &Error{
			StatusCode: resp.StatusCode(),
			Code:       "MODELS_NOT_READY",
			Message:    "Prediction service has no models loaded",
		}
	default:
		return nil, &Error{
			StatusCode: resp.StatusCode(),
			Code:       "UPSTREAM_ERROR",
			Message:    fmt.Sprintf("Prediction service returned status %d", resp.StatusCode()),
		}
	}

	if cache != nil {
		cache.Set(CacheKey(features), &result)
	}
	return &result, nil
}
