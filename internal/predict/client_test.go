package predict

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func sampleFeatures() PropertyFeatures {
	return PropertyFeatures{
		Area:             7420,
		Bedrooms:         4,
		Bathrooms:        2,
		Stories:          3,
		MainRoad:         "yes",
		GuestRoom:        "no",
		Basement:         "no",
		HotWaterHeating:  "no",
		AirConditioning:  "yes",
		Parking:          2,
		PrefArea:         "yes",
		FurnishingStatus: "furnished",
	}
}

func TestPredict_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var got PropertyFeatures
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if got.Area != 7420 {
			t.Errorf("area = %v", got.Area)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Prediction{
			PredictedPrice: 6200000,
			PricePerSqft:   835.58,
			ModelUsed:      "xgboost",
		})
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-api-key-123", 5*time.Second)
	pred, err := client.Predict(sampleFeatures())
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred.PredictedPrice != 6200000 {
		t.Errorf("predicted price = %v", pred.PredictedPrice)
	}
	if pred.ModelUsed != "xgboost" {
		t.Errorf("model = %q", pred.ModelUsed)
	}
}

func TestPredict_UpstreamErrors(t *testing.T) {
	cases := []struct {
		status   int
		wantCode string
	}{
		{http.StatusUnauthorized, "INVALID_API_KEY"},
		{http.StatusForbidden, "INVALID_API_KEY"},
		{http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{http.StatusServiceUnavailable, "MODELS_NOT_READY"},
		{http.StatusInternalServerError, "UPSTREAM_ERROR"},
	}
	for _, tc := range cases {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tc.status == http.StatusTooManyRequests {
				w.Header().Set("Retry-After", "42")
			}
			w.WriteHeader(tc.status)
		}))

		client := NewClient(ts.URL, "", time.Second)
		_, err := client.Predict(sampleFeatures())
		ts.Close()

		perr, ok := err.(*Error)
		if !ok {
			t.Fatalf("status %d: error type %T", tc.status, err)
		}
		if perr.Code != tc.wantCode {
			t.Errorf("status %d: code = %q, want %q", tc.status, perr.Code, tc.wantCode)
		}
		if tc.status == http.StatusTooManyRequests && perr.RetryAfter != "42" {
			t.Errorf("retry-after = %q", perr.RetryAfter)
		}
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	a := CacheKey(sampleFeatures())
	b := CacheKey(sampleFeatures())
	if a != b {
		t.Error("same features produced different keys")
	}

	other := sampleFeatures()
	other.Bedrooms = 5
	if CacheKey(other) == a {
		t.Error("different features produced the same key")
	}
}
