package invest

import (
	"strings"
	"testing"
)

// analysisWith builds an Analysis carrying exactly the four scored metrics.
func analysisWith(roi, netYield, capRate, cashFlow float64) *Analysis {
	return &Analysis{
		ROI:         ROIResult{ROIPercentage: roi},
		RentalYield: RentalYieldResult{NetYieldPercentage: netYield},
		CapRate:     CapRateResult{CapRatePercentage: capRate},
		CashFlow:    CashFlowResult{AnnualCashFlow: cashFlow},
	}
}

func TestRecommend_WorkedExample(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	// ROI 43.67 (>30: 2pts), net yield 0 (0pts), cap rate 4.4 (<=5: 0pts,
	// no message), positive cash flow (2pts) => score 4, HOLD.
	rec := e.Recommend(analysisWith(43.67, 0, 4.4, 23500))

	if rec.Score != 4 {
		t.Errorf("score = %d, want 4", rec.Score)
	}
	if rec.OverallRecommendation != "HOLD - Consider carefully" {
		t.Errorf("overall = %q", rec.OverallRecommendation)
	}
	want := []string{
		"Good ROI potential",
		"Low rental yield",
		"Positive cash flow",
	}
	if len(rec.DetailedRecommendations) != len(want) {
		t.Fatalf("details = %v", rec.DetailedRecommendations)
	}
	for i, msg := range want {
		if rec.DetailedRecommendations[i] != msg {
			t.Errorf("detail[%d] = %q, want %q", i, rec.DetailedRecommendations[i], msg)
		}
	}
}

func TestRecommend_TierBoundaries(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	cases := []struct {
		name      string
		analysis  *Analysis
		wantScore int
	}{
		// ROI tiers; thresholds are strict.
		{"roi just above 50", analysisWith(50.01, 0, 0, -1), 3},
		{"roi exactly 50", analysisWith(50, 0, 0, -1), 2},
		{"roi exactly 30", analysisWith(30, 0, 0, -1), 1},
		{"roi exactly 15", analysisWith(15, 0, 0, -1), 0},
		// Yield tiers.
		{"yield just above 6", analysisWith(0, 6.01, 0, -1), 3},
		{"yield exactly 6", analysisWith(0, 6, 0, -1), 2},
		{"yield exactly 4", analysisWith(0, 4, 0, -1), 0},
		// Cap rate tiers.
		{"cap just above 8", analysisWith(0, 0, 8.01, -1), 2},
		{"cap exactly 8", analysisWith(0, 0, 8, -1), 1},
		{"cap exactly 5", analysisWith(0, 0, 5, -1), 0},
		// Cash flow is scored on sign.
		{"cash flow positive", analysisWith(0, 0, 0, 0.01), 2},
		{"cash flow zero", analysisWith(0, 0, 0, 0), 0},
		{"cash flow negative", analysisWith(0, 0, 0, -500), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Recommend(tc.analysis).Score; got != tc.wantScore {
				t.Errorf("score = %d, want %d", got, tc.wantScore)
			}
		})
	}
}

func TestRecommend_ScoreBoundedAndMessageCount(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	values := []float64{-100, 0, 4.5, 5.5, 7, 16, 31, 51, 1000}
	for _, roi := range values {
		for _, yield := range values {
			for _, cap := range values {
				for _, cf := range values {
					rec := e.Recommend(analysisWith(roi, yield, cap, cf))
					if rec.Score < 0 || rec.Score > 10 {
						t.Fatalf("score %d out of [0,10] for (%v,%v,%v,%v)", rec.Score, roi, yield, cap, cf)
					}
					if n := len(rec.DetailedRecommendations); n != 3 && n != 4 {
						t.Fatalf("%d detail messages for (%v,%v,%v,%v)", n, roi, yield, cap, cf)
					}
				}
			}
		}
	}
}

func TestRecommend_MaxScoreIsStrongBuy(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	rec := e.Recommend(analysisWith(60, 7, 9, 10000))
	if rec.Score != 10 {
		t.Errorf("score = %d, want 10", rec.Score)
	}
	if !strings.HasPrefix(rec.OverallRecommendation, "STRONG BUY") {
		t.Errorf("overall = %q", rec.OverallRecommendation)
	}
	if len(rec.DetailedRecommendations) != 4 {
		t.Errorf("details = %v", rec.DetailedRecommendations)
	}
}

func TestVerdict_Bands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		score int
		want  string
	}{
		{10, "STRONG BUY - Excellent investment opportunity"},
		{8, "STRONG BUY - Excellent investment opportunity"},
		{7, "BUY - Good investment potential"},
		{5, "BUY - Good investment potential"},
		{4, "HOLD - Consider carefully"},
		{3, "HOLD - Consider carefully"},
		{2, "AVOID - Poor investment metrics"},
		{0, "AVOID - Poor investment metrics"},
	}
	for _, tc := range cases {
		if got := Verdict(tc.score); got != tc.want {
			t.Errorf("Verdict(%d) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestRecommend_EndToEnd(t *testing.T) {
	t.Parallel()
	e := newTestEngine(t)

	analysis, err := e.ComprehensiveAnalysis(PropertyInput{
		PurchasePrice:      500000,
		AnnualRentalIncome: f64(30000),
		OperatingExpenses:  f64(8000),
		HoldingPeriodYears: 5,
	})
	if err != nil {
		t.Fatalf("ComprehensiveAnalysis: %v", err)
	}

	rec := e.Recommend(analysis)
	// ROI ~43.67 scores 2, net yield 0 scores 0, default-expense cap rate 0
	// scores 0, positive cash flow scores 2.
	if rec.Score != 4 {
		t.Errorf("score = %d, want 4", rec.Score)
	}
	if rec.OverallRecommendation != "HOLD - Consider carefully" {
		t.Errorf("overall = %q", rec.OverallRecommendation)
	}
}
