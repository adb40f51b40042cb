package invest

// scoreTier awards Points when the metric value is strictly above Above.
type scoreTier struct {
	Above   float64
	Points  int
	Message string
}

// metricRubric is one row of the scoring table. Tiers are evaluated high to
// low; the first match wins. ElseMessage (when non-empty) is appended if no
// tier matches, so a metric can contribute a message without points.
type metricRubric struct {
	Tiers       []scoreTier
	ElseMessage string
}

func (r metricRubric) apply(value float64) (int, string) {
	for _, t := range r.Tiers {
		if value > t.Above {
			return t.Points, t.Message
		}
	}
	return 0, r.ElseMessage
}

var (
	roiRubric = metricRubric{
		Tiers: []scoreTier{
			{Above: 50, Points: 3, Message: "Excellent ROI potential"},
			{Above: 30, Points: 2, Message: "Good ROI potential"},
			{Above: 15, Points: 1, Message: "Moderate ROI potential"},
		},
		ElseMessage: "Low ROI - consider other options",
	}
	yieldRubric = metricRubric{
		Tiers: []scoreTier{
			{Above: 6, Points: 3, Message: "Strong rental yield"},
			{Above: 4, Points: 2, Message: "Acceptable rental yield"},
		},
		ElseMessage: "Low rental yield",
	}
	// Cap rate contributes a message only when it scores.
	capRateRubric = metricRubric{
		Tiers: []scoreTier{
			{Above: 8, Points: 2, Message: "Attractive cap rate"},
			{Above: 5, Points: 1, Message: "Fair cap rate"},
		},
	}
	cashFlowRubric = metricRubric{
		Tiers: []scoreTier{
			{Above: 0, Points: 2, Message: "Positive cash flow"},
		},
		ElseMessage: "Negative cash flow - requires capital",
	}
)

// Verdict returns the overall recommendation string for a 0..10 score.
func Verdict(score int) string {
	switch {
	case score >= 8:
		return "STRONG BUY - Excellent investment opportunity"
	case score >= 5:
		return "BUY - Good investment potential"
	case score >= 3:
		return "HOLD - Consider carefully"
	default:
		return "AVOID - Poor investment metrics"
	}
}

// Recommend folds the four scored metrics (ROI, net yield, cap rate, annual
// cash flow) into a 0..10 score plus per-metric messages. The result list has
// three or four entries: the cap-rate entry only appears when it scores.
func (e *Engine) Recommend(a *Analysis) Recommendation {
	metrics := []struct {
		rubric metricRubric
		value  float64
	}{
		{roiRubric, a.ROI.ROIPercentage},
		{yieldRubric, a.RentalYield.NetYieldPercentage},
		{capRateRubric, a.CapRate.CapRatePercentage},
		{cashFlowRubric, a.CashFlow.AnnualCashFlow},
	}

	score := 0
	details := make([]string, 0, len(metrics))
	for _, m := range metrics {
		pts, msg := m.rubric.apply(m.value)
		score += pts
		if msg != "" {
			details = append(details, msg)
		}
	}

	return Recommendation{
		Score:                   score,
		OverallRecommendation:   Verdict(score),
		DetailedRecommendations: details,
	}
}
