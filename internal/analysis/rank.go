package analysis

import (
	"fmt"
	"sort"

	"property-advisor/internal/invest"
)

// Candidate is one property entering a ranking run.
type Candidate struct {
	Name  string
	Input invest.PropertyInput
}

// RankedProperty carries the full analysis of one candidate plus its position.
type RankedProperty struct {
	Rank           int
	Name           string
	Score          int
	Analysis       *invest.Analysis
	Recommendation invest.Recommendation
}

// RankProperties analyzes every candidate and sorts descending by
// recommendation score, breaking ties on ROI and then name so the order is
// deterministic.
func RankProperties(e *invest.Engine, candidates []Candidate) ([]RankedProperty, error) {
	out := make([]RankedProperty, 0, len(candidates))
	for _, c := range candidates {
		a, err := e.ComprehensiveAnalysis(c.Input)
		if err != nil {
			return nil, fmt.Errorf("candidate %q: %w", c.Name, err)
		}
		rec := e.Recommend(a)
		out = append(out, RankedProperty{
			Name:           c.Name,
			Score:          rec.Score,
			Analysis:       a,
			Recommendation: rec,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		if out[i].Analysis.ROI.ROIPercentage != out[j].Analysis.ROI.ROIPercentage {
			return out[i].Analysis.ROI.ROIPercentage > out[j].Analysis.ROI.ROIPercentage
		}
		return out[i].Name < out[j].Name
	})

	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}
