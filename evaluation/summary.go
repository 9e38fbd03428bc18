package evaluation

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary condenses a set of per-segment percent deviations into the numbers
// an evaluation run reports: spread and central tendency together, since the
// mean alone hides the handful of segments where tracking fell apart.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes summary statistics over per-segment deviations.
// An empty input yields the zero Summary.
func Summarize(deviations []float64) Summary {
	if len(deviations) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(deviations))
	copy(sorted, deviations)
	sort.Float64s(sorted)

	s := Summary{
		Count:  len(sorted),
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}

	return s
}
