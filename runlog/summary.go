package runlog

import (
	"math"
	"time"

	"github.com/montanaflynn/stats"
)

// Summarize builds a RoundSummary from the candidate likelihoods of a round.
// Non-finite values are ignored; with none left the statistics stay zero.
func Summarize(runID string, round int, best float64, likelihoods []float64, improvements int, d time.Duration) RoundSummary {
	s := RoundSummary{
		RunID:        runID,
		Round:        round,
		Best:         best,
		Improvements: improvements,
		Duration:     d,
	}

	data := make(stats.Float64Data, 0, len(likelihoods))
	for _, v := range likelihoods {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return s
	}

	// errors only signal empty input, excluded above
	s.Mean, _ = stats.Mean(data)
	s.Median, _ = stats.Median(data)
	s.StdDev, _ = stats.StandardDeviation(data)
	s.Min, _ = stats.Min(data)
	s.Max, _ = stats.Max(data)
	return s
}
