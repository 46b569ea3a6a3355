package analysis

import (
	"math"

	"streaksim/domain/streak"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// ConvergenceReport summarizes how the running estimate behaved over a
// finished run: dispersion of the snapshot differences plus a two-sided
// normal-approximation test of the final estimate against the input rate.
type ConvergenceReport struct {
	MeanDifference   float64 `json:"mean_difference"`
	StdDevDifference float64 `json:"stddev_difference"`
	MaxAbsDifference float64 `json:"max_abs_difference"`
	ZScore           float64 `json:"z_score"`
	PValue           float64 `json:"p_value"`
}

// Summarize computes a convergence report from a run's snapshots and its
// internal counters. Returns nil for an empty snapshot list.
func Summarize(result *streak.Result, counters streak.Counters) *ConvergenceReport {
	if result == nil || len(result.Snapshots) == 0 {
		return nil
	}

	diffs := make([]float64, len(result.Snapshots))
	absDiffs := make([]float64, len(result.Snapshots))
	for i, snap := range result.Snapshots {
		diffs[i] = snap.Difference
		absDiffs[i] = math.Abs(snap.Difference)
	}

	mean, _ := stats.Mean(diffs)
	stdDev, _ := stats.StandardDeviation(diffs)
	maxAbs, _ := stats.Max(absDiffs)

	report := &ConvergenceReport{
		MeanDifference:   mean,
		StdDevDifference: stdDev,
		MaxAbsDifference: maxAbs,
		PValue:           1.0,
	}

	// Under independence the third-trial success is Bernoulli(rate), so
	// the final estimate over n streaks is approximately normal with
	// stderr sqrt(rate*(1-rate)/n).
	rate := result.Final.InputRate
	if n := counters.TotalStreaks; n > 0 && rate > 0 && rate < 1 {
		stderr := math.Sqrt(rate * (1 - rate) / float64(n))
		report.ZScore = (counters.Estimate() - rate) / stderr
		normal := distuv.Normal{Mu: 0, Sigma: 1}
		report.PValue = 2 * normal.CDF(-math.Abs(report.ZScore))
	}

	return report
}
