package streak

import (
	"fmt"
	"math"
)

// SequenceLength is the number of Bernoulli draws per simulated sequence.
const SequenceLength = 100

// Parameter bounds enforced before a run starts.
const (
	MinSuccessRate  = 0.1
	MaxSuccessRate  = 0.9
	MinNumSequences = 1
	MaxNumSequences = 100000
)

// Params are the validated inputs for a single estimator run.
// Immutable for the duration of the run.
type Params struct {
	SuccessRate  float64
	NumSequences int
	Seed         *int64 // nil means a time-derived seed
}

// Validate checks parameter bounds. The messages are part of the API
// contract and surface verbatim in error responses.
func (p Params) Validate() error {
	if p.SuccessRate < MinSuccessRate || p.SuccessRate > MaxSuccessRate {
		return fmt.Errorf("success_rate must be between 0.1 and 0.9")
	}
	if p.NumSequences < MinNumSequences || p.NumSequences > MaxNumSequences {
		return fmt.Errorf("num_sequences must be between 1 and 100000")
	}
	return nil
}

// Counters accumulate streak observations across all sequences processed
// so far. INVARIANT: 0 <= SuccessfulThirds <= TotalStreaks.
type Counters struct {
	TotalStreaks     int
	SuccessfulThirds int
}

// Add folds one sequence's scan result into the running totals.
func (c *Counters) Add(streaks, thirds int) {
	c.TotalStreaks += streaks
	c.SuccessfulThirds += thirds
}

// Estimate returns the conditional third-success probability observed so
// far. Defined as 0.0 when no streaks have been seen.
func (c Counters) Estimate() float64 {
	if c.TotalStreaks == 0 {
		return 0.0
	}
	return float64(c.SuccessfulThirds) / float64(c.TotalStreaks)
}

// Snapshot records the running estimate at a processing milestone.
// All float fields carry 6-decimal rounding. Never mutated after creation.
type Snapshot struct {
	Sequences  int     `json:"sequences"`
	Estimate   float64 `json:"estimate"`
	InputRate  float64 `json:"input_rate"`
	Difference float64 `json:"difference"`
}

// NewSnapshot captures the counters after `sequences` sequences.
func NewSnapshot(sequences int, c Counters, inputRate float64) Snapshot {
	estimate := c.Estimate()
	return Snapshot{
		Sequences:  sequences,
		Estimate:   Round6(estimate),
		InputRate:  Round6(inputRate),
		Difference: Round6(estimate - inputRate),
	}
}

// Result is the complete output of a run. Final is the snapshot taken
// after the last sequence; it is the same value as the last element of
// Snapshots, never an independent recomputation.
type Result struct {
	Snapshots []Snapshot `json:"snapshots"`
	Final     Snapshot   `json:"final"`
}

// SnapshotInterval returns the snapshot cadence for n sequences: every
// 10% of the run, minimum 1.
func SnapshotInterval(n int) int {
	if interval := n / 10; interval > 1 {
		return interval
	}
	return 1
}

// Round6 rounds to 6 decimal places, matching the precision of emitted
// snapshots.
func Round6(x float64) float64 {
	return math.Round(x*1e6) / 1e6
}
