package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"streaksim/domain/streak"
)

func TestSummarize_EmptyResult(t *testing.T) {
	assert.Nil(t, Summarize(nil, streak.Counters{}))
	assert.Nil(t, Summarize(&streak.Result{}, streak.Counters{}))
}

func TestSummarize_ZeroStreaks(t *testing.T) {
	counters := streak.Counters{}
	snap := streak.NewSnapshot(10, counters, 0.5)
	result := &streak.Result{Snapshots: []streak.Snapshot{snap}, Final: snap}

	report := Summarize(result, counters)
	require.NotNil(t, report)
	assert.Equal(t, 0.0, report.ZScore)
	assert.Equal(t, 1.0, report.PValue)
}

func TestSummarize_Dispersion(t *testing.T) {
	counters := streak.Counters{TotalStreaks: 100, SuccessfulThirds: 50}
	snapshots := []streak.Snapshot{
		{Sequences: 10, Estimate: 0.48, InputRate: 0.5, Difference: -0.02},
		{Sequences: 20, Estimate: 0.51, InputRate: 0.5, Difference: 0.01},
		{Sequences: 30, Estimate: 0.5, InputRate: 0.5, Difference: 0.0},
	}
	result := &streak.Result{Snapshots: snapshots, Final: snapshots[2]}

	report := Summarize(result, counters)
	require.NotNil(t, report)
	assert.InDelta(t, -0.01/3, report.MeanDifference, 1e-9)
	assert.InDelta(t, 0.02, report.MaxAbsDifference, 1e-9)
	assert.Greater(t, report.StdDevDifference, 0.0)
}

func TestSummarize_ZTest(t *testing.T) {
	// 60 of 100 thirds at rate 0.5: z = (0.6-0.5)/sqrt(0.25/100) = 2.
	counters := streak.Counters{TotalStreaks: 100, SuccessfulThirds: 60}
	snap := streak.NewSnapshot(50, counters, 0.5)
	result := &streak.Result{Snapshots: []streak.Snapshot{snap}, Final: snap}

	report := Summarize(result, counters)
	require.NotNil(t, report)
	assert.InDelta(t, 2.0, report.ZScore, 1e-9)
	assert.InDelta(t, 0.0455, report.PValue, 1e-3)

	// An estimate matching the rate exactly should not look surprising.
	balanced := streak.Counters{TotalStreaks: 100, SuccessfulThirds: 50}
	snap = streak.NewSnapshot(50, balanced, 0.5)
	result = &streak.Result{Snapshots: []streak.Snapshot{snap}, Final: snap}
	report = Summarize(result, balanced)
	require.NotNil(t, report)
	assert.True(t, math.Abs(report.ZScore) < 1e-9)
	assert.InDelta(t, 1.0, report.PValue, 1e-9)
}
