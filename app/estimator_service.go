package app

import (
	"context"
	"fmt"
	"time"

	"streaksim/domain/streak"
	"streaksim/internal"
	"streaksim/internal/analysis"
	"streaksim/internal/errors"
	"streaksim/ports"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// streamName identifies the estimator's random streams in the RNG port.
const streamName = "streak-estimator"

// EstimatorService runs the streak Monte Carlo experiment: it generates
// binary sequences, scans them for 2-success streaks, accumulates the
// running conditional estimate and emits convergence snapshots.
type EstimatorService struct {
	rng     ports.RNG
	logger  *internal.Logger
	workers int
}

// NewEstimatorService creates an estimator service. workers == 1 runs
// sequences sequentially on a single shared random stream (the reference
// behavior); workers > 1 partitions the seed into one deterministic
// sub-stream per sequence and fans generation out across goroutines.
func NewEstimatorService(rng ports.RNG, logger *internal.Logger, workers int) *EstimatorService {
	if workers < 1 {
		workers = 1
	}
	return &EstimatorService{
		rng:     rng,
		logger:  logger,
		workers: workers,
	}
}

// Run executes one full estimator run and returns its snapshots and final
// result. The final result is the snapshot taken after the last sequence,
// never an independent recomputation.
func (s *EstimatorService) Run(ctx context.Context, params streak.Params) (*streak.Result, error) {
	if err := params.Validate(); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	seed := time.Now().UnixNano()
	if params.Seed != nil {
		seed = *params.Seed
	}

	runID := uuid.NewString()
	startTime := time.Now()

	var counts [][2]int
	var err error
	if s.workers > 1 {
		counts, err = s.scanPartitioned(ctx, params, seed)
	} else {
		counts, err = s.scanSequential(ctx, params, seed)
	}
	if err != nil {
		return nil, err
	}

	result, counters := aggregate(params, counts)

	if report := analysis.Summarize(result, counters); report != nil {
		s.logger.Info("run %s finished: n=%d rate=%.2f estimate=%.6f z=%.3f p=%.4f runtime=%s",
			runID, params.NumSequences, params.SuccessRate,
			result.Final.Estimate, report.ZScore, report.PValue,
			time.Since(startTime).Round(time.Millisecond))
	}

	return result, nil
}

// scanSequential draws every sequence from one shared stream seeded once
// at run start, in a fixed order. Identical (seed, rate, n) inputs
// reproduce identical results byte for byte.
func (s *EstimatorService) scanSequential(ctx context.Context, params streak.Params, seed int64) ([][2]int, error) {
	stream, err := s.rng.SeededStream(ctx, streamName, seed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create run stream")
	}

	counts := make([][2]int, params.NumSequences)
	for i := range counts {
		seq := streak.GenerateSequence(stream, streak.SequenceLength, params.SuccessRate)
		streaks, thirds := streak.ScanStreaks(seq)
		counts[i] = [2]int{streaks, thirds}
	}
	return counts, nil
}

// scanPartitioned derives an independent sub-stream per sequence index,
// so generation order across workers cannot affect the outcome. Results
// are deterministic for a fixed seed but differ from the shared-stream
// numbers of a sequential run.
func (s *EstimatorService) scanPartitioned(ctx context.Context, params streak.Params, seed int64) ([][2]int, error) {
	counts := make([][2]int, params.NumSequences)

	g, gctx := errgroup.WithContext(ctx)
	chunk := (params.NumSequences + s.workers - 1) / s.workers
	for start := 0; start < params.NumSequences; start += chunk {
		end := start + chunk
		if end > params.NumSequences {
			end = params.NumSequences
		}
		start, end := start, end
		g.Go(func() error {
			for i := start; i < end; i++ {
				stream, err := s.rng.SequenceStream(gctx, streamName, i, seed)
				if err != nil {
					return fmt.Errorf("failed to create stream for sequence %d: %w", i, err)
				}
				seq := streak.GenerateSequence(stream, streak.SequenceLength, params.SuccessRate)
				streaks, thirds := streak.ScanStreaks(seq)
				counts[i] = [2]int{streaks, thirds}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "parallel scan failed")
	}
	return counts, nil
}

// aggregate folds per-sequence counts into the running counters in index
// order and emits snapshots on the interval cadence. The snapshot taken
// at the last sequence doubles as the final result.
func aggregate(params streak.Params, counts [][2]int) (*streak.Result, streak.Counters) {
	var counters streak.Counters
	interval := streak.SnapshotInterval(params.NumSequences)

	var snapshots []streak.Snapshot
	for i, c := range counts {
		counters.Add(c[0], c[1])
		num := i + 1
		if num%interval == 0 || num == params.NumSequences {
			snapshots = append(snapshots, streak.NewSnapshot(num, counters, params.SuccessRate))
		}
	}

	return &streak.Result{
		Snapshots: snapshots,
		Final:     snapshots[len(snapshots)-1],
	}, counters
}
