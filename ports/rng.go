package ports

import (
	"context"
	"math/rand"
)

// RNG provides seeded random number generation for deterministic runs
type RNG interface {
	// SeededStream creates the run-level random stream for a named
	// operation. It is called exactly once per run; every sequence of a
	// sequential run draws from this single shared stream.
	SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error)

	// SequenceStream derives an independent deterministic sub-stream for
	// one sequence index. Partitioning by (name, index, baseSeed) keeps
	// parallel runs reproducible for a fixed seed regardless of the order
	// in which workers consume their streams.
	SequenceStream(ctx context.Context, name string, index int, baseSeed int64) (*rand.Rand, error)
}
