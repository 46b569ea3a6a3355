package rng

import (
	"context"
	"fmt"
	"math/rand"
)

// Adapter implements the ports.RNG interface on math/rand
type Adapter struct{}

// NewAdapter creates a new RNG adapter
func NewAdapter() *Adapter {
	return &Adapter{}
}

// SeededStream creates a deterministic random number generator for a named operation
func (a *Adapter) SeededStream(ctx context.Context, name string, seed int64) (*rand.Rand, error) {
	return rand.New(rand.NewSource(seed)), nil
}

// SequenceStream creates a deterministic sub-stream for a single sequence index.
// The derived seed hashes name and index on top of the base seed, so identical
// (name, index, baseSeed) inputs always produce identical streams.
func (a *Adapter) SequenceStream(ctx context.Context, name string, index int, baseSeed int64) (*rand.Rand, error) {
	seed := baseSeed + int64(hashString(fmt.Sprintf("%s-%d", name, index)))
	return rand.New(rand.NewSource(seed)), nil
}

// hashString creates a simple hash for deterministic seeding
func hashString(s string) uint32 {
	var hash uint32 = 5381
	for _, c := range s {
		hash = ((hash << 5) + hash) + uint32(c) // djb2 algorithm
	}
	return hash
}
