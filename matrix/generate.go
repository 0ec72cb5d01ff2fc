// Package matrix - seeded cost-matrix generators.
//
// Determinism policy (shared with every random consumer in this module):
//   - seed==0 ⇒ defaultSeed; any other seed is used verbatim.
//   - The same (size, seed, symmetric) triple yields identical matrices
//     across runs and platforms.
//
// math/rand.Rand is NOT goroutine-safe; each call builds its own stream.
package matrix

import (
	"fmt"
	"math"
	"math/rand"
)

// Cost range produced by Random: integers in [MinRandomCost, MaxRandomCost).
const (
	MinRandomCost = 1
	MaxRandomCost = 100
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Random builds a size×size cost matrix of integer costs drawn uniformly
// from [MinRandomCost, MaxRandomCost), with +Inf on the diagonal.
// When symmetric is set the lower triangle mirrors the upper one.
//
// Complexity: O(size²).
func Random(size int, seed int64, symmetric bool) (*Dense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Random(size=%d): %w", size, ErrBadShape)
	}
	var (
		rng  = rngFromSeed(seed)
		d    = &Dense{r: size, c: size, data: make([]float64, size*size)}
		span = MaxRandomCost - MinRandomCost
		i, j int
	)
	// Draw the full square first so that the stream consumption does not
	// depend on the symmetric flag.
	for i = 0; i < size; i++ {
		for j = 0; j < size; j++ {
			d.data[i*size+j] = float64(MinRandomCost + rng.Intn(span))
		}
	}
	if symmetric {
		for i = 1; i < size; i++ {
			for j = 0; j < i; j++ {
				d.data[i*size+j] = d.data[j*size+i]
			}
		}
	}
	for i = 0; i < size; i++ {
		d.data[i*size+i] = math.Inf(1)
	}

	return d, nil
}

// Uniform builds an n×n cost matrix whose off-diagonal entries all equal c.
// c must be a non-negative number (+Inf allowed).
//
// Complexity: O(n²).
func Uniform(n int, c float64) (*Dense, error) {
	if math.IsNaN(c) || c < 0 {
		return nil, fmt.Errorf("Uniform(c=%g): %w", c, ErrNegativeCost)
	}
	d, err := NewCostMatrix(n)
	if err != nil {
		return nil, fmt.Errorf("Uniform(n=%d): %w", n, err)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				d.data[i*n+j] = c
			}
		}
	}

	return d, nil
}
