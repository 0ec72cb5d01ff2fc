package bench

import (
	"errors"
	"runtime"
	"time"

	"github.com/go-logr/logr"
)

// Sentinel errors returned by Run and Plot.
var (
	// ErrNoSizes indicates an empty or non-positive size list.
	ErrNoSizes = errors.New("bench: sizes must be a non-empty list of positive integers")

	// ErrBadRuns indicates Runs < 1.
	ErrBadRuns = errors.New("bench: runs must be >= 1")

	// ErrEmptyReport is returned by Plot for a report without rows.
	ErrEmptyReport = errors.New("bench: report has no rows")
)

// Options configures a benchmark run.
type Options struct {
	// Sizes lists the matrix sizes to benchmark. Duplicates are ignored and
	// report rows are ordered by size.
	Sizes []int
	// Runs is the number of repetitions per size and method.
	Runs int
	// Seed feeds matrix.Random; 0 selects the generator default.
	Seed int64
	// Symmetric generates symmetric instances.
	Symmetric bool
	// Workers bounds the number of concurrent solves.
	Workers int
	// Timeout is the wall-clock cutoff of a single exact solve; 0 disables it.
	Timeout time.Duration
	// Logger receives progress at V(1).
	Logger logr.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns sizes 4..12 step 2, three runs, seed 52,
// asymmetric instances, one worker per CPU, a 30s cutoff and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Sizes:   []int{4, 6, 8, 10, 12},
		Runs:    3,
		Seed:    52,
		Workers: runtime.NumCPU(),
		Timeout: 30 * time.Second,
		Logger:  logr.Discard(),
	}
}

// WithSizes sets the benchmarked sizes.
func WithSizes(sizes ...int) Option {
	return func(o *Options) { o.Sizes = append([]int(nil), sizes...) }
}

// WithRuns sets repetitions per size and method.
func WithRuns(n int) Option {
	return func(o *Options) { o.Runs = n }
}

// WithSeed sets the generator seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithSymmetric toggles symmetric instances.
func WithSymmetric(on bool) Option {
	return func(o *Options) { o.Symmetric = on }
}

// WithWorkers sets the pool size; values < 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithTimeout sets the per-solve cutoff of the exact method.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithLogger sets the progress logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if len(o.Sizes) == 0 {
		return o, ErrNoSizes
	}
	for _, s := range o.Sizes {
		if s < 1 {
			return o, ErrNoSizes
		}
	}
	if o.Runs < 1 {
		return o, ErrBadRuns
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o, nil
}
