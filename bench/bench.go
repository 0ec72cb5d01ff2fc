package bench

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/littletsp/matrix"
	"github.com/katalvlaran/littletsp/tsp"
)

// Sample is the outcome of one solve.
type Sample struct {
	Size     int
	Run      int
	Method   tsp.Method
	Cost     float64
	Elapsed  time.Duration
	Nodes    int
	TimedOut bool
}

// Row aggregates all samples of one size. Times are mean seconds of wall
// clock per run; for exact runs that hit the cutoff this includes the
// cutoff itself and the greedy fallback.
type Row struct {
	Size int
	// ExactCost averages only the exact runs that finished. It is NaN when
	// every exact run timed out.
	ExactCost  float64
	ExactTime  float64
	ExactStd   float64
	GreedyCost float64
	GreedyTime float64
	GreedyStd  float64
	// Deviation is (greedy - exact) / exact * 100; NaN with ExactCost.
	Deviation float64
	// TimedOut counts exact runs replaced by the heuristic.
	TimedOut int
}

// Report is the result of Run.
type Report struct {
	RunID   string
	Started time.Time
	Elapsed time.Duration
	Host    Host
	Runs    int
	Rows    []Row
	Samples []Sample
	Metrics *Metrics
}

type job struct {
	size   int
	run    int
	method tsp.Method
	m      *matrix.Dense
}

var methods = []tsp.Method{tsp.MethodExact, tsp.MethodGreedy}

// Run executes the benchmark. It returns early with ctx.Err() when ctx is
// cancelled; per-solve cutoffs are not errors.
func Run(ctx context.Context, opts ...Option) (*Report, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Host:    probeHost(),
		Runs:    o.Runs,
		Metrics: newMetrics(),
	}
	o.Logger.V(1).Info("benchmark started", "runID", rep.RunID, "sizes", o.Sizes, "runs", o.Runs, "workers", o.Workers)

	sizes := lo.Uniq(o.Sizes)
	jobs := make([]job, 0, len(sizes)*len(methods)*o.Runs)
	for _, size := range sizes {
		m, err := matrix.Random(size, o.Seed, o.Symmetric)
		if err != nil {
			return nil, fmt.Errorf("bench: generate size %d: %w", size, err)
		}
		for _, method := range methods {
			for r := 0; r < o.Runs; r++ {
				jobs = append(jobs, job{size: size, run: r, method: method, m: m})
			}
		}
	}

	samples, err := runPool(ctx, o, jobs)
	if err != nil {
		return nil, err
	}
	for _, s := range samples {
		rep.Metrics.observe(s)
	}

	rep.Samples = samples
	rep.Rows = aggregate(sizes, samples)
	rep.Elapsed = time.Since(rep.Started)
	o.Logger.V(1).Info("benchmark finished", "runID", rep.RunID, "elapsed", rep.Elapsed)

	return rep, nil
}

// runPool fans jobs out to o.Workers goroutines and returns the samples in
// job order.
func runPool(ctx context.Context, o Options, jobs []job) ([]Sample, error) {
	type result struct {
		idx int
		s   Sample
		err error
	}

	jobCh := make(chan int, len(jobs))
	for i := range jobs {
		jobCh <- i
	}
	close(jobCh)

	resultCh := make(chan result, len(jobs))
	var wg sync.WaitGroup
	for w := 0; w < o.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobCh {
				if ctx.Err() != nil {
					resultCh <- result{idx: idx, err: ctx.Err()}
					continue
				}
				s, err := solveOne(ctx, o.Timeout, jobs[idx])
				resultCh <- result{idx, s, err}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
	}()

	samples := make([]Sample, len(jobs))
	var firstErr error
	for r := range resultCh {
		if r.err != nil {
			if firstErr == nil {
				firstErr = r.err
			}
			continue
		}
		samples[r.idx] = r.s
		o.Logger.V(1).Info("solved", "size", r.s.Size, "method", r.s.Method.String(),
			"run", r.s.Run, "cost", r.s.Cost, "elapsed", r.s.Elapsed, "timedOut", r.s.TimedOut)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	return samples, nil
}

// solveOne runs a single job. An exact solve that hits the cutoff is
// replaced by the heuristic answer; the elapsed time covers both.
func solveOne(ctx context.Context, timeout time.Duration, j job) (Sample, error) {
	s := Sample{Size: j.size, Run: j.run, Method: j.method}

	solveCtx, cancel := ctx, context.CancelFunc(func() {})
	if j.method == tsp.MethodExact && timeout > 0 {
		solveCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	start := time.Now()
	res, err := tsp.Solve(j.m, j.method, tsp.WithContext(solveCtx))
	if errors.Is(err, tsp.ErrCanceled) {
		if ctx.Err() != nil {
			return s, ctx.Err()
		}
		s.TimedOut = true
		res, err = tsp.Solve(j.m, tsp.MethodGreedy)
	}
	s.Elapsed = time.Since(start)
	if err != nil {
		return s, fmt.Errorf("bench: size %d %s run %d: %w", j.size, j.method, j.run, err)
	}
	s.Cost = res.Cost
	s.Nodes = res.Stats.Nodes

	return s, nil
}

func aggregate(sizes []int, samples []Sample) []Row {
	bySize := lo.GroupBy(samples, func(s Sample) int { return s.Size })

	rows := make([]Row, 0, len(sizes))
	for _, size := range sizes {
		group := bySize[size]
		exact := lo.Filter(group, func(s Sample, _ int) bool { return s.Method == tsp.MethodExact })
		greedy := lo.Filter(group, func(s Sample, _ int) bool { return s.Method == tsp.MethodGreedy })

		finished := lo.Filter(exact, func(s Sample, _ int) bool { return !s.TimedOut })

		r := Row{Size: size, ExactCost: math.NaN(), Deviation: math.NaN()}
		r.GreedyCost = stat.Mean(costs(greedy), nil)
		if len(finished) > 0 {
			r.ExactCost = stat.Mean(costs(finished), nil)
			r.Deviation = deviation(r.ExactCost, r.GreedyCost)
		}
		r.ExactTime, r.ExactStd = meanStd(times(exact))
		r.GreedyTime, r.GreedyStd = meanStd(times(greedy))
		r.TimedOut = len(exact) - len(finished)
		rows = append(rows, r)
	}
	slices.SortStableFunc(rows, func(a, b Row) int { return a.Size - b.Size })

	return rows
}

func costs(ss []Sample) []float64 {
	return lo.Map(ss, func(s Sample, _ int) float64 { return s.Cost })
}

func times(ss []Sample) []float64 {
	return lo.Map(ss, func(s Sample, _ int) float64 { return s.Elapsed.Seconds() })
}

// meanStd is stat.MeanStdDev with a zero deviation for a single sample.
func meanStd(x []float64) (float64, float64) {
	if len(x) < 2 {
		return stat.Mean(x, nil), 0
	}

	return stat.MeanStdDev(x, nil)
}

// deviation returns the heuristic's excess over the exact cost in percent.
// A zero exact cost yields +Inf.
func deviation(exact, greedy float64) float64 {
	if exact == 0 {
		return math.Inf(1)
	}

	return (greedy - exact) / exact * 100
}
