// Package tsp: Little's branch-and-bound (exact search over reduced matrices).
//
// Little enumerates Hamiltonian cycles from city 0 by depth-first search.
// Every node owns a reduced cost matrix; the accumulated cost of a node is
// the initial reduction plus, for each move, the reduced edge cost and the
// reduction of the child matrix. That sum never exceeds the true cost of
// any tour completing the node, so it is a valid lower bound.
//
// Per node (state EXPANDING):
//  1. Candidates: unvisited cities with a finite edge from the current
//     city, sorted by that edge cost (index tiebreak).
//  2. Child matrix: copy, forbid the current row and the candidate column,
//     forbid the premature closing edge candidate→0 (unless the candidate is
//     the last city), forbid candidate→SelectedEdges[current] when present.
//  3. Reduce the child, add min(MST, two-smallest-edges) over the remaining
//     cities, recurse only if the bound is strictly below the incumbent.
//
// When every city is on the path (state COMPLETE) the closing edge back to
// 0 is tried; the incumbent is replaced only on strict improvement, so the
// first tour found at a given cost is kept.
//
// Concurrency: one engine per call; nothing is shared across calls.
// Cancellation: the context is polled every 4096 node events.
package tsp

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/littletsp/matrix"
)

// cancelCheckMask sets how often the context is polled (every 4096 nodes).
const cancelCheckMask = 4095

// incumbent is the best complete tour found so far. It is owned by a single
// bbEngine and shared by reference across all its recursive frames.
type incumbent struct {
	cost float64 // accumulated search cost; +Inf until a tour is found
	tour []int
}

// bbEngine holds the search policy, the incumbent and the counters.
type bbEngine struct {
	n     int
	opts  Options
	best  incumbent
	stats Stats
	steps int
	err   error // set once the context is done
}

// canceled polls the context sparsely and latches its error.
func (e *bbEngine) canceled() bool {
	if e.err != nil {
		return true
	}
	e.steps++
	if e.steps&cancelCheckMask != 0 {
		return false
	}
	if err := e.opts.Ctx.Err(); err != nil {
		e.err = err
		return true
	}

	return false
}

// complete handles a node whose path already holds all n cities.
func (e *bbEngine) complete(g grid, current int, cost float64, path []int) {
	back := g.at(current, 0)
	if back == inf {
		return // dead end: no closing edge
	}
	e.stats.Completed++
	total := cost + back
	if total < e.best.cost {
		e.best.cost = total
		e.best.tour = extendPath(path, 0)
		e.stats.Improvements++
		e.opts.OnImprove(total, e.best.tour)
	}
}

// candidates returns the unvisited cities reachable from current, sorted by
// ascending edge cost with index tiebreak.
func candidates(g grid, current int, visited []bool) []int {
	out := make([]int, 0, g.n)
	var v int
	for v = 0; v < g.n; v++ {
		if !visited[v] && g.at(current, v) != inf {
			out = append(out, v)
		}
	}
	sort.SliceStable(out, func(a, b int) bool {
		return g.at(current, out[a]) < g.at(current, out[b])
	})

	return out
}

// remainingAfter lists the unvisited cities except next, in index order.
func remainingAfter(visited []bool, next int) []int {
	out := make([]int, 0, len(visited))
	for v, seen := range visited {
		if !seen && v != next {
			out = append(out, v)
		}
	}

	return out
}

// expand is one search node. g is the node's reduced matrix; depth is the
// number of cities on path; cost is the node's accumulated lower bound.
// Every argument is owned by this frame: children get their own copies.
func (e *bbEngine) expand(g grid, current, depth int, cost float64, visited []bool, path []int, selected map[int]int) {
	if e.canceled() {
		return
	}
	if depth == e.n {
		e.complete(g, current, cost, path)
		return
	}

	for _, next := range candidates(g, current, visited) {
		if e.err != nil {
			return
		}
		child := g.clone()
		child.forbidRow(current)
		child.forbidCol(next)
		if depth+1 < e.n {
			child.set(next, 0, inf)
		}
		if prev, ok := selected[current]; ok {
			child.set(next, prev, inf)
		}

		childSelected := make(map[int]int, len(selected)+1)
		for k, v := range selected {
			childSelected[k] = v
		}
		childSelected[current] = next

		reduced, amount := child.reduce()
		newCost := cost + g.at(current, next) + amount
		bound := newCost + reduced.combinedEstimate(remainingAfter(visited, next))

		e.stats.Nodes++
		pruned := !(bound < e.best.cost)
		e.opts.OnNode(NodeEvent{
			Depth:     depth,
			From:      current,
			To:        next,
			Reduction: amount,
			Cost:      newCost,
			Bound:     bound,
			Pruned:    pruned,
		})
		if pruned {
			e.stats.Pruned++
			continue
		}

		childVisited := append([]bool(nil), visited...)
		childVisited[next] = true
		e.expand(reduced, next, depth+1, newCost, childVisited, extendPath(path, next), childSelected)
	}
}

// extendPath returns a new slice path+[v]; path itself is never aliased.
func extendPath(path []int, v int) []int {
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = v

	return out
}

// Little solves the TSP exactly with Little's branch-and-bound.
//
// Contract:
//   - dist is square, n ≥ 1, non-negative, with a +Inf diagonal.
//   - On success Tour is a closed cycle from 0 and Cost is the sum of the
//     original dist entries along it (rounded to 1e-9).
//   - If no Hamiltonian cycle exists, Cost is +Inf, Tour is empty and the
//     error is nil.
//
// Errors: validation sentinels from types.go; ErrCanceled (wrapping the
// context error) when the WithContext context ends first.
func Little(dist matrix.Matrix, opts ...Option) (Result, error) {
	n, err := validateCostMatrix(dist)
	if err != nil {
		return Result{}, err
	}

	return little(prefetch(dist, n), buildOptions(opts))
}

// little runs the search on an already validated, prefetched matrix.
func little(orig grid, opts Options) (Result, error) {
	if orig.n == 1 {
		return trivialResult(), nil
	}

	if err := opts.Ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrCanceled, err)
	}

	e := bbEngine{
		n:    orig.n,
		opts: opts,
		best: incumbent{cost: inf, tour: []int{}},
	}

	reduced, initial := orig.reduce()
	visited := make([]bool, orig.n)
	visited[0] = true
	e.expand(reduced, 0, 1, initial, visited, []int{0}, map[int]int{})

	if e.err != nil {
		return Result{Stats: e.stats}, fmt.Errorf("%w: %w", ErrCanceled, e.err)
	}
	if e.best.cost == inf {
		return noTour(e.stats), nil
	}

	return Result{
		Tour:  e.best.tour,
		Cost:  orig.tourCost(e.best.tour),
		Stats: e.stats,
	}, nil
}

// trivialResult is the single-city convention: cost 0, tour [0 0].
func trivialResult() Result {
	return Result{Tour: []int{0, 0}, Cost: 0}
}

// noTour is the infeasibility sentinel: +Inf cost, empty tour.
func noTour(stats Stats) Result {
	return Result{Tour: []int{}, Cost: inf, Stats: stats}
}
