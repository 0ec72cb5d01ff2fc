// Package tsp provides Travelling Salesman Problem solvers over a cost matrix.
//
// Two algorithms are offered behind a single dispatcher, Solve:
//
// Little (MethodExact) is an exact branch-and-bound over a reduced cost
// matrix (Little's algorithm).
//
//	Complexity: worst case O(n!) nodes, O(n²) work per node.
//	Memory:     O(n³) live at the deepest point (one matrix per level).
//
// NearestNeighbor (MethodGreedy) is a single greedy pass from city 0.
//
//	Complexity: O(n²).
//
// Matrix contract:
//   - square, n ≥ 1, entries non-negative;
//   - the diagonal is +Inf;
//   - an off-diagonal math.Inf(1) means "no edge".
//
// Malformed input is reported through sentinel errors (see types.go) before
// any search starts. An instance without a Hamiltonian cycle is NOT an
// error: the result is Cost == +Inf with an empty Tour.
//
// Tours are closed: for n cities len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
// The single-city instance returns Cost 0 and Tour [0 0].
package tsp
