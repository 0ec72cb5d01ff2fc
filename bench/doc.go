// Package bench compares the exact branch-and-bound solver against the
// nearest-neighbor heuristic over a range of instance sizes.
//
// For every size one seeded random matrix is generated; each method solves
// it Runs times on a bounded worker pool. Exact runs that exceed Timeout
// are cancelled and replaced by the heuristic answer (counted in
// Row.TimedOut). Aggregates use gonum/stat; per-solve timings and counters
// are recorded on a private Prometheus registry returned with the Report.
//
// Report output: WriteTable (aligned text) and Plot (time and cost versus
// size, PNG/SVG/PDF chosen by file extension).
package bench
