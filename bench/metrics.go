package bench

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors of one benchmark run. Registry is private to
// the run so repeated runs never collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	solveTotal    *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	searchNodes   *prometheus.HistogramVec
	timeouts      prometheus.Counter
}

func newMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		solveTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "littletsp_bench_solves_total",
			Help: "Completed solves by method",
		}, []string{"method"}),
		solveDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "littletsp_bench_solve_duration_seconds",
			Help:    "Wall-clock duration of a single solve",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 12), // 10µs to ~40s
		}, []string{"method", "size"}),
		searchNodes: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "littletsp_bench_search_nodes",
			Help:    "Branch-and-bound nodes expanded per exact solve",
			Buckets: prometheus.ExponentialBuckets(1, 4, 12),
		}, []string{"size"}),
		timeouts: f.NewCounter(prometheus.CounterOpts{
			Name: "littletsp_bench_timeouts_total",
			Help: "Exact solves cut off and replaced by the heuristic",
		}),
	}
}

func (m *Metrics) observe(s Sample) {
	method := s.Method.String()
	size := strconv.Itoa(s.Size)

	m.solveTotal.WithLabelValues(method).Inc()
	m.solveDuration.WithLabelValues(method, size).Observe(s.Elapsed.Seconds())
	if s.TimedOut {
		m.timeouts.Inc()
		return
	}
	if s.Nodes > 0 {
		m.searchNodes.WithLabelValues(size).Observe(float64(s.Nodes))
	}
}

// WriteTextfile dumps the registry in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
