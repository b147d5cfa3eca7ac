package adscene

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PlannerMetrics exports path planner activity as Prometheus metrics. Assign
// it to Game.Metrics.
type PlannerMetrics struct {
	requests    *prometheus.CounterVec
	steps       prometheus.Histogram
	duration    prometheus.Histogram
	pathLengths prometheus.Histogram
}

// NewPlannerMetrics creates the planner metrics and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPlannerMetrics(reg prometheus.Registerer) (*PlannerMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &PlannerMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adscene",
			Subsystem: "planner",
			Name:      "requests_total",
			Help:      "Finished path requests by result.",
		}, []string{"result"}),
		steps: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adscene",
			Subsystem: "planner",
			Name:      "steps",
			Help:      "Planner steps per finished request.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adscene",
			Subsystem: "planner",
			Name:      "duration_seconds",
			Help:      "Wall-clock time from request to completion.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		pathLengths: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adscene",
			Subsystem: "planner",
			Name:      "path_points",
			Help:      "Points in solved routes.",
			Buckets:   prometheus.LinearBuckets(2, 2, 10),
		}),
	}
	for _, c := range []prometheus.Collector{m.requests, m.steps, m.duration, m.pathLengths} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PlannerMetrics) observe(ev PathEvent) {
	result := "unreachable"
	if ev.Found {
		result = "found"
		m.pathLengths.Observe(float64(ev.Points))
	}
	m.requests.WithLabelValues(result).Inc()
	m.steps.Observe(float64(ev.Steps))
	m.duration.Observe(ev.Duration.Seconds())
}
