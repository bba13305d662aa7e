package observability

import (
	"context"

	"github.com/aretw0/clifford/pkg/circuit"
	"github.com/aretw0/clifford/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Runs       *prometheus.CounterVec
	Failures   *prometheus.CounterVec
	Rounds     prometheus.Counter
	Gates      *prometheus.CounterVec
	Rejections prometheus.Histogram
	Duration   *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clifford_runs_total",
				Help: "Total number of completed runs",
			},
			[]string{"kind"},
		),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clifford_run_failures_total",
				Help: "Total number of runs that ended with an error",
			},
			[]string{"kind"},
		),
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clifford_rounds_total",
			Help: "Total number of sweep rounds",
		}),
		Gates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clifford_gates_total",
				Help: "Total number of emitted gates",
			},
			[]string{"gate"},
		),
		Rejections: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "clifford_pair_rejections",
			Help:    "Commuting pairs redrawn before an anticommuting pair was accepted",
			Buckets: []float64{0, 1, 2, 4, 8, 16},
		}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "clifford_run_duration_seconds",
				Help: "Duration of runs",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.Runs, m.Failures, m.Rounds, m.Gates, m.Rejections, m.Duration)

	// Pre-create gate series so every kind is exported from the start.
	for _, k := range circuit.Kinds {
		m.Gates.WithLabelValues(k.String())
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRound: func(ctx context.Context, e *domain.RoundEvent) {
			m.Rounds.Inc()
			m.Rejections.Observe(float64(e.Rejections))
			for kind, n := range e.Gates.Counts() {
				m.Gates.WithLabelValues(kind.String()).Add(float64(n))
			}
		},
		OnRunComplete: func(ctx context.Context, e *domain.RunEvent) {
			kind := string(e.Kind)
			if e.Err != nil {
				m.Failures.WithLabelValues(kind).Inc()
				return
			}
			m.Runs.WithLabelValues(kind).Inc()
			m.Duration.WithLabelValues(kind).Observe(e.Duration.Seconds())
		},
	}
}
