package swarm

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/phylopso/operator"
)

// metrics is nil when no registerer was configured; every method is nil-safe.
type metrics struct {
	attempts     *prometheus.CounterVec
	improvements prometheus.Counter
	best         prometheus.Gauge
	round        prometheus.Histogram
}

func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		return nil
	}
	f := promauto.With(reg)
	return &metrics{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "phylopso",
			Name:      "operator_attempts_total",
			Help:      "Tree edit attempts by kind and result",
		}, []string{"kind", "result"}),
		improvements: f.NewCounter(prometheus.CounterOpts{
			Namespace: "phylopso",
			Name:      "particle_improvements_total",
			Help:      "Strict improvements of a particle best",
		}),
		best: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "phylopso",
			Name:      "swarm_best_loglikelihood",
			Help:      "Log-likelihood of the swarm best tree",
		}),
		round: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "phylopso",
			Name:      "round_duration_seconds",
			Help:      "Wall time of one search round",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
	}
}

func (m *metrics) observeAttempt(o operator.Outcome) {
	if m == nil {
		return
	}
	result := "applied"
	if !o.Applied {
		result = o.Reason.String()
	}
	m.attempts.WithLabelValues(o.Kind.String(), result).Inc()
}

func (m *metrics) observeImprovement() {
	if m == nil {
		return
	}
	m.improvements.Inc()
}

func (m *metrics) setBest(v float64) {
	if m == nil {
		return
	}
	m.best.Set(v)
}

func (m *metrics) observeRound(d time.Duration) {
	if m == nil {
		return
	}
	m.round.Observe(d.Seconds())
}
