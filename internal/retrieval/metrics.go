package retrieval

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tier attempt outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeInsufficient = "insufficient"
	OutcomeError        = "error"
)

// Metrics holds the cascade's prometheus collectors. A nil *Metrics records
// nothing.
type Metrics struct {
	tierAttempts   *prometheus.CounterVec
	tierResults    *prometheus.HistogramVec
	searchSeconds  prometheus.Histogram
	primaryRetries prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		tierAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trini_cascade_tier_attempts_total",
				Help: "Cascade tier attempts by tier and outcome",
			},
			[]string{"tier", "outcome"},
		),
		tierResults: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trini_cascade_results",
				Help:    "Recommendations produced per tier attempt",
				Buckets: []float64{0, 1, 3, 5, 10, 20, 40},
			},
			[]string{"tier"},
		),
		searchSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "trini_cascade_search_seconds",
				Help:    "End-to-end cascade search duration in seconds",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
		),
		primaryRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "trini_primary_retries_total",
				Help: "Primary search retry attempts",
			},
		),
	}
}

func (m *Metrics) tierAttempt(tier, outcome string) {
	if m == nil {
		return
	}
	m.tierAttempts.WithLabelValues(tier, outcome).Inc()
}

func (m *Metrics) results(tier string, n int) {
	if m == nil {
		return
	}
	m.tierResults.WithLabelValues(tier).Observe(float64(n))
}

func (m *Metrics) observeSearch(d time.Duration) {
	if m == nil {
		return
	}
	m.searchSeconds.Observe(d.Seconds())
}

func (m *Metrics) primaryRetry() {
	if m == nil {
		return
	}
	m.primaryRetries.Inc()
}
