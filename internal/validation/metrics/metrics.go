package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Overall verdicts by status and amount class.
	Verdicts *prometheus.CounterVec

	// Individual check outcomes by rule and status.
	CheckOutcomes *prometheus.CounterVec

	// Registry lookup latency, including cache hits.
	RegistryLatency prometheus.Histogram

	// Full evaluation latency including the registry step.
	EvaluateLatency prometheus.Histogram
}

// New creates a Metrics instance with all validation metrics registered.
func New() *Metrics {
	return &Metrics{
		Verdicts: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "belegcheck_validation_verdicts_total",
			Help: "Total aggregated verdicts by status and amount class",
		}, []string{"status", "amount_class"}),

		CheckOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "belegcheck_validation_check_outcomes_total",
			Help: "Total per-rule check outcomes by rule and status",
		}, []string{"rule", "status"}),

		RegistryLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "belegcheck_validation_registry_duration_seconds",
			Help:    "Duration of the VAT registry lookup step",
			Buckets: []float64{0.001, 0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		EvaluateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "belegcheck_validation_evaluate_duration_seconds",
			Help:    "Duration of full invoice evaluation including the registry step",
			Buckets: []float64{0.001, 0.005, 0.025, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementVerdict records one aggregated verdict.
func (m *Metrics) IncrementVerdict(status, amountClass string) {
	if m != nil {
		m.Verdicts.WithLabelValues(status, amountClass).Inc()
	}
}

// IncrementCheckOutcome records one per-rule outcome.
func (m *Metrics) IncrementCheckOutcome(rule, status string) {
	if m != nil {
		m.CheckOutcomes.WithLabelValues(rule, status).Inc()
	}
}

// ObserveRegistryLatency records the duration of the registry step.
func (m *Metrics) ObserveRegistryLatency(d time.Duration) {
	if m != nil {
		m.RegistryLatency.Observe(d.Seconds())
	}
}

// ObserveEvaluateLatency records the total evaluation duration.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}
