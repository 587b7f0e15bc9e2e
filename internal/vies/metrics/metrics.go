package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the registry lookup path.
type Metrics struct {
	// Outbound lookups by outcome (conclusive, failed).
	Lookups *prometheus.CounterVec

	// Lookups answered from the cache without an outbound call.
	CacheHits prometheus.Counter
}

// New creates a Metrics instance with all vies metrics registered.
func New() *Metrics {
	return &Metrics{
		Lookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "belegcheck_vies_lookups_total",
			Help: "Total outbound VAT registry lookups by outcome",
		}, []string{"outcome"}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "belegcheck_vies_cache_hits_total",
			Help: "Total registry lookups served from the cache",
		}),
	}
}

// IncrementLookup records one outbound lookup.
func (m *Metrics) IncrementLookup(outcome string) {
	if m != nil {
		m.Lookups.WithLabelValues(outcome).Inc()
	}
}

// IncrementCacheHit records one cache-served lookup.
func (m *Metrics) IncrementCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}
