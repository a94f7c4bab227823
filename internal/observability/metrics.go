package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and gauges for the resolver service.
type Metrics struct {
	ResolveRequests *prometheus.CounterVec // labels: source={manual_override,cache,algorithm}, strategy={token,fuzzy,""}
	CacheLookups    *prometheus.CounterVec // labels: result={hit,miss}
	GazetteerSize   prometheus.Gauge
	DatasetLoadErrs prometheus.Counter
}

// NewMetrics creates and registers all resolver metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ResolveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lake_resolver",
			Name:      "resolve_requests_total",
			Help:      "Resolve calls by result source and algorithmic strategy.",
		}, []string{"source", "strategy"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lake_resolver",
			Name:      "cache_lookups_total",
			Help:      "Result cache lookups by outcome.",
		}, []string{"result"}),
		GazetteerSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lake_resolver",
			Name:      "gazetteer_records",
			Help:      "Number of hydrated records currently held by the gazetteer store.",
		}),
		DatasetLoadErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lake_resolver",
			Name:      "dataset_load_errors_total",
			Help:      "Total fatal dataset load failures (missing or corrupt).",
		}),
	}

	prometheus.MustRegister(
		m.ResolveRequests,
		m.CacheLookups,
		m.GazetteerSize,
		m.DatasetLoadErrs,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them anywhere, to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ResolveRequests: prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "lake_resolver", Name: "resolve_requests_total"}, []string{"source", "strategy"}),
		CacheLookups:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "lake_resolver", Name: "cache_lookups_total"}, []string{"result"}),
		GazetteerSize:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "lake_resolver", Name: "gazetteer_records"}),
		DatasetLoadErrs: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "lake_resolver", Name: "dataset_load_errors_total"}),
	}
}

// ObserveResolve increments the resolve-requests counter for the given
// source and strategy. strategy may be empty for non-algorithmic sources.
func (m *Metrics) ObserveResolve(source, strategy string) {
	m.ResolveRequests.WithLabelValues(source, strategy).Inc()
}

// ObserveCacheLookup increments the cache-lookups counter for a hit or miss.
func (m *Metrics) ObserveCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
