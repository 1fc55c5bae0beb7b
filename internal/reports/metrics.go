package reports

import "github.com/prometheus/client_golang/prometheus"

// Collectors returns the Prometheus collectors of this package
// so that they can be registered together with the HTTP metrics.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		analysisDuration,
		cacheRequests,
	}
}

var analysisDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "analysis_duration_seconds",
		Help:    "Time spent computing budget analyses in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	},
)

var cacheRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "analysis_cache_requests_total",
		Help: "How many analysis requests were answered from the cache, partitioned by hit or miss.",
	},
	[]string{"result"},
)
