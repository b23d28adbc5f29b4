package assistant

import "github.com/prometheus/client_golang/prometheus"

// Metrics are the Prometheus collectors of this package. They are
// registered by the router.
var Metrics = []prometheus.Collector{
	attemptCount,
	failureCount,
	fallbackCount,
}

var attemptCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "advisor_attempts_total",
		Help: "How many requests to the financial advisor were attempted, partitioned by result.",
	},
	[]string{"result"},
)

var failureCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "advisor_failures_total",
		Help: "How many advisor requests failed after all attempts, partitioned by error kind.",
	},
	[]string{"kind"},
)

var fallbackCount = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "advisor_fallbacks_total",
		Help: "How many answers were generated by the fallback responder.",
	},
)
