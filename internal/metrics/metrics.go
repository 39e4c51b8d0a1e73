// Package metrics exposes Prometheus counters and a duration histogram for
// the planning endpoint, registered on a dedicated /metrics handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PlanRequests counts every planning call, labeled by outcome
	// ("ok", "infeasible", "error"). Requests rejected as invalid before
	// planning are not counted.
	PlanRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "powerplant_dispatch_plan_requests_total",
		Help: "Total number of production-plan requests, by outcome.",
	}, []string{"outcome"})

	// PlanDuration tracks how long one planning call takes, end to end.
	PlanDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "powerplant_dispatch_plan_duration_seconds",
		Help:    "Wall-clock duration of a single planning call.",
		Buckets: prometheus.DefBuckets,
	})

	// PlantsPerRequest tracks fleet size, useful for capacity planning of
	// the service itself.
	PlantsPerRequest = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "powerplant_dispatch_plants_per_request",
		Help:    "Number of plants supplied in a production-plan request.",
		Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
	})
)

// Registry is the registerer backing the /metrics endpoint: Prometheus's
// default one, which keeps promauto's package-level registration working
// without extra plumbing.
var Registry = prometheus.DefaultRegisterer
