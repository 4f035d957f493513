package businessflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Daypart definition resolutions partitioned by cache outcome (hit, miss, bypass)
	daypartResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signage",
			Name:      "daypart_resolutions_total",
			Help:      "Total number of daypart definition resolutions",
		},
		[]string{"cache"},
	)

	// Effective schedule merges and the number of store schedules they suppressed
	scheduleMergesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "signage",
			Name:      "schedule_merges_total",
			Help:      "Total number of effective schedule merges",
		},
	)
	suppressedStoreSchedulesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "signage",
			Name:      "suppressed_store_schedules_total",
			Help:      "Total number of store schedules superseded by placement customizations",
		},
	)

	// Schedule writes partitioned by operation and outcome
	scheduleWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "signage",
			Name:      "schedule_writes_total",
			Help:      "Total number of placement schedule writes",
		},
		[]string{"operation", "outcome"},
	)
)

func observeWrite(operation string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case IsValidation(err):
		outcome = "invalid"
	case IsNotFound(err):
		outcome = "not_found"
	case IsPartialFailure(err):
		outcome = "rolled_back"
	default:
		outcome = "error"
	}
	scheduleWritesTotal.WithLabelValues(operation, outcome).Inc()
}
