// Package metrics defines the custom Prometheus metrics of the dispatch
// service. Metrics are registered with the default registry on package init
// through promauto and exposed by the HTTP server on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dispatch"

// ── Dispatch ──────────────────────────────────────────────────────────────────

// AutoAssignTotal counts auto-assign attempts.
// Label:
//   - outcome: "assigned" or the negative reason (e.g. "already_assigned", "no_couriers_available")
var AutoAssignTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auto_assign_total",
		Help:      "Total number of auto-assign attempts, by outcome.",
	},
	[]string{"outcome"},
)

// RankedCandidates observes how many couriers qualified for an order.
var RankedCandidates = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ranked_candidates",
		Help:      "Number of eligible couriers per ranking.",
		Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
	},
)

// ── Location ingestion ────────────────────────────────────────────────────────

// LocationPingsTotal counts accepted courier position reports.
var LocationPingsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_pings_total",
		Help:      "Total number of accepted courier location reports.",
	},
)

// LocationFanoutErrorsTotal counts per-order fan-out failures that were swallowed.
// Label:
//   - stage: "log", "event" or "commit"
var LocationFanoutErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "location_fanout_errors_total",
		Help:      "Total number of per-order location fan-out failures.",
	},
	[]string{"stage"},
)

// ── Event log ─────────────────────────────────────────────────────────────────

// EventsAppendedTotal counts appended log entries.
// Label:
//   - type: event type tag
var EventsAppendedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_appended_total",
		Help:      "Total number of realtime events appended to the log.",
	},
	[]string{"type"},
)

// EventsDeletedTotal counts entries removed by the retention sweep.
var EventsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_deleted_total",
		Help:      "Total number of realtime events removed by retention.",
	},
)

// StreamConnections tracks currently open event streams.
// Label:
//   - audience: "staff" or "public"
var StreamConnections = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "stream_connections",
		Help:      "Current number of open event streams.",
	},
	[]string{"audience"},
)

// EventsDeliveredTotal counts entries written to stream and poll clients.
// Label:
//   - surface: "stream", "poll" or "snapshot"
var EventsDeliveredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_delivered_total",
		Help:      "Total number of realtime events delivered to clients.",
	},
	[]string{"surface"},
)

// TrackingTokenCacheTotal counts token cache lookups.
// Label:
//   - result: "hit" or "miss"
var TrackingTokenCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tracking_token_cache_total",
		Help:      "Total number of tracking token cache lookups, by result.",
	},
	[]string{"result"},
)

// ── Background jobs ───────────────────────────────────────────────────────────

// JobRunsTotal counts scheduled job executions.
// Labels:
//   - job: job name as registered in the job manager
//   - result: "ok" or "error"
var JobRunsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_runs_total",
		Help:      "Total number of scheduled job runs, by job and result.",
	},
	[]string{"job", "result"},
)
