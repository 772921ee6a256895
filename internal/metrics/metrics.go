// Package metrics defines and registers all custom Prometheus metrics for
// the knowledge platform. It is the single source of truth for metric names,
// labels, and help strings. All metrics register with the default registry
// at package init via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "knowledge"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "failure", or "throttled"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SessionVerificationsTotal counts session token verifications.
// Label:
//   - result: "ok", "expired", or "invalid"
var SessionVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// AccessDeniedTotal counts artifact reads denied by the visibility predicate.
// Label:
//   - reason: "hr_only" or "insufficient_level"
var AccessDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "access_denied_total",
		Help:      "Total number of artifact accesses denied by policy.",
	},
	[]string{"reason"},
)

// SearchesTotal counts executed catalog searches (empty queries excluded).
var SearchesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "searches_total",
		Help:      "Total number of catalog searches executed.",
	},
)

// SearchDuration measures end-to-end search latency.
var SearchDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_duration_seconds",
		Help:      "Duration of catalog searches.",
		Buckets:   prometheus.DefBuckets,
	},
)

// AuditQueueDepth tracks pending audit writes per dispatcher worker.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", ...)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of audit entries pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
