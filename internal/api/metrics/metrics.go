// Package metrics defines and registers all custom Prometheus metrics for
// the billing API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry via promauto at package
// load; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "billing"

// LoginsTotal counts authentication attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// FeesCreatedTotal counts fees created by administrators.
var FeesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "fees_created_total",
		Help:      "Total number of fees created.",
	},
)

// PaymentsRecordedTotal counts fees transitioning to paid.
// Label:
//   - source: "direct" (mark-as-paid endpoint) or "pay_request" (admin approval)
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of fee payments recorded, by source.",
	},
	[]string{"source"},
)

// InvoicesRenderedTotal counts PDF invoices generated and delivered.
var InvoicesRenderedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_rendered_total",
		Help:      "Total number of invoice PDFs rendered.",
	},
)

// ReportCacheTotal counts report cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of income report cache lookups, by result.",
	},
	[]string{"result"},
)
