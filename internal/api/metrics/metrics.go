// Package metrics defines and registers all custom Prometheus metrics for
// the theke API. It is the single source of truth for metric names, labels,
// and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "theke"

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersSettledTotal counts orders that completed settlement.
var OrdersSettledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_settled_total",
		Help:      "Total number of orders successfully settled.",
	},
)

// OrdersRejectedTotal counts order submissions rejected by the workflow.
// Label:
//   - reason: short rejection cause (e.g. "no_active_session", "unauthorized",
//     "product_unavailable", "persistence")
var OrdersRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_rejected_total",
		Help:      "Total number of order submissions rejected, by reason.",
	},
	[]string{"reason"},
)

// OrderValueEuros observes the total amount of each settled order.
var OrderValueEuros = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "order_value_euros",
		Help:      "Distribution of settled order totals in EUR.",
		Buckets:   []float64{1, 2.5, 5, 10, 20, 50, 100},
	},
)

// SettlementDuration measures how long one settlement takes end-to-end,
// including queueing behind other orders for the same member.
var SettlementDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "settlement_duration_seconds",
		Help:      "Duration of order settlement from submission to persistence.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// SessionsOpenedTotal counts sessions opened by admins.
var SessionsOpenedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_opened_total",
		Help:      "Total number of bar sessions opened.",
	},
)

// SessionsClosedTotal counts sessions transitioned to their terminal state.
var SessionsClosedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_closed_total",
		Help:      "Total number of bar sessions closed.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsRecordedTotal counts administrative tab entries.
// Label:
//   - type: "payment", "penalty", or "adjustment"
var PaymentsRecordedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_recorded_total",
		Help:      "Total number of tab entries recorded, by type.",
	},
	[]string{"type"},
)
