// Package metrics defines and registers all custom Prometheus metrics for the
// Snow On Ice venue API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "venue"

// LoginsTotal counts login attempts.
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

// RinkCheckinsTotal counts rink check-ins.
// Label:
//   - kind: "new" (fresh record) or "topup" (minutes added to a tracked customer)
var RinkCheckinsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rink_checkins_total",
		Help:      "Total number of rink check-ins, by kind (new/topup).",
	},
	[]string{"kind"},
)

// RinkCheckoutsTotal counts customers checked out of the rink.
var RinkCheckoutsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rink_checkouts_total",
		Help:      "Total number of rink check-outs.",
	},
)

// RinkOccupancy tracks the current number of tracked customers on the rink.
var RinkOccupancy = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rink_occupancy",
		Help:      "Current number of customers tracked on the rink.",
	},
)

// RinkPaused tracks how many tracked customers currently have a frozen
// countdown.
var RinkPaused = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "rink_paused",
		Help:      "Current number of tracked customers whose countdown is paused.",
	},
)

// SalesTotal counts recorded transactions.
// Label:
//   - kind: "sale" (point-of-sale) or "ticket" (event ticket sale)
var SalesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_total",
		Help:      "Total number of recorded transactions, by kind (sale/ticket).",
	},
	[]string{"kind"},
)

// SalesRevenue accumulates the revenue of recorded transactions.
// Label:
//   - kind: "sale" or "ticket"
var SalesRevenue = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_revenue_total",
		Help:      "Accumulated revenue of recorded transactions, by kind.",
	},
	[]string{"kind"},
)
