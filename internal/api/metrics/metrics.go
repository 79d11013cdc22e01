// Package metrics defines and registers the custom Prometheus metrics of the
// TPE inventory API. HTTP request metrics come from echoprometheus; this
// package only holds business counters.
//
// All metrics register with the default registry through promauto when the
// package is imported.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tpe_manager"

// ── Auth metrics ──────────────────────────────────────────────────────────────

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

// UsersCreatedTotal counts accounts created through the API.
// Label:
//   - role: "admin" or "user"
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// ── Terminal metrics ──────────────────────────────────────────────────────────

// TerminalsCreatedTotal counts newly registered terminals.
// Label:
//   - model: the terminal model, or "unspecified"
var TerminalsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "terminals_created_total",
		Help:      "Total number of terminals created, by model.",
	},
	[]string{"model"},
)

// TerminalsDeletedTotal counts removed terminals.
var TerminalsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "terminals_deleted_total",
		Help:      "Total number of terminals deleted.",
	},
)

// TerminalExportsTotal counts spreadsheet exports.
// Label:
//   - result: "success" or "error"
var TerminalExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "terminal_exports_total",
		Help:      "Total number of inventory exports, by result.",
	},
	[]string{"result"},
)

// TerminalExportRows observes how many terminals each export contained.
var TerminalExportRows = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "terminal_export_rows",
		Help:      "Number of terminal rows written per export.",
		Buckets:   prometheus.ExponentialBuckets(10, 4, 6), // 10 … 10240
	},
)
