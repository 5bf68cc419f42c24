// Package metrics defines and registers all custom Prometheus metrics for the
// expense API. It is the single source of truth for metric names, labels, and
// help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "expense"

// AccountsCreatedTotal counts successfully created user accounts.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of user accounts created.",
	},
)

// AccountsUpdatedTotal counts successful account updates.
var AccountsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_updated_total",
		Help:      "Total number of user accounts updated.",
	},
)

// EntriesCreatedTotal counts newly created ledger entries.
// Label:
//   - type: "income" or "expense"
var EntriesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_created_total",
		Help:      "Total number of ledger entries created, by entry type.",
	},
	[]string{"type"},
)

// EntriesDeletedTotal counts permanently removed ledger entries.
var EntriesDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entries_deleted_total",
		Help:      "Total number of ledger entries deleted.",
	},
)
