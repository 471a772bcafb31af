package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ReconciliationsApplied counts applied price-change reconciliation batches
var ReconciliationsApplied = promauto.NewCounter(prometheus.CounterOpts{
	Name: "backoffice_reconciliations_applied_total",
	Help: "Number of price-change reconciliation batches applied.",
})

// OverrideDispositions counts individual override dispositions by kind
var OverrideDispositions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "backoffice_override_dispositions_total",
	Help: "Number of customer override dispositions applied, by kind.",
}, []string{"kind"})

// PriceChanges counts recorded product wholesale price changes
var PriceChanges = promauto.NewCounter(prometheus.CounterOpts{
	Name: "backoffice_price_changes_total",
	Help: "Number of product wholesale price changes saved.",
})

// HTTPRequests counts handled HTTP requests by path prefix and status class
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "backoffice_http_requests_total",
	Help: "Number of handled HTTP requests.",
}, []string{"handler", "code"})
