package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Ledger operations
var (
	Operations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdfund_operations_total",
			Help: "Total number of campaign operations by name and outcome",
		},
		[]string{"operation", "outcome"},
	)

	AmountMoved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdfund_amount_moved_total",
			Help: "Total asset units moved, by event kind (deposit, withdraw, refund)",
		},
		[]string{"kind"},
	)
)

// Campaign state
var (
	TotalRaised = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "crowdfund_total_raised",
		Help: "Current total raised, in asset units",
	})

	CurrentLedger = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "crowdfund_current_ledger",
		Help: "Last ledger sequence observed by the campaign ledger",
	})
)

// Transport
var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "crowdfund_http_requests_total",
			Help: "Total HTTP requests by route and status code",
		},
		[]string{"route", "code"},
	)

	ClockRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crowdfund_clock_rpc_retries_total",
		Help: "Total retried ledger sequence lookups against the RPC server",
	})
)
