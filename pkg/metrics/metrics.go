// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route and business code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "libra_http_requests_total",
			Help: "Total HTTP requests processed.",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "libra_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "path"},
	)

	// BorrowsTotal counts successfully recorded borrows.
	BorrowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "libra_borrows_total",
		Help: "Borrow transactions committed.",
	})

	// BorrowsRejectedTotal counts borrows rejected by a business rule
	// (no copies, borrow cap).
	BorrowsRejectedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "libra_borrows_rejected_total",
		Help: "Borrow attempts rejected by business rules.",
	})

	// ReturnsTotal counts successfully recorded returns.
	ReturnsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "libra_returns_total",
		Help: "Return transactions committed.",
	})

	// TxRetriesTotal counts serialization-conflict retries of the borrow and
	// return units of work.
	TxRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "libra_tx_retries_total",
		Help: "Transaction retries after serialization conflicts.",
	})
)
