// Package metrics provides Prometheus collectors for the ledger pipeline.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	esploraRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beancounter",
		Subsystem: "esplora_client",
		Name:      "requests_total",
		Help:      "Count of block explorer requests.",
	}, []string{"operation", "network", "status"})
	esploraRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "beancounter",
		Subsystem: "esplora_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of block explorer requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
	esploraRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beancounter",
		Subsystem: "esplora_client",
		Name:      "retries_total",
		Help:      "Count of retried block explorer requests after connectivity failures.",
	}, []string{"network"})
)

// EsploraClient tracks metrics for block explorer calls.
type EsploraClient struct {
	network model.Network
}

// NewEsploraClient constructs a metrics collector for block explorer calls.
func NewEsploraClient(network model.Network) *EsploraClient {
	if network == "" {
		network = "unknown"
	}
	return &EsploraClient{network: network}
}

// Observe records a single request outcome and duration.
func (m EsploraClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	esploraRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	esploraRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveRetry counts a retry after a connectivity failure.
func (m EsploraClient) ObserveRetry() {
	esploraRetriesTotal.WithLabelValues(string(m.network)).Inc()
}
