package metrics

import (
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	candleRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beancounter",
		Subsystem: "candle_repository",
		Name:      "operations_total",
		Help:      "Count of candle repository operations.",
	}, []string{"operation", "exchange", "currency", "status"})
	candleRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "beancounter",
		Subsystem: "candle_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of candle repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "exchange", "currency", "status"})
)

// CandleRepository tracks metrics for ClickHouse candle lookups.
type CandleRepository struct{}

// NewCandleRepository creates a CandleRepository metrics collector.
func NewCandleRepository() *CandleRepository {
	return &CandleRepository{}
}

// Observe records duration and status of a repository operation.
func (m CandleRepository) Observe(operation, exchange string, currency model.Currency, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if exchange == "" {
		exchange = "unknown"
	}
	if currency == "" {
		currency = "unknown"
	}

	candleRepositoryRequestsTotal.WithLabelValues(operation, exchange, string(currency), status).Inc()
	candleRepositoryRequestDuration.WithLabelValues(operation, exchange, string(currency), status).Observe(time.Since(started).Seconds())
}
