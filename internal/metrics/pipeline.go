package metrics

import (
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineStageTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beancounter",
		Subsystem: "pipeline",
		Name:      "stage_total",
		Help:      "Count of pipeline stage executions.",
	}, []string{"stage", "currency", "status"})
	pipelineStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "beancounter",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Duration of pipeline stages.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage", "currency", "status"})
	pipelineEntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beancounter",
		Subsystem: "pipeline",
		Name:      "ledger_entries_total",
		Help:      "Count of ledger entries emitted.",
	}, []string{"currency"})
	pipelineDiagnosticsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "beancounter",
		Subsystem: "pipeline",
		Name:      "validation_diagnostics_total",
		Help:      "Count of diagnostics reported by ledger validation.",
	}, []string{"currency"})
)

// Pipeline tracks metrics for one ledger generation run.
type Pipeline struct {
	currency model.Currency
}

// NewPipeline constructs a pipeline metrics collector.
func NewPipeline(currency model.Currency) *Pipeline {
	if currency == "" {
		currency = "unknown"
	}
	return &Pipeline{currency: currency}
}

// ObserveStage records the outcome and duration of a pipeline stage.
func (m Pipeline) ObserveStage(stage string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pipelineStageTotal.WithLabelValues(stage, string(m.currency), status).Inc()
	pipelineStageDuration.WithLabelValues(stage, string(m.currency), status).Observe(time.Since(started).Seconds())
}

// ObserveEntries adds the number of emitted ledger entries.
func (m Pipeline) ObserveEntries(count int) {
	pipelineEntriesTotal.WithLabelValues(string(m.currency)).Add(float64(count))
}

// ObserveDiagnostics adds the number of validation diagnostics.
func (m Pipeline) ObserveDiagnostics(count int) {
	pipelineDiagnosticsTotal.WithLabelValues(string(m.currency)).Add(float64(count))
}
