package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainexec/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_archive",
		Name:      "operations_total",
		Help:      "Count of archive repository operations.",
	}, []string{"operation", "network", "status"})
	clickhouseRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "clickhouse_archive",
		Name:      "operation_duration_seconds",
		Help:      "Duration of archive repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})

	archiveFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flush_total",
		Help:      "Count of archive batch flushes.",
	}, []string{"network", "status"})
	archiveFlushSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "archive",
		Name:      "flush_blocks",
		Help:      "Number of blocks written per archive flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"network"})
)

// ClickhouseArchive tracks metrics for ClickHouse archive operations.
type ClickhouseArchive struct{}

// NewClickhouseArchive creates a ClickhouseArchive metrics collector.
func NewClickhouseArchive() *ClickhouseArchive {
	return &ClickhouseArchive{}
}

// Observe records duration and status of a repository operation.
func (ClickhouseArchive) Observe(operation string, network model.Network, err error, started time.Time) {
	status := statusOf(err)
	clickhouseRequestsTotal.WithLabelValues(operation, orUnknown(network), status).Inc()
	clickhouseRequestDuration.WithLabelValues(operation, orUnknown(network), status).Observe(time.Since(started).Seconds())
}

// Archive tracks the block export pipeline.
type Archive struct {
	network string
}

// NewArchive constructs an Archive collector.
func NewArchive(network model.Network) *Archive {
	return &Archive{network: orUnknown(network)}
}

// ObserveFlush records a batch flush.
func (m Archive) ObserveFlush(err error, blocks int) {
	archiveFlushTotal.WithLabelValues(m.network, statusOf(err)).Inc()
	archiveFlushSize.WithLabelValues(m.network).Observe(float64(blocks))
}
