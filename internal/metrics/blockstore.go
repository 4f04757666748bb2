package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockstoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "blockstore",
		Name:      "operations_total",
		Help:      "Count of block store operations.",
	}, []string{"operation", "status"})
	blockstoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "blockstore",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block store operations.",
		Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "status"})
)

// Blockstore tracks metrics for block store reads and writes.
type Blockstore struct{}

// NewBlockstore creates a Blockstore metrics collector.
func NewBlockstore() *Blockstore {
	return &Blockstore{}
}

// Observe records duration and status of a store operation.
func (Blockstore) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	blockstoreOperationsTotal.WithLabelValues(operation, status).Inc()
	blockstoreOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
