package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainexec/internal/chain"
	"github.com/goodnatureofminers/chainexec/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	queryCompletedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "query",
		Name:      "completed_total",
		Help:      "Count of completed chain queries by status code.",
	}, []string{"operation", "network", "code"})
	queryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "query",
		Name:      "duration_seconds",
		Help:      "Time from issuing a chain query to its completion.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// Query tracks chain query completions.
type Query struct {
	network string
}

// NewQuery constructs a Query collector.
func NewQuery(network model.Network) *Query {
	return &Query{network: orUnknown(network)}
}

// Observe records a query completion.
func (m Query) Observe(operation string, code chain.Code, started time.Time) {
	queryCompletedTotal.WithLabelValues(operation, m.network, code.Label()).Inc()
	queryDuration.WithLabelValues(operation, m.network, statusOf(code.Err())).Observe(time.Since(started).Seconds())
}
