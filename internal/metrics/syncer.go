package metrics

import (
	"time"

	"github.com/goodnatureofminers/chainexec/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncerConnectTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "connect_batches_total",
		Help:      "Count of block batches fetched from upstream and connected.",
	}, []string{"network", "status"})

	syncerConnectDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "connect_batch_duration_seconds",
		Help:      "Duration of fetching and connecting a block batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	syncerConnectedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "connected_blocks_total",
		Help:      "Count of blocks connected to the local store.",
	}, []string{"network"})

	syncerDisconnectedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "disconnected_blocks_total",
		Help:      "Count of blocks disconnected during reorganizations.",
	}, []string{"network"})

	syncerTipHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "tip_height",
		Help:      "Height of the local chain tip.",
	}, []string{"network"})

	syncerMempoolTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "mempool_refresh_total",
		Help:      "Count of memory pool refreshes.",
	}, []string{"network", "status"})

	syncerMempoolAdded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "syncer",
		Name:      "mempool_added_total",
		Help:      "Count of pool transactions mirrored into the local store.",
	}, []string{"network"})
)

// Syncer tracks metrics for the upstream follower.
type Syncer struct {
	network string
}

// NewSyncer constructs a Syncer collector.
func NewSyncer(network model.Network) *Syncer {
	return &Syncer{network: orUnknown(network)}
}

// ObserveConnect records a connect batch.
func (m Syncer) ObserveConnect(err error, blocks int, started time.Time) {
	status := statusOf(err)
	syncerConnectTotal.WithLabelValues(m.network, status).Inc()
	syncerConnectDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	syncerConnectedBlocks.WithLabelValues(m.network).Add(float64(blocks))
}

// ObserveDisconnect records blocks removed by a reorganization.
func (m Syncer) ObserveDisconnect(blocks int) {
	syncerDisconnectedBlocks.WithLabelValues(m.network).Add(float64(blocks))
}

// ObserveTip records the local tip height.
func (m Syncer) ObserveTip(height uint64) {
	syncerTipHeight.WithLabelValues(m.network).Set(float64(height))
}

// ObserveMempool records a memory pool refresh.
func (m Syncer) ObserveMempool(err error, added int) {
	syncerMempoolTotal.WithLabelValues(m.network, statusOf(err)).Inc()
	syncerMempoolAdded.WithLabelValues(m.network).Add(float64(added))
}
