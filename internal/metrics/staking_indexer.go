// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexerCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_indexer",
		Subsystem: "indexer",
		Name:      "cycle_total",
		Help:      "Count of processing cycles.",
	}, []string{"network", "status"})

	indexerCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_indexer",
		Subsystem: "indexer",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of a processing cycle.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 120, 300, 600, 1800},
	}, []string{"network", "status"})

	indexerBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_indexer",
		Subsystem: "indexer",
		Name:      "batch_total",
		Help:      "Count of processed box batches.",
	}, []string{"network", "status"})

	indexerBatchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_indexer",
		Subsystem: "indexer",
		Name:      "batch_duration_seconds",
		Help:      "Duration of processing a batch of boxes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	indexerBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_indexer",
		Subsystem: "indexer",
		Name:      "batch_size",
		Help:      "Number of boxes per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14), // 1..8192
	}, []string{"network"})

	indexerFetchDropped = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_indexer",
		Subsystem: "fetcher",
		Name:      "dropped_total",
		Help:      "Count of boxes dropped because the node lookup failed.",
	}, []string{"network"})

	indexerFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_indexer",
		Subsystem: "fetcher",
		Name:      "fetch_duration_seconds",
		Help:      "Duration of resolving box details for a batch.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network"})

	indexerDetectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_indexer",
		Subsystem: "detector",
		Name:      "detected_total",
		Help:      "Count of detected records by kind.",
	}, []string{"network", "kind"})

	indexerReconcileDeleted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_indexer",
		Subsystem: "reconciler",
		Name:      "deleted_rows_total",
		Help:      "Count of rows removed because their box was spent.",
	}, []string{"network", "table"})

	indexerReconcileDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_indexer",
		Subsystem: "reconciler",
		Name:      "duration_seconds",
		Help:      "Duration of reconciling a staking table.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "table", "status"})

	indexerWatermark = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "staking_indexer",
		Subsystem: "indexer",
		Name:      "watermark_height",
		Help:      "Height the next cycle starts from.",
	}, []string{"network"})
)

// StakingIndexer tracks metrics for the staking indexer pipeline.
type StakingIndexer struct {
	network model.Network
}

// NewStakingIndexer constructs a StakingIndexer collector.
func NewStakingIndexer(network model.Network) *StakingIndexer {
	if network == "" {
		network = "unknown"
	}
	return &StakingIndexer{network: network}
}

// ObserveCycle records a processing cycle outcome and duration.
func (m StakingIndexer) ObserveCycle(err error, started time.Time) {
	status := statusOf(err)
	indexerCycleTotal.WithLabelValues(string(m.network), status).Inc()
	indexerCycleDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// ObserveBatch records processing of a batch of boxes.
func (m StakingIndexer) ObserveBatch(err error, boxes int, started time.Time) {
	status := statusOf(err)
	indexerBatchTotal.WithLabelValues(string(m.network), status).Inc()
	indexerBatchDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
	indexerBatchSize.WithLabelValues(string(m.network)).Observe(float64(boxes))
}

// ObserveFetch records how many of the requested boxes were resolved.
func (m StakingIndexer) ObserveFetch(requested, fetched int, started time.Time) {
	if dropped := requested - fetched; dropped > 0 {
		indexerFetchDropped.WithLabelValues(string(m.network)).Add(float64(dropped))
	}
	indexerFetchDuration.WithLabelValues(string(m.network)).Observe(time.Since(started).Seconds())
}

// ObserveDetection records detector output for a batch.
func (m StakingIndexer) ObserveDetection(keys, addresses, skipped int) {
	indexerDetectedTotal.WithLabelValues(string(m.network), "stake_key").Add(float64(keys))
	indexerDetectedTotal.WithLabelValues(string(m.network), "address_token").Add(float64(addresses))
	indexerDetectedTotal.WithLabelValues(string(m.network), "skipped").Add(float64(skipped))
}

// ObserveReconcile records a reconciliation sweep over one table.
func (m StakingIndexer) ObserveReconcile(table model.StakingTable, deleted int64, err error, started time.Time) {
	if deleted > 0 {
		indexerReconcileDeleted.WithLabelValues(string(m.network), string(table)).Add(float64(deleted))
	}
	indexerReconcileDuration.WithLabelValues(string(m.network), string(table), statusOf(err)).
		Observe(time.Since(started).Seconds())
}

// SetWatermark exports the next cycle's starting height.
func (m StakingIndexer) SetWatermark(height int64) {
	indexerWatermark.WithLabelValues(string(m.network)).Set(float64(height))
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
