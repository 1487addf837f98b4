package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	maintenanceJobsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_indexer",
		Subsystem: "maintenance",
		Name:      "jobs_total",
		Help:      "Count of finished maintenance jobs.",
	}, []string{"table", "status"})
	maintenanceJobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_indexer",
		Subsystem: "maintenance",
		Name:      "job_duration_seconds",
		Help:      "Duration of maintenance jobs, including the wait for the writer lock.",
		Buckets:   []float64{.1, .5, 1, 5, 10, 30, 60, 300, 900},
	}, []string{"table", "status"})
)

// Maintenance tracks drop-and-recreate jobs.
type Maintenance struct{}

// NewMaintenance constructs a Maintenance collector.
func NewMaintenance() *Maintenance {
	return &Maintenance{}
}

// ObserveJob records a finished job.
func (Maintenance) ObserveJob(table string, err error, started time.Time) {
	status := statusOf(err)
	maintenanceJobsTotal.WithLabelValues(table, status).Inc()
	maintenanceJobDuration.WithLabelValues(table, status).Observe(time.Since(started).Seconds())
}
