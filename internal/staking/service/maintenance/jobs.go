// Package maintenance runs drop-and-recreate jobs against the staking tables.
package maintenance

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusComplete   Status = "complete"
	StatusFailed     Status = "failed"
)

const (
	// DefaultRetention is how long finished jobs stay visible.
	DefaultRetention = time.Hour
	cleanupInterval  = time.Hour
)

// Job is a snapshot of a drop-and-recreate job.
type Job struct {
	ID      uuid.UUID
	Table   model.StakingTable
	Status  Status
	Removed int64
	Err     string
	Started time.Time
}

// Jobs is an in-memory registry of maintenance jobs. Jobs share the writer lock
// with the indexer so a reset never interleaves with a sync cycle.
type Jobs struct {
	resetter TableResetter
	resyncer Resyncer
	writer   sync.Locker
	metrics  Metrics
	logger   *zap.Logger
	now      func() time.Time

	mu   sync.Mutex
	jobs map[uuid.UUID]*Job

	base   context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJobs builds a job registry.
func NewJobs(resetter TableResetter, resyncer Resyncer, writer sync.Locker, metrics Metrics, logger *zap.Logger) (*Jobs, error) {
	if resetter == nil || resyncer == nil {
		return nil, errors.New("table resetter and resyncer are required")
	}
	if writer == nil {
		return nil, errors.New("writer lock is required")
	}
	if metrics == nil {
		return nil, errors.New("maintenance metrics is required")
	}

	base, cancel := context.WithCancel(context.Background())
	return &Jobs{
		resetter: resetter,
		resyncer: resyncer,
		writer:   writer,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
		jobs:     make(map[uuid.UUID]*Job),
		base:     base,
		cancel:   cancel,
	}, nil
}

// Submit starts a drop-and-recreate job for the table. A job already in
// progress for the same table is returned instead of starting another one.
func (j *Jobs) Submit(table string) (Job, error) {
	t, err := model.ParseStakingTable(table)
	if err != nil {
		return Job{}, err
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for _, job := range j.jobs {
		if job.Table == t && job.Status == StatusInProgress {
			j.logger.Info("job already in progress", zap.String("job_id", job.ID.String()), zap.String("table", table))
			return *job, nil
		}
	}

	job := &Job{
		ID:      uuid.New(),
		Table:   t,
		Status:  StatusInProgress,
		Started: j.now(),
	}
	j.jobs[job.ID] = job
	snapshot := *job

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		j.run(j.base, snapshot)
	}()

	j.logger.Info("job submitted", zap.String("job_id", job.ID.String()), zap.String("table", table))
	return snapshot, nil
}

func (j *Jobs) run(ctx context.Context, job Job) {
	j.writer.Lock()
	removed, err := j.resetter.ResetTable(ctx, job.Table, model.StakingService)
	j.writer.Unlock()
	if err == nil {
		j.resyncer.RequestResync()
	}
	j.metrics.ObserveJob(string(job.Table), err, job.Started)

	j.mu.Lock()
	defer j.mu.Unlock()
	stored, ok := j.jobs[job.ID]
	if !ok {
		return
	}
	if err != nil {
		stored.Status = StatusFailed
		stored.Err = err.Error()
		j.logger.Error("job failed", zap.String("job_id", job.ID.String()), zap.String("table", string(job.Table)), zap.Error(err))
		return
	}
	stored.Status = StatusComplete
	stored.Removed = removed
	j.logger.Info("job complete", zap.String("job_id", job.ID.String()), zap.String("table", string(job.Table)), zap.Int64("rows", removed))
}

// Get returns a job by id.
func (j *Jobs) Get(id uuid.UUID) (Job, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	job, ok := j.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// All returns every known job, oldest first.
func (j *Jobs) All() []Job {
	j.mu.Lock()
	out := make([]Job, 0, len(j.jobs))
	for _, job := range j.jobs {
		out = append(out, *job)
	}
	j.mu.Unlock()

	sort.Slice(out, func(a, b int) bool {
		if out[a].Started.Equal(out[b].Started) {
			return out[a].ID.String() < out[b].ID.String()
		}
		return out[a].Started.Before(out[b].Started)
	})
	return out
}

// Cleanup forgets finished jobs started more than maxAge ago and reports how many it removed.
func (j *Jobs) Cleanup(maxAge time.Duration) int {
	cutoff := j.now().Add(-maxAge)

	j.mu.Lock()
	defer j.mu.Unlock()

	removed := 0
	for id, job := range j.jobs {
		if job.Status != StatusInProgress && job.Started.Before(cutoff) {
			delete(j.jobs, id)
			removed++
		}
	}
	return removed
}

// Run prunes old jobs every hour until the context is canceled.
func (j *Jobs) Run(ctx context.Context) error {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := j.Cleanup(DefaultRetention); n > 0 {
				j.logger.Debug("pruned jobs", zap.Int("jobs", n))
			}
		}
	}
}

// Close cancels running jobs and waits for them to finish.
func (j *Jobs) Close() {
	j.cancel()
	j.wg.Wait()
}
