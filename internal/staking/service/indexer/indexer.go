// Package indexer keeps the staking tables in step with the boxes ledger.
package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/clock"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"go.uber.org/zap"
)

// Config tunes a Service.
type Config struct {
	Network          model.Network
	BatchSize        int
	FetchConcurrency int
	BatchBackoff     time.Duration
	PollInterval     time.Duration
	// SettleDelay lets the ledger ingester finish the latest block before discovery.
	SettleDelay time.Duration
	// StartHeight overrides the audit log watermark when >= 0.
	StartHeight int64
	EndHeight   int64
	// BoxID processes a single ledger box and stops.
	BoxID    string
	Truncate bool
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = defaultBatchSize
	}
	if c.FetchConcurrency <= 0 {
		c.FetchConcurrency = defaultFetchConcurrency
	}
	if c.BatchBackoff <= 0 {
		c.BatchBackoff = defaultBatchBackoff
	}
	if c.PollInterval <= 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.EndHeight <= 0 {
		c.EndHeight = DefaultEndHeight
	}
	return c
}

// Service is the staking sync orchestrator.
type Service struct {
	logger     *zap.Logger
	cfg        Config
	ledger     Ledger
	repo       StakingRepository
	metrics    Metrics
	reconciler Reconciler
	fetcher    Fetcher
	detector   Detector
	merger     Merger
	waiter     HeightWaiter
	sleep      func(context.Context, time.Duration) error
	writer     sync.Locker
	resync     atomic.Bool
}

// NewService builds a Service with its pipeline components.
func NewService(
	ledger Ledger,
	repo StakingRepository,
	node NodeClient,
	encoder AddressEncoder,
	metrics Metrics,
	writer sync.Locker,
	cfg Config,
	logger *zap.Logger,
) (*Service, error) {
	if ledger == nil || repo == nil || node == nil || encoder == nil {
		return nil, errors.New("ledger, repository, node client and address encoder are required")
	}
	if metrics == nil {
		return nil, errors.New("staking indexer metrics is required")
	}
	if writer == nil {
		writer = &sync.Mutex{}
	}

	cfg = cfg.withDefaults()
	logger = logger.With(zap.String("network", string(cfg.Network)))

	return &Service{
		logger:  logger,
		cfg:     cfg,
		ledger:  ledger,
		repo:    repo,
		metrics: metrics,
		sleep:   clock.SleepWithContext,
		writer:  writer,
		reconciler: &spentBoxReconciler{
			ledger:   ledger,
			repo:     repo,
			metrics:  metrics,
			pageSize: cfg.BatchSize,
			logger:   logger.Named("reconciler"),
		},
		fetcher: &boxFetcher{
			node:        node,
			concurrency: cfg.FetchConcurrency,
			metrics:     metrics,
			logger:      logger.Named("fetcher"),
		},
		detector: &stakeKeyDetector{
			logger: logger.Named("detector"),
		},
		merger: &checkpointMerger{
			repo:    repo,
			encoder: encoder,
			logger:  logger.Named("merger"),
		},
		waiter: &nodeHeightWaiter{
			node:     node,
			interval: cfg.PollInterval,
			poll:     clock.PollUntil,
			logger:   logger.Named("waiter"),
		},
	}, nil
}

// RequestResync makes the next iteration resume from the audit log.
func (s *Service) RequestResync() {
	s.resync.Store(true)
}

// Run indexes until the context is canceled, the end height is passed or the
// single box override has been processed.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.Truncate {
		if err := s.repo.Truncate(ctx, model.StakingService); err != nil {
			return fmt.Errorf("truncate staking tables: %w", err)
		}
		s.logger.Info("staking tables truncated")
	}

	override := s.cfg.StartHeight
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.resync.Swap(false) {
			s.logger.Info("resync requested, resuming from audit log")
			override = -1
		}

		start, err := s.startHeight(ctx, override)
		if err == nil {
			var maxObserved int64
			maxObserved, err = s.runCycle(ctx, start)
			if err == nil {
				if s.cfg.BoxID != "" {
					return nil
				}

				watermark := max(maxObserved+1, start)
				s.metrics.SetWatermark(watermark)
				if watermark > s.cfg.EndHeight {
					s.logger.Info("end height reached", zap.Int64("watermark", watermark), zap.Int64("end_height", s.cfg.EndHeight))
					return nil
				}

				height, waitErr := s.waiter.Wait(ctx, watermark)
				if waitErr != nil {
					return waitErr
				}
				s.logger.Debug("new block available", zap.Int64("full_height", height), zap.Int64("watermark", watermark))
				override = watermark
				continue
			}
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.cfg.BatchBackoff))
		if sleepErr := s.sleep(ctx, s.cfg.BatchBackoff); sleepErr != nil {
			return sleepErr
		}
	}
}

func (s *Service) startHeight(ctx context.Context, override int64) (int64, error) {
	if override >= 0 {
		return override, nil
	}
	height, found, err := s.repo.LatestAuditHeight(ctx, model.StakingService)
	if err != nil {
		return 0, fmt.Errorf("resolve start height: %w", err)
	}
	if !found {
		return 0, nil
	}
	return height, nil
}

// runCycle reconciles spent boxes and indexes every ledger box from start up to
// the end height. It returns the highest height of a processed box, or start-1.
func (s *Service) runCycle(ctx context.Context, start int64) (maxObserved int64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveCycle(err, started)
	}()

	s.writer.Lock()
	defer s.writer.Unlock()

	if err = s.reconciler.Reconcile(ctx); err != nil {
		return 0, err
	}

	defs, err := s.stakeKeyDefinitions(ctx)
	if err != nil {
		return 0, err
	}

	if err = s.sleep(ctx, s.cfg.SettleDelay); err != nil {
		return 0, err
	}

	if s.cfg.BoxID != "" {
		return s.processSingle(ctx, defs)
	}

	s.logger.Info("finding boxes", zap.Int64("from_height", start), zap.Int64("end_height", s.cfg.EndHeight))
	maxObserved = start - 1
	q := model.CandidateQuery{MinHeight: start, MaxHeight: s.cfg.EndHeight, Limit: s.cfg.BatchSize}
	for {
		refs, err := s.ledger.CandidateBoxes(ctx, q)
		if err != nil {
			return maxObserved, fmt.Errorf("read candidate boxes: %w", err)
		}
		if len(refs) == 0 {
			return maxObserved, nil
		}

		batchMax, err := s.processBatch(ctx, defs, refs, max(start, maxObserved))
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return maxObserved, ctxErr
			}
			first, last := refs[0], refs[len(refs)-1]
			s.logger.Error("batch failed, moving to next window",
				zap.String("first_box_id", first.BoxID),
				zap.Int64("first_height", first.Height),
				zap.String("last_box_id", last.BoxID),
				zap.Int64("last_height", last.Height),
				zap.Error(err),
			)
			if err := s.sleep(ctx, s.cfg.BatchBackoff); err != nil {
				return maxObserved, err
			}
		} else {
			maxObserved = max(maxObserved, batchMax)
		}

		if len(refs) < q.Limit {
			return maxObserved, nil
		}
		q.After = &refs[len(refs)-1]
	}
}

func (s *Service) processSingle(ctx context.Context, defs map[string]model.StakeKeyDefinition) (int64, error) {
	ref, found, err := s.ledger.BoxByID(ctx, s.cfg.BoxID)
	if err != nil {
		return 0, fmt.Errorf("read box override: %w", err)
	}
	if !found {
		s.logger.Warn("box override not found in ledger", zap.String("box_id", s.cfg.BoxID))
		return 0, nil
	}
	return s.processBatch(ctx, defs, []model.BoxRef{ref}, ref.Height)
}

// processBatch runs fetch, detection and merge for one window of ledger boxes.
// The audit entry never records a height below floor.
func (s *Service) processBatch(
	ctx context.Context,
	defs map[string]model.StakeKeyDefinition,
	refs []model.BoxRef,
	floor int64,
) (maxHeight int64, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBatch(err, len(refs), started)
	}()

	boxes, err := s.fetcher.Fetch(ctx, refs)
	if err != nil {
		return 0, fmt.Errorf("fetch boxes: %w", err)
	}

	det := s.detector.Detect(defs, boxes)
	s.metrics.ObserveDetection(len(det.Keys), det.AddressCount, det.Skipped)

	res, err := s.merger.Merge(ctx, det, max(floor, det.MaxHeight))
	if err != nil {
		return 0, fmt.Errorf("merge checkpoint: %w", err)
	}

	s.logger.Info("checkpoint",
		zap.Int("boxes", len(refs)),
		zap.Int("fetched", len(boxes)),
		zap.Int("keys", len(det.Keys)),
		zap.Int("addresses", det.AddressCount),
		zap.Int("skipped", det.Skipped),
		zap.Int64("new_key_rows", res.Keys),
		zap.Int64("new_address_rows", res.Addresses),
		zap.Int64("height", max(floor, det.MaxHeight)),
	)
	return det.MaxHeight, nil
}

func (s *Service) stakeKeyDefinitions(ctx context.Context) (map[string]model.StakeKeyDefinition, error) {
	list, err := s.repo.StakeKeyDefinitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stake key definitions: %w", err)
	}
	defs := make(map[string]model.StakeKeyDefinition, len(list))
	for _, def := range list {
		defs[def.StakeErgoTree] = def
	}
	return defs, nil
}
