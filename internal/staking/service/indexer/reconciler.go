package indexer

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"go.uber.org/zap"
)

type spentBoxReconciler struct {
	ledger   Ledger
	repo     StakingRepository
	metrics  Metrics
	pageSize int
	logger   *zap.Logger
}

// Reconcile deletes staking rows whose (box_id, height) is no longer in the ledger.
func (r *spentBoxReconciler) Reconcile(ctx context.Context) error {
	for _, table := range model.StakingTables {
		started := time.Now()
		deleted, err := r.reconcileTable(ctx, table)
		r.metrics.ObserveReconcile(table, deleted, err, started)
		if err != nil {
			return fmt.Errorf("reconcile %s: %w", table, err)
		}
		if deleted > 0 {
			r.logger.Info("removed spent boxes", zap.String("table", string(table)), zap.Int64("rows", deleted))
		}
	}
	return nil
}

func (r *spentBoxReconciler) reconcileTable(ctx context.Context, table model.StakingTable) (int64, error) {
	var (
		spent []model.BoxRef
		after *model.BoxRef
	)
	for {
		page, err := r.repo.IndexedBoxes(ctx, table, after, r.pageSize)
		if err != nil {
			return 0, err
		}
		if len(page) == 0 {
			break
		}

		live, err := r.ledger.LiveBoxes(ctx, page)
		if err != nil {
			return 0, err
		}
		liveSet := make(map[model.BoxRef]struct{}, len(live))
		for _, ref := range live {
			liveSet[ref] = struct{}{}
		}
		for _, ref := range page {
			if _, ok := liveSet[ref]; !ok {
				spent = append(spent, ref)
			}
		}

		if len(page) < r.pageSize {
			break
		}
		after = &page[len(page)-1]
	}

	if len(spent) == 0 {
		return 0, nil
	}
	return r.repo.DeleteBoxes(ctx, table, spent)
}
