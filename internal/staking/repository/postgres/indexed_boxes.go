package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

// IndexedBoxes returns a keyset page of the distinct (box_id, height) pairs held by a staking table.
func (r *Repository) IndexedBoxes(ctx context.Context, table model.StakingTable, after *model.BoxRef, limit int) (refs []model.BoxRef, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("indexed_boxes", err, start)
	}()

	if _, err = model.ParseStakingTable(string(table)); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, nil
	}

	tx := r.db.WithContext(ctx).
		Table(string(table)).
		Distinct("box_id", "height")
	if after != nil {
		tx = tx.Where("(height, box_id) > (?, ?)", after.Height, after.BoxID)
	}

	if err = tx.Order("height, box_id").Limit(limit).Find(&refs).Error; err != nil {
		return nil, fmt.Errorf("query indexed boxes of %s: %w", table, err)
	}
	return refs, nil
}
