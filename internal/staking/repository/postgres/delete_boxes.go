package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"gorm.io/gorm"
)

// DeleteBoxes removes every row of a staking table whose (box_id, height) is in refs.
// All chunks are deleted in one transaction.
func (r *Repository) DeleteBoxes(ctx context.Context, table model.StakingTable, refs []model.BoxRef) (deleted int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("delete_boxes", err, start)
	}()

	if _, err = model.ParseStakingTable(string(table)); err != nil {
		return 0, err
	}
	if len(refs) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE (box_id, height) IN ?`, table)

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, chunk := range chunkRefs(refs, refChunkSize) {
			res := tx.Exec(query, refTuples(chunk))
			if res.Error != nil {
				return res.Error
			}
			deleted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete spent boxes from %s: %w", table, err)
	}
	return deleted, nil
}
