package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

// BoxByID returns a single ledger box regardless of its height.
func (r *Repository) BoxByID(ctx context.Context, boxID string) (ref model.BoxRef, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("box_by_id", err, start)
	}()

	query := fmt.Sprintf(`
SELECT box_id, height
FROM %s
WHERE box_id = ?
ORDER BY height
LIMIT 1`, r.table)

	refs, err := r.queryRefs(ctx, query, boxID)
	if err != nil {
		return model.BoxRef{}, false, fmt.Errorf("box %s: %w", boxID, err)
	}
	if len(refs) == 0 {
		return model.BoxRef{}, false, nil
	}
	return refs[0], true, nil
}
