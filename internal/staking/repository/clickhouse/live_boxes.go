package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

// ids per query, bound values are inlined into the query text
const liveBoxesChunkSize = 1000

// LiveBoxes returns the subset of refs still present in the ledger, matched on (box_id, height).
func (r *Repository) LiveBoxes(ctx context.Context, refs []model.BoxRef) (live []model.BoxRef, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("live_boxes", err, start)
	}()

	if len(refs) == 0 {
		return nil, nil
	}

	wanted := make(map[model.BoxRef]struct{}, len(refs))
	boxIDs := make([]string, 0, len(refs))
	for _, ref := range refs {
		if _, dup := wanted[ref]; dup {
			continue
		}
		wanted[ref] = struct{}{}
		boxIDs = append(boxIDs, ref.BoxID)
	}

	query := fmt.Sprintf(`
SELECT DISTINCT box_id, height
FROM %s
WHERE box_id IN ?`, r.table)

	for begin := 0; begin < len(boxIDs); begin += liveBoxesChunkSize {
		end := min(begin+liveBoxesChunkSize, len(boxIDs))

		var found []model.BoxRef
		if found, err = r.queryRefs(ctx, query, boxIDs[begin:end]); err != nil {
			return nil, fmt.Errorf("live boxes: %w", err)
		}
		for _, ref := range found {
			if _, ok := wanted[ref]; ok {
				live = append(live, ref)
			}
		}
	}
	return live, nil
}
