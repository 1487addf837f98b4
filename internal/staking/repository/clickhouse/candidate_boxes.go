package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/goodnatureofminers/staking-indexer/pkg/safe"
)

// CandidateBoxes returns a keyset page of ledger boxes ordered by (height, box_id).
func (r *Repository) CandidateBoxes(ctx context.Context, q model.CandidateQuery) (refs []model.BoxRef, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("candidate_boxes", err, start)
	}()

	if q.Limit <= 0 || q.MaxHeight < q.MinHeight || q.MaxHeight < 0 {
		return nil, nil
	}

	minHeight, err := safe.Uint64(max(q.MinHeight, 0))
	if err != nil {
		return nil, err
	}
	maxHeight, err := safe.Uint64(q.MaxHeight)
	if err != nil {
		return nil, err
	}

	// An empty cursor sorts before every box of the first height.
	afterHeight, afterBoxID := minHeight, ""
	if q.After != nil {
		if afterHeight, err = safe.Uint64(q.After.Height); err != nil {
			return nil, err
		}
		afterBoxID = q.After.BoxID
	}

	query := fmt.Sprintf(`
SELECT DISTINCT box_id, height
FROM %s
WHERE height >= ? AND height <= ?
	AND (height, box_id) > (?, ?)
ORDER BY height, box_id
LIMIT ?`, r.table)

	refs, err = r.queryRefs(ctx, query, minHeight, maxHeight, afterHeight, afterBoxID, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("candidate boxes: %w", err)
	}
	return refs, nil
}
