package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

// LatestAuditHeight returns the height of the newest audit entry of a service.
func (r *Repository) LatestAuditHeight(ctx context.Context, service string) (height int64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("latest_audit_height", err, start)
	}()

	var heights []int64
	err = r.db.WithContext(ctx).
		Model(&model.AuditLogEntry{}).
		Where("service = ?", service).
		Order("created_at DESC, id DESC").
		Limit(1).
		Pluck("height", &heights).Error
	if err != nil {
		return 0, false, fmt.Errorf("query latest audit height: %w", err)
	}
	if len(heights) == 0 {
		return 0, false, nil
	}
	return heights[0], true, nil
}
