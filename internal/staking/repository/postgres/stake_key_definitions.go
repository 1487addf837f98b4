package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

// StakeKeyDefinitions loads the staking contracts registered in the tokens table.
func (r *Repository) StakeKeyDefinitions(ctx context.Context) (defs []model.StakeKeyDefinition, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("stake_key_definitions", err, start)
	}()

	err = r.db.WithContext(ctx).
		Where("stake_ergotree IS NOT NULL AND stake_ergotree <> ''").
		Find(&defs).Error
	if err != nil {
		return nil, fmt.Errorf("query stake key definitions: %w", err)
	}
	return defs, nil
}
