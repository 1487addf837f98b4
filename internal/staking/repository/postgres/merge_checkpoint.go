package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"gorm.io/gorm"
)

const (
	addressStagingTable = "staging_addresses_staking"
	keyStagingTable     = "staging_keys_staking"

	stagingInsertBatch = 1000
)

type addressStagingRow struct {
	Address string `gorm:"column:address"`
	TokenID string `gorm:"column:token_id"`
	Amount  int64  `gorm:"column:amount"`
	BoxID   string `gorm:"column:box_id"`
	Height  int64  `gorm:"column:height"`
}

type keyStagingRow struct {
	BoxID           string `gorm:"column:box_id"`
	TokenID         string `gorm:"column:token_id"`
	Amount          int64  `gorm:"column:amount"`
	Penalty         int64  `gorm:"column:penalty"`
	Address         string `gorm:"column:address"`
	StakeKeyTokenID string `gorm:"column:stakekey_token_id"`
	Height          int64  `gorm:"column:height"`
}

const createAddressStaging = `
CREATE TEMP TABLE IF NOT EXISTS ` + addressStagingTable + ` (
	address  text,
	token_id text,
	amount   bigint,
	box_id   text,
	height   bigint
) ON COMMIT DROP`

const createKeyStaging = `
CREATE TEMP TABLE IF NOT EXISTS ` + keyStagingTable + ` (
	box_id            text,
	token_id          text,
	amount            bigint,
	penalty           bigint,
	address           text,
	stakekey_token_id text,
	height            bigint
) ON COMMIT DROP`

const mergeAddresses = `
INSERT INTO addresses_staking (address, token_id, amount, box_id, height)
SELECT DISTINCT ON (s.address, s.token_id, s.box_id, s.height)
	s.address, s.token_id, s.amount, s.box_id, s.height
FROM ` + addressStagingTable + ` s
WHERE s.address <> ''
	AND NOT EXISTS (
		SELECT 1
		FROM addresses_staking a
		WHERE a.address = s.address
			AND a.token_id = s.token_id
			AND a.box_id = s.box_id
			AND a.height = s.height
	)
ORDER BY s.address, s.token_id, s.box_id, s.height
ON CONFLICT DO NOTHING`

const mergeKeys = `
INSERT INTO keys_staking (box_id, token_id, amount, penalty, address, stakekey_token_id, height)
SELECT DISTINCT ON (s.address, s.token_id, s.box_id, s.height)
	s.box_id, s.token_id, s.amount, s.penalty, s.address, s.stakekey_token_id, s.height
FROM ` + keyStagingTable + ` s
WHERE s.address <> ''
	AND NOT EXISTS (
		SELECT 1
		FROM keys_staking k
		WHERE k.address = s.address
			AND k.token_id = s.token_id
			AND k.box_id = s.box_id
			AND k.height = s.height
	)
ORDER BY s.address, s.token_id, s.box_id, s.height
ON CONFLICT DO NOTHING`

// MergeCheckpoint stages the checkpoint rows, inserts the ones not indexed yet and
// appends the audit entry, all in one transaction.
func (r *Repository) MergeCheckpoint(ctx context.Context, cp model.Checkpoint) (result model.MergeResult, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("merge_checkpoint", err, start)
	}()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(createAddressStaging).Error; err != nil {
			return fmt.Errorf("create address staging: %w", err)
		}
		if err := tx.Exec(createKeyStaging).Error; err != nil {
			return fmt.Errorf("create key staging: %w", err)
		}

		if rows := toAddressStaging(cp.Addresses); len(rows) > 0 {
			if err := tx.Table(addressStagingTable).CreateInBatches(rows, stagingInsertBatch).Error; err != nil {
				return fmt.Errorf("stage addresses: %w", err)
			}
		}
		if rows := toKeyStaging(cp.Keys); len(rows) > 0 {
			if err := tx.Table(keyStagingTable).CreateInBatches(rows, stagingInsertBatch).Error; err != nil {
				return fmt.Errorf("stage keys: %w", err)
			}
		}

		res := tx.Exec(mergeAddresses)
		if res.Error != nil {
			return fmt.Errorf("merge addresses: %w", res.Error)
		}
		result.Addresses = res.RowsAffected

		res = tx.Exec(mergeKeys)
		if res.Error != nil {
			return fmt.Errorf("merge keys: %w", res.Error)
		}
		result.Keys = res.RowsAffected

		audit := cp.Audit
		if err := tx.Create(&audit).Error; err != nil {
			return fmt.Errorf("append audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.MergeResult{}, fmt.Errorf("merge checkpoint at height %d: %w", cp.Audit.Height, err)
	}
	return result, nil
}

func toAddressStaging(records []model.AddressTokenRecord) []addressStagingRow {
	rows := make([]addressStagingRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, addressStagingRow{
			Address: rec.Address,
			TokenID: rec.TokenID,
			Amount:  rec.Amount,
			BoxID:   rec.BoxID,
			Height:  rec.Height,
		})
	}
	return rows
}

func toKeyStaging(records []model.StakeKeyRecord) []keyStagingRow {
	rows := make([]keyStagingRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, keyStagingRow{
			BoxID:           rec.BoxID,
			TokenID:         rec.TokenID,
			Amount:          rec.Amount,
			Penalty:         rec.Penalty,
			Address:         rec.Address,
			StakeKeyTokenID: rec.StakeKeyTokenID,
			Height:          rec.Height,
		})
	}
	return rows
}
