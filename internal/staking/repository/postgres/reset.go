package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"gorm.io/gorm"
)

// Truncate empties both staking tables and the service's audit entries in one transaction.
func (r *Repository) Truncate(ctx context.Context, service string) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("truncate", err, start)
	}()

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range model.StakingTables {
			if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", table)).Error; err != nil {
				return fmt.Errorf("truncate %s: %w", table, err)
			}
		}
		return clearAudit(tx, service)
	})
	if err != nil {
		return fmt.Errorf("truncate staking tables: %w", err)
	}
	return nil
}

// ResetTable removes every row of one staking table together with the service's
// audit entries and reports how many table rows were removed.
func (r *Repository) ResetTable(ctx context.Context, table model.StakingTable, service string) (removed int64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("reset_table", err, start)
	}()

	if _, err = model.ParseStakingTable(string(table)); err != nil {
		return 0, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if res.Error != nil {
			return fmt.Errorf("delete rows of %s: %w", table, res.Error)
		}
		removed = res.RowsAffected
		return clearAudit(tx, service)
	})
	if err != nil {
		return 0, fmt.Errorf("reset %s: %w", table, err)
	}
	return removed, nil
}

func clearAudit(tx *gorm.DB, service string) error {
	if err := tx.Where("service = ?", service).Delete(&model.AuditLogEntry{}).Error; err != nil {
		return fmt.Errorf("clear audit log of %s: %w", service, err)
	}
	return nil
}
