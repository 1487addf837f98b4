// Package clickhouse reads the boxes ledger from ClickHouse.
package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/goodnatureofminers/staking-indexer/pkg/safe"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	Conn interface {
		Query(ctx context.Context, query string, args ...any) (driver.Rows, error)
		Close() error
	}
)

// Repository is the ClickHouse implementation of the boxes ledger.
type Repository struct {
	conn    Conn
	table   string
	metrics Metrics
}

// NewRepository connects to ClickHouse and verifies the ledger table exists.
func NewRepository(ctx context.Context, dsn, table string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	repo, err := newRepository(ctx, conn, table, metrics)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return repo, nil
}

func newRepository(ctx context.Context, conn Conn, table string, metrics Metrics) (*Repository, error) {
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}

	name, err := model.SanitizeLedgerTable(table)
	if err != nil {
		return nil, err
	}

	r := &Repository{conn: conn, table: name, metrics: metrics}
	exists, err := r.tableExists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: ledger table %q does not exist", model.ErrInvalidTableName, name)
	}
	return r, nil
}

// Table returns the verified ledger table name.
func (r *Repository) Table() string {
	return r.table
}

// Close releases the connection.
func (r *Repository) Close() error {
	return r.conn.Close()
}

func (r *Repository) tableExists(ctx context.Context) (exists bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("table_exists", err, start)
	}()

	const query = `
SELECT count() AS tables
FROM system.tables
WHERE database = currentDatabase() AND name = ?`

	rows, err := r.conn.Query(ctx, query, r.table)
	if err != nil {
		return false, fmt.Errorf("query ledger table %s: %w", r.table, err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return false, fmt.Errorf("ledger table %s lookup returned no rows", r.table)
	}
	var count uint64
	if err = rows.Scan(&count); err != nil {
		return false, fmt.Errorf("scan ledger table lookup: %w", err)
	}
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("iterate ledger table lookup: %w", err)
	}
	return count > 0, nil
}

func (r *Repository) queryRefs(ctx context.Context, query string, args ...any) (refs []model.BoxRef, err error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query boxes: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	return scanRefs(rows)
}

func scanRefs(rows driver.Rows) ([]model.BoxRef, error) {
	var refs []model.BoxRef
	for rows.Next() {
		var (
			boxID  string
			height uint64
		)
		if err := rows.Scan(&boxID, &height); err != nil {
			return nil, fmt.Errorf("scan box: %w", err)
		}
		h, err := safe.Int64(height)
		if err != nil {
			return nil, fmt.Errorf("box %s height: %w", boxID, err)
		}
		refs = append(refs, model.BoxRef{BoxID: boxID, Height: h})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate boxes: %w", err)
	}
	return refs, nil
}
