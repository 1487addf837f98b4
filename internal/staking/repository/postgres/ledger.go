package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"gorm.io/gorm"
)

// Ledger reads the raw boxes ledger kept in PostgreSQL.
type Ledger struct {
	db      *gorm.DB
	table   string
	metrics Metrics
}

// NewLedger sanitizes the ledger table name and checks that the table exists.
func NewLedger(ctx context.Context, db *gorm.DB, table string, metrics Metrics) (*Ledger, error) {
	if db == nil {
		return nil, errors.New("postgres connection is required")
	}
	if metrics == nil {
		return nil, errors.New("ledger metrics is required")
	}

	name, err := model.SanitizeLedgerTable(table)
	if err != nil {
		return nil, err
	}
	// unquoted identifiers fold to lower case
	name = strings.ToLower(name)

	const query = `
SELECT EXISTS (
	SELECT 1
	FROM information_schema.tables
	WHERE table_schema = current_schema() AND table_name = ?
)`

	var exists bool
	if err := db.WithContext(ctx).Raw(query, name).Scan(&exists).Error; err != nil {
		return nil, fmt.Errorf("lookup ledger table %s: %w", name, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: ledger table %q does not exist", model.ErrInvalidTableName, name)
	}

	return &Ledger{db: db, table: name, metrics: metrics}, nil
}

// Table returns the verified ledger table name.
func (l *Ledger) Table() string {
	return l.table
}

// CandidateBoxes returns a keyset page of ledger boxes ordered by (height, box_id).
func (l *Ledger) CandidateBoxes(ctx context.Context, q model.CandidateQuery) (refs []model.BoxRef, err error) {
	start := time.Now()
	defer func() {
		l.metrics.Observe("candidate_boxes", err, start)
	}()

	if q.Limit <= 0 {
		return nil, nil
	}

	tx := l.db.WithContext(ctx).
		Table(l.table).
		Select("box_id", "height").
		Where("height >= ? AND height <= ?", q.MinHeight, q.MaxHeight)
	if q.After != nil {
		tx = tx.Where("(height, box_id) > (?, ?)", q.After.Height, q.After.BoxID)
	}

	if err = tx.Order("height, box_id").Limit(q.Limit).Find(&refs).Error; err != nil {
		return nil, fmt.Errorf("query candidate boxes: %w", err)
	}
	return refs, nil
}

// BoxByID returns a single ledger box regardless of its height.
func (l *Ledger) BoxByID(ctx context.Context, boxID string) (ref model.BoxRef, found bool, err error) {
	start := time.Now()
	defer func() {
		l.metrics.Observe("box_by_id", err, start)
	}()

	var refs []model.BoxRef
	err = l.db.WithContext(ctx).
		Table(l.table).
		Select("box_id", "height").
		Where("box_id = ?", boxID).
		Order("height").
		Limit(1).
		Find(&refs).Error
	if err != nil {
		return model.BoxRef{}, false, fmt.Errorf("query box %s: %w", boxID, err)
	}
	if len(refs) == 0 {
		return model.BoxRef{}, false, nil
	}
	return refs[0], true, nil
}

// LiveBoxes returns the subset of refs still present in the ledger, matched on (box_id, height).
func (l *Ledger) LiveBoxes(ctx context.Context, refs []model.BoxRef) (live []model.BoxRef, err error) {
	start := time.Now()
	defer func() {
		l.metrics.Observe("live_boxes", err, start)
	}()

	for _, chunk := range chunkRefs(refs, refChunkSize) {
		var found []model.BoxRef
		err = l.db.WithContext(ctx).
			Table(l.table).
			Distinct("box_id", "height").
			Where("(box_id, height) IN ?", refTuples(chunk)).
			Find(&found).Error
		if err != nil {
			return nil, fmt.Errorf("query live boxes: %w", err)
		}
		live = append(live, found...)
	}
	return live, nil
}

func refTuples(refs []model.BoxRef) [][]any {
	tuples := make([][]any, 0, len(refs))
	for _, ref := range refs {
		tuples = append(tuples, []any{ref.BoxID, ref.Height})
	}
	return tuples
}
