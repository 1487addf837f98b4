package indexer

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/ergo"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/goodnatureofminers/staking-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

type boxFetcher struct {
	node        NodeClient
	concurrency int
	metrics     Metrics
	logger      *zap.Logger
}

// Fetch resolves every ref through the node. The output keeps the order of refs
// and carries the ledger height. Boxes the node fails to return are dropped.
func (f *boxFetcher) Fetch(ctx context.Context, refs []model.BoxRef) ([]model.FetchedBox, error) {
	started := time.Now()

	results := workerpool.Map(ctx, f.concurrency, refs,
		func(ctx context.Context, ref model.BoxRef) (model.UtxoDetail, error) {
			return f.node.UtxoByID(ctx, ref.BoxID)
		})
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	boxes := make([]model.FetchedBox, 0, len(refs))
	for i, res := range results {
		ref := refs[i]
		if res.Err != nil {
			if errors.Is(res.Err, ergo.ErrNotFound) {
				f.logger.Debug("box spent before fetch", zap.String("box_id", ref.BoxID), zap.Int64("height", ref.Height))
			} else {
				f.logger.Warn("fetch box failed", zap.String("box_id", ref.BoxID), zap.Int64("height", ref.Height), zap.Error(res.Err))
			}
			continue
		}
		boxes = append(boxes, model.FetchedBox{Height: ref.Height, Detail: res.Value})
	}

	f.metrics.ObserveFetch(len(refs), len(boxes), started)
	return boxes, nil
}
