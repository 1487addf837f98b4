package indexer

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"go.uber.org/zap"
)

type checkpointMerger struct {
	repo    StakingRepository
	encoder AddressEncoder
	logger  *zap.Logger
}

// Merge resolves record addresses and persists the batch with its audit entry.
func (m *checkpointMerger) Merge(ctx context.Context, det model.Detection, auditHeight int64) (model.MergeResult, error) {
	resolved := make(map[string]string)
	resolve := func(ergoTree string) string {
		if addr, ok := resolved[ergoTree]; ok {
			return addr
		}
		addr, err := m.encoder.Encode(ergoTree)
		if err != nil {
			m.logger.Warn("resolve address failed", zap.String("ergo_tree", ergoTree), zap.Error(err))
			addr = ""
		}
		resolved[ergoTree] = addr
		return addr
	}

	addresses := make([]model.AddressTokenRecord, len(det.Addresses))
	for i, rec := range det.Addresses {
		rec.Address = resolve(rec.ErgoTree)
		addresses[i] = rec
	}
	keys := make([]model.StakeKeyRecord, len(det.Keys))
	for i, rec := range det.Keys {
		rec.Address = resolve(rec.ErgoTree)
		keys[i] = rec
	}

	return m.repo.MergeCheckpoint(ctx, model.Checkpoint{
		Addresses: addresses,
		Keys:      keys,
		Audit: model.AuditLogEntry{
			Height:  auditHeight,
			Service: model.StakingService,
			Notes: fmt.Sprintf("%s addresses, %s keys",
				humanize.Comma(int64(det.AddressCount)),
				humanize.Comma(int64(len(det.Keys))),
			),
		},
	})
}
