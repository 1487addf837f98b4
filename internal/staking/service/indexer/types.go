package indexer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Ledger interface {
		CandidateBoxes(ctx context.Context, q model.CandidateQuery) ([]model.BoxRef, error)
		BoxByID(ctx context.Context, boxID string) (model.BoxRef, bool, error)
		LiveBoxes(ctx context.Context, refs []model.BoxRef) ([]model.BoxRef, error)
	}
	StakingRepository interface {
		StakeKeyDefinitions(ctx context.Context) ([]model.StakeKeyDefinition, error)
		LatestAuditHeight(ctx context.Context, service string) (int64, bool, error)
		IndexedBoxes(ctx context.Context, table model.StakingTable, after *model.BoxRef, limit int) ([]model.BoxRef, error)
		DeleteBoxes(ctx context.Context, table model.StakingTable, refs []model.BoxRef) (int64, error)
		MergeCheckpoint(ctx context.Context, cp model.Checkpoint) (model.MergeResult, error)
		Truncate(ctx context.Context, service string) error
	}
	NodeClient interface {
		UtxoByID(ctx context.Context, boxID string) (model.UtxoDetail, error)
		FullHeight(ctx context.Context) (int64, error)
	}
	AddressEncoder interface {
		Encode(ergoTree string) (string, error)
	}

	Reconciler interface {
		Reconcile(ctx context.Context) error
	}
	Fetcher interface {
		Fetch(ctx context.Context, refs []model.BoxRef) ([]model.FetchedBox, error)
	}
	Detector interface {
		Detect(defs map[string]model.StakeKeyDefinition, boxes []model.FetchedBox) model.Detection
	}
	Merger interface {
		Merge(ctx context.Context, detection model.Detection, auditHeight int64) (model.MergeResult, error)
	}
	HeightWaiter interface {
		Wait(ctx context.Context, watermark int64) (int64, error)
	}

	Metrics interface {
		ObserveCycle(err error, started time.Time)
		ObserveBatch(err error, boxes int, started time.Time)
		ObserveFetch(requested, fetched int, started time.Time)
		ObserveDetection(keys, addresses, skipped int)
		ObserveReconcile(table model.StakingTable, deleted int64, err error, started time.Time)
		SetWatermark(height int64)
	}
)
