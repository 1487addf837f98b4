package maintenance

import (
	"context"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TableResetter interface {
		ResetTable(ctx context.Context, table model.StakingTable, service string) (int64, error)
	}
	Resyncer interface {
		RequestResync()
	}
	Metrics interface {
		ObserveJob(table string, err error, started time.Time)
	}
)
