package indexer

import "time"

const (
	defaultBatchSize        = 5000
	defaultFetchConcurrency = 20

	defaultBatchBackoff = 1 * time.Second
	defaultPollInterval = 1 * time.Second

	// DefaultEndHeight is far above any chain height.
	DefaultEndHeight int64 = 10_000_000_000
)
