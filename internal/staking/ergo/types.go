package ergo

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records metrics for node API calls.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
