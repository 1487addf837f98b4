package transport

import (
	"github.com/goodnatureofminers/staking-indexer/internal/staking/service/maintenance"
	"github.com/google/uuid"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	JobRegistry interface {
		Submit(table string) (maintenance.Job, error)
		Get(id uuid.UUID) (maintenance.Job, bool)
		All() []maintenance.Job
	}
)
