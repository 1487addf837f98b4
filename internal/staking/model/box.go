package model

// BoxRef is a row of the raw boxes ledger. A box present in the ledger is unspent.
type BoxRef struct {
	BoxID  string `gorm:"column:box_id"`
	Height int64  `gorm:"column:height"`
}

// CandidateQuery selects a keyset page of ledger boxes ordered by (height, box_id).
type CandidateQuery struct {
	MinHeight int64
	MaxHeight int64
	// After is the last box of the previous page, nil for the first page.
	After *BoxRef
	Limit int
}

// Asset is a token amount carried by a box.
type Asset struct {
	TokenID string
	Amount  int64
}

// UtxoDetail is the node's view of an unspent box.
type UtxoDetail struct {
	BoxID          string
	ErgoTree       string
	CreationHeight int64
	Assets         []Asset
	// Registers maps R4..R9 to their hex-encoded serialized values.
	Registers map[string]string
}

// FetchedBox pairs a resolved box with the height recorded for it in the ledger.
type FetchedBox struct {
	Height int64
	Detail UtxoDetail
}
