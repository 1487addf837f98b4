package model

import "time"

// StakingService is the audit log service name owned by the indexer.
const StakingService = "staking"

// AddressTokenRecord is one asset held by an address in one unspent box.
type AddressTokenRecord struct {
	ID      int64  `gorm:"column:id;primaryKey"`
	Address string `gorm:"column:address"`
	TokenID string `gorm:"column:token_id"`
	Amount  int64  `gorm:"column:amount"`
	BoxID   string `gorm:"column:box_id"`
	Height  int64  `gorm:"column:height"`
	// ErgoTree is the script the address is resolved from before persisting.
	ErgoTree string `gorm:"-"`
}

// TableName implements gorm's tabler.
func (AddressTokenRecord) TableName() string {
	return string(AddressesStaking)
}

// StakeKeyRecord is a detected staking position.
type StakeKeyRecord struct {
	ID              int64  `gorm:"column:id;primaryKey"`
	BoxID           string `gorm:"column:box_id"`
	TokenID         string `gorm:"column:token_id"`
	Amount          int64  `gorm:"column:amount"`
	Penalty         int64  `gorm:"column:penalty"`
	Address         string `gorm:"column:address"`
	StakeKeyTokenID string `gorm:"column:stakekey_token_id"`
	Height          int64  `gorm:"column:height"`
	ErgoTree        string `gorm:"-"`
}

// TableName implements gorm's tabler.
func (StakeKeyRecord) TableName() string {
	return string(KeysStaking)
}

// AuditLogEntry records the progress of a service.
type AuditLogEntry struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Height    int64     `gorm:"column:height"`
	Service   string    `gorm:"column:service"`
	Notes     string    `gorm:"column:notes"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName implements gorm's tabler.
func (AuditLogEntry) TableName() string {
	return "audit_log"
}

// Detection is the output of the stake key detector for one batch.
type Detection struct {
	Addresses []AddressTokenRecord
	Keys      []StakeKeyRecord
	// AddressCount is the number of distinct raw addresses in Addresses.
	AddressCount int
	MaxHeight    int64
	Skipped      int
}

// Checkpoint is a batch of records merged into the staking tables together with its audit entry.
type Checkpoint struct {
	Addresses []AddressTokenRecord
	Keys      []StakeKeyRecord
	Audit     AuditLogEntry
}

// MergeResult counts the rows a checkpoint actually added to the staking tables.
type MergeResult struct {
	Addresses int64
	Keys      int64
}
