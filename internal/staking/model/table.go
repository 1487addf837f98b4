package model

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidTableName is returned for table names outside the allow-list.
var ErrInvalidTableName = errors.New("invalid table name")

// StakingTable names a table owned by the indexer.
type StakingTable string

var (
	AddressesStaking StakingTable = "addresses_staking"
	KeysStaking      StakingTable = "keys_staking"
)

// StakingTables lists every table owned by the indexer.
var StakingTables = []StakingTable{AddressesStaking, KeysStaking}

// ParseStakingTable validates a caller-supplied staking table name.
func ParseStakingTable(name string) (StakingTable, error) {
	for _, t := range StakingTables {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTableName, name)
}

// SanitizeLedgerTable keeps only the ASCII letters of a ledger table name. Case is preserved.
func SanitizeLedgerTable(name string) (string, error) {
	var b strings.Builder
	for _, r := range name {
		if r < unicode.MaxASCII && unicode.IsLetter(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTableName, name)
	}
	return b.String(), nil
}
