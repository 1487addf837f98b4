// Package model defines domain models for the staking index.
package model

// Network identifies the Ergo network a box belongs to.
type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
)

// AddressPrefix returns the network component of an Ergo address prefix byte.
func (n Network) AddressPrefix() (byte, bool) {
	switch n {
	case Mainnet:
		return 0x00, true
	case Testnet:
		return 0x10, true
	default:
		return 0, false
	}
}
