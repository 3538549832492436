// Package model defines domain models for ledger generation.
package model

type (
	Address  string
	Currency string
	Network  string
)

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
	Regtest Network = "regtest"
)

// BTC is the commodity symbol used for every bitcoin posting.
const BTC Currency = "BTC"

// AddressSet is a lookup of the wallet's own addresses.
type AddressSet map[Address]struct{}

// NewAddressSet builds a set from an ordered address list.
func NewAddressSet(addresses []Address) AddressSet {
	set := make(AddressSet, len(addresses))
	for _, a := range addresses {
		set[a] = struct{}{}
	}
	return set
}

// Contains reports whether the address belongs to the wallet.
func (s AddressSet) Contains(a Address) bool {
	_, ok := s[a]
	return ok
}
