// Package wallet resolves the set of addresses a ledger is generated for.
package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/internal/utils"
)

// ErrNoAddresses is returned when neither addresses nor an extended key were supplied.
var ErrNoAddresses = errors.New("no wallet addresses")

// ParseAddresses validates explicit addresses for the network, keeping the
// first occurrence of duplicates. Entries may be comma separated.
func ParseAddresses(raw []string, network model.Network) ([]model.Address, error) {
	params, err := utils.ChainParams(network)
	if err != nil {
		return nil, err
	}

	seen := make(model.AddressSet)
	var result []model.Address
	for _, entry := range raw {
		for _, s := range strings.Split(entry, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			addr, err := btcutil.DecodeAddress(s, params)
			if err != nil {
				return nil, fmt.Errorf("address %q: %w", s, err)
			}
			if !addr.IsForNet(params) {
				return nil, fmt.Errorf("address %q is not a %s address", s, network)
			}
			a := model.Address(addr.EncodeAddress())
			if seen.Contains(a) {
				continue
			}
			seen[a] = struct{}{}
			result = append(result, a)
		}
	}
	if len(result) == 0 {
		return nil, ErrNoAddresses
	}
	return result, nil
}
