package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/internal/utils"
	"github.com/goodnatureofminers/btc-beancounter/pkg/safe"
)

// DefaultGapLimit is the number of addresses derived per branch.
const DefaultGapLimit = 100

const (
	externalBranch = 0
	internalBranch = 1
)

// DeriveAddresses derives native segwit (P2WPKH) receive addresses 0/i and
// change addresses 1/i from an account level extended public key. Receive
// addresses come first, each branch in index order.
func DeriveAddresses(extendedKey string, network model.Network, gapLimit int) ([]model.Address, error) {
	params, err := utils.ChainParams(network)
	if err != nil {
		return nil, err
	}
	if gapLimit < 1 {
		return nil, fmt.Errorf("gap limit must be positive, got %d", gapLimit)
	}
	count, err := safe.Uint32(gapLimit)
	if err != nil {
		return nil, fmt.Errorf("gap limit: %w", err)
	}

	account, err := hdkeychain.NewKeyFromString(strings.TrimSpace(extendedKey))
	if err != nil {
		return nil, fmt.Errorf("parse extended key: %w", err)
	}
	if account.IsPrivate() {
		return nil, errors.New("extended key must be public")
	}
	if !account.IsForNet(params) {
		// SLIP-132 and testnet tpub keys share versions across networks
		account.SetNet(params)
	}

	result := make([]model.Address, 0, 2*gapLimit)
	for _, branch := range []uint32{externalBranch, internalBranch} {
		addrs, err := deriveBranch(account, branch, count, params)
		if err != nil {
			return nil, err
		}
		result = append(result, addrs...)
	}
	return result, nil
}

func deriveBranch(account *hdkeychain.ExtendedKey, branch, count uint32, params *chaincfg.Params) ([]model.Address, error) {
	branchKey, err := account.Derive(branch)
	if err != nil {
		return nil, fmt.Errorf("derive branch %d: %w", branch, err)
	}

	addrs := make([]model.Address, 0, count)
	for i := uint32(0); i < count; i++ {
		child, err := branchKey.Derive(i)
		if err != nil {
			// invalid child keys are skipped per BIP-32
			if errors.Is(err, hdkeychain.ErrInvalidChild) {
				continue
			}
			return nil, fmt.Errorf("derive %d/%d: %w", branch, i, err)
		}
		pubKey, err := child.ECPubKey()
		if err != nil {
			return nil, fmt.Errorf("public key %d/%d: %w", branch, i, err)
		}
		addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pubKey.SerializeCompressed()), params)
		if err != nil {
			return nil, fmt.Errorf("address %d/%d: %w", branch, i, err)
		}
		addrs = append(addrs, model.Address(addr.EncodeAddress()))
	}
	return addrs, nil
}
