// Package utils holds bitcoin helpers shared by the address and transaction sources.
package utils

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

// ChainParams resolves network parameters by name.
func ChainParams(network model.Network) (*chaincfg.Params, error) {
	switch strings.ToLower(string(network)) {
	case "main", "mainnet", "bitcoin":
		return &chaincfg.MainNetParams, nil
	case "testnet", "testnet3":
		return &chaincfg.TestNet3Params, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	case "signet":
		return &chaincfg.SigNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// ScriptAddress returns the single address paid by a hex encoded pkScript.
// Scripts without exactly one address (OP_RETURN, bare multisig, unknown
// templates) yield an empty address.
func ScriptAddress(scriptHex string, params *chaincfg.Params) (model.Address, error) {
	if scriptHex == "" {
		return "", nil
	}
	script, err := hex.DecodeString(scriptHex)
	if err != nil {
		return "", fmt.Errorf("decode script: %w", err)
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
	if err != nil {
		return "", err
	}
	if len(addrs) != 1 {
		return "", nil
	}
	return model.Address(addrs[0].EncodeAddress()), nil
}
