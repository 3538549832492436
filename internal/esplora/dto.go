package esplora

import (
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/internal/utils"
	"github.com/goodnatureofminers/btc-beancounter/pkg/safe"
)

type txDTO struct {
	TxID   string    `json:"txid"`
	Vin    []vinDTO  `json:"vin"`
	Vout   []voutDTO `json:"vout"`
	Status statusDTO `json:"status"`
}

type vinDTO struct {
	TxID       string   `json:"txid"`
	Vout       uint32   `json:"vout"`
	Prevout    *voutDTO `json:"prevout"`
	IsCoinbase bool     `json:"is_coinbase"`
}

type voutDTO struct {
	ScriptPubKey string `json:"scriptpubkey"`
	Address      string `json:"scriptpubkey_address"`
	Value        int64  `json:"value"`
}

type statusDTO struct {
	Confirmed   bool   `json:"confirmed"`
	BlockHeight int64  `json:"block_height"`
	BlockHash   string `json:"block_hash"`
	BlockTime   int64  `json:"block_time"`
}

func convertTransaction(dto txDTO, params *chaincfg.Params) (model.RawTransaction, error) {
	if len(dto.TxID) != chainhash.MaxHashStringSize {
		return model.RawTransaction{}, fmt.Errorf("invalid txid %q", dto.TxID)
	}
	if _, err := chainhash.NewHashFromStr(dto.TxID); err != nil {
		return model.RawTransaction{}, fmt.Errorf("invalid txid %q: %w", dto.TxID, err)
	}

	tx := model.RawTransaction{
		TxID:    dto.TxID,
		Inputs:  make([]model.TransactionInput, 0, len(dto.Vin)),
		Outputs: make([]model.TransactionOutput, 0, len(dto.Vout)),
		Status: model.TransactionStatus{
			Confirmed: dto.Status.Confirmed,
			BlockTime: time.Unix(dto.Status.BlockTime, 0).UTC(),
		},
	}
	for i, vin := range dto.Vin {
		var input model.TransactionInput
		// coinbase inputs carry no prevout
		if vin.Prevout != nil {
			prev, err := convertOutput(*vin.Prevout, params)
			if err != nil {
				return model.RawTransaction{}, fmt.Errorf("tx %s vin %d: %w", dto.TxID, i, err)
			}
			input.PrevOut = prev
		}
		tx.Inputs = append(tx.Inputs, input)
	}
	for i, vout := range dto.Vout {
		out, err := convertOutput(vout, params)
		if err != nil {
			return model.RawTransaction{}, fmt.Errorf("tx %s vout %d: %w", dto.TxID, i, err)
		}
		tx.Outputs = append(tx.Outputs, out)
	}
	return tx, nil
}

func convertOutput(dto voutDTO, params *chaincfg.Params) (model.TransactionOutput, error) {
	value, err := safe.Uint64(dto.Value)
	if err != nil {
		return model.TransactionOutput{}, err
	}
	address := model.Address(dto.Address)
	if address == "" {
		// older esplora builds omit the address for some script types
		address, err = utils.ScriptAddress(dto.ScriptPubKey, params)
		if err != nil {
			return model.TransactionOutput{}, err
		}
	}
	return model.TransactionOutput{Address: address, Value: value}, nil
}
