// Package ledger turns classified, priced transactions into beancount ledger entries.
package ledger

import "github.com/goodnatureofminers/btc-beancounter/internal/model"

// Classify reports whether address spends or receives in tx.
// An address funding any input is a spender even if it also receives change.
func Classify(address model.Address, tx model.RawTransaction) model.Direction {
	for _, in := range tx.Inputs {
		if in.PrevOut.Address == address {
			return model.Spend
		}
	}
	return model.Receive
}
