package ledger

import "github.com/goodnatureofminers/btc-beancounter/internal/model"

// ResolvePayees returns the counterpart outputs of tx for the given direction.
// Receipts only keep the wallet's own outputs; spends keep every output.
// Outputs without an address cannot be payees.
func ResolvePayees(tx model.RawTransaction, tracked model.AddressSet, direction model.Direction) []model.Payee {
	payees := make([]model.Payee, 0, len(tx.Outputs))
	for _, out := range tx.Outputs {
		if out.Address == "" {
			continue
		}
		if direction == model.Receive && !tracked.Contains(out.Address) {
			continue
		}
		payees = append(payees, model.Payee{Address: out.Address, Amount: out.Value})
	}
	return payees
}
