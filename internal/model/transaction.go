package model

import "time"

// RawTransaction is a transaction as reported by the block-data service.
type RawTransaction struct {
	TxID    string
	Inputs  []TransactionInput
	Outputs []TransactionOutput
	Status  TransactionStatus
}

// TransactionInput references the previous output it spends.
type TransactionInput struct {
	PrevOut TransactionOutput
}

// TransactionOutput is a single output; Address is empty for non-standard scripts.
type TransactionOutput struct {
	Address Address
	Value   uint64
}

// TransactionStatus carries confirmation data.
type TransactionStatus struct {
	Confirmed bool
	BlockTime time.Time
}

// AddressTransactions groups the transactions touching one address in feed order.
type AddressTransactions struct {
	Address      Address
	Transactions []RawTransaction
}
