package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a tracked address spent or received in a transaction.
type Direction int

const (
	Receive Direction = iota
	Spend
)

func (d Direction) String() string {
	if d == Spend {
		return "spend"
	}
	return "receive"
}

// Payee is a counterpart output of a transaction.
type Payee struct {
	Address Address
	Amount  uint64 // satoshis
}

// TransactionDetail is a priced, classified view of a transaction for one address.
type TransactionDetail struct {
	Timestamp time.Time
	Hash      string
	Direction Direction
	TWAP      decimal.Decimal
}

// Candle is a single OHLC price point.
type Candle struct {
	Timestamp time.Time
	Open      decimal.Decimal
	High      decimal.Decimal
	Low       decimal.Decimal
	Close     decimal.Decimal
}

// Amount is a decimal quantity of a commodity.
type Amount struct {
	Number   decimal.Decimal
	Currency Currency
}

// Posting is one leg of a ledger entry. Cost and Price are mutually exclusive.
type Posting struct {
	Account string
	Amount  Amount
	Cost    *Amount
	Price   *Amount
}

// LedgerEntry is a balanced transaction directive.
type LedgerEntry struct {
	Date      time.Time
	Payee     Address
	Narration string
	Postings  []Posting
}

// AccountOpen is an open directive with its constraint currency.
type AccountOpen struct {
	Date     time.Time
	Account  string
	Currency Currency
}

// Ledger is everything the builder produces for one run.
type Ledger struct {
	OpenDate time.Time
	Accounts []AccountOpen
	Entries  []LedgerEntry
}
