package ledger

import (
	"errors"
	"fmt"
	"math/big"
	"sort"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/clock"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrUnknownTransaction is returned when a detail references a hash with no raw transaction.
	ErrUnknownTransaction = errors.New("unknown transaction")
	// ErrNoTransactions is returned when there is nothing to derive an open date from.
	ErrNoTransactions = errors.New("no transactions supplied")
)

const (
	btcPlaces  = 8
	fiatPlaces = 2
)

// Options configures a Builder.
type Options struct {
	Currency    model.Currency
	BTCAccount  AccountName
	FiatAccount AccountName
	// Chronological sorts entries across addresses by time after the per-address pass.
	Chronological bool
}

// Builder synthesizes balanced ledger entries from transaction details.
type Builder struct {
	accounts      Accounts
	currency      model.Currency
	chronological bool
	logger        *zap.Logger
}

// NewBuilder validates the configured accounts before any entry can be built.
func NewBuilder(opts Options, logger *zap.Logger) (*Builder, error) {
	if opts.Currency == "" {
		return nil, errors.New("fiat currency is required")
	}
	if opts.BTCAccount == (AccountName{}) {
		opts.BTCAccount = DefaultBTCAccount()
	}
	if opts.FiatAccount == (AccountName{}) {
		opts.FiatAccount = DefaultFiatAccount(opts.Currency)
	}
	accounts, err := NewAccounts(opts.BTCAccount, opts.FiatAccount)
	if err != nil {
		return nil, err
	}
	return &Builder{
		accounts:      accounts,
		currency:      opts.Currency,
		chronological: opts.Chronological,
		logger:        logger,
	}, nil
}

// Accounts returns the validated account names.
func (b *Builder) Accounts() Accounts {
	return b.accounts
}

// Build emits the account-open directives and one entry per (detail, payee) pair.
// Addresses are walked in the given order; each address's details are sorted
// by time first. Addresses without details contribute nothing.
func (b *Builder) Build(
	addresses []model.Address,
	details map[model.Address][]model.TransactionDetail,
	txsByHash map[string]model.RawTransaction,
) (*model.Ledger, error) {
	openDate, err := EarliestBlockDate(txsByHash)
	if err != nil {
		return nil, err
	}

	ledger := &model.Ledger{
		OpenDate: openDate,
		Accounts: []model.AccountOpen{
			{Date: openDate, Account: b.accounts.BTC, Currency: model.BTC},
			{Date: openDate, Account: b.accounts.Fiat, Currency: b.currency},
		},
	}

	tracked := model.NewAddressSet(addresses)
	for _, address := range addresses {
		forAddress := details[address]
		if len(forAddress) == 0 {
			continue
		}
		for _, detail := range SortDetails(forAddress) {
			tx, ok := txsByHash[detail.Hash]
			if !ok {
				return nil, fmt.Errorf("%w: %s for address %s", ErrUnknownTransaction, detail.Hash, address)
			}
			payees := ResolvePayees(tx, tracked, detail.Direction)
			if len(payees) == 0 {
				b.logger.Debug("transaction has no payees",
					zap.String("address", string(address)),
					zap.String("txid", detail.Hash),
					zap.Stringer("direction", detail.Direction))
				continue
			}
			for _, payee := range payees {
				ledger.Entries = append(ledger.Entries, b.entry(detail, payee))
			}
		}
	}

	if b.chronological {
		sort.SliceStable(ledger.Entries, func(i, j int) bool {
			return ledger.Entries[i].Date.Before(ledger.Entries[j].Date)
		})
	}

	return ledger, nil
}

func (b *Builder) entry(detail model.TransactionDetail, payee model.Payee) model.LedgerEntry {
	btc := SatoshisToBTC(payee.Amount)
	fiat := detail.TWAP.Mul(btc).Round(fiatPlaces)
	twap := &model.Amount{Number: detail.TWAP.Round(fiatPlaces), Currency: b.currency}

	btcLeg := model.Posting{
		Account: b.accounts.BTC,
		Amount:  model.Amount{Number: btc, Currency: model.BTC},
	}
	fiatLeg := model.Posting{
		Account: b.accounts.Fiat,
		Amount:  model.Amount{Number: fiat, Currency: b.currency},
	}

	if detail.Direction == model.Spend {
		btcLeg.Amount.Number = btc.Neg()
		btcLeg.Price = twap
	} else {
		btcLeg.Cost = twap
		fiatLeg.Amount.Number = fiat.Neg()
	}

	return model.LedgerEntry{
		Date:      detail.Timestamp.UTC(),
		Payee:     payee.Address,
		Narration: "Transaction hash: " + detail.Hash,
		Postings:  []model.Posting{btcLeg, fiatLeg},
	}
}

// SatoshisToBTC converts an integer satoshi amount to an exact BTC decimal.
func SatoshisToBTC(sats uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(sats), -btcPlaces)
}

// SortDetails returns details ordered by ascending timestamp.
// The input is left untouched; equal timestamps keep their feed order.
func SortDetails(details []model.TransactionDetail) []model.TransactionDetail {
	sorted := make([]model.TransactionDetail, len(details))
	copy(sorted, details)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// EarliestBlockDate returns the UTC calendar date of the oldest transaction.
func EarliestBlockDate(txsByHash map[string]model.RawTransaction) (time.Time, error) {
	if len(txsByHash) == 0 {
		return time.Time{}, ErrNoTransactions
	}
	var earliest time.Time
	for _, tx := range txsByHash {
		t := tx.Status.BlockTime
		if earliest.IsZero() || t.Before(earliest) {
			earliest = t
		}
	}
	return clock.UTCDate(earliest), nil
}
