package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/ledger"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/pkg/workerpool"
	"go.uber.org/zap"
)

var (
	// ErrPriceOracle wraps any failure reported by the oracle.
	ErrPriceOracle = errors.New("price oracle failed")
	// ErrCandleCountMismatch is returned when the oracle does not answer every requested date.
	ErrCandleCountMismatch = errors.New("candle count does not match transaction count")
)

// Enricher classifies transactions and prices them through an Oracle.
type Enricher struct {
	oracle   Oracle
	exchange string
	currency model.Currency
	metrics  EnricherMetrics
	logger   *zap.Logger
}

// NewEnricher constructs an Enricher for an exchange/currency pair.
func NewEnricher(oracle Oracle, exchange string, currency model.Currency, metrics EnricherMetrics, logger *zap.Logger) (*Enricher, error) {
	if oracle == nil {
		return nil, errors.New("price oracle is required")
	}
	if currency == "" {
		return nil, errors.New("fiat currency is required")
	}
	return &Enricher{
		oracle:   oracle,
		exchange: exchange,
		currency: currency,
		metrics:  metrics,
		logger:   logger,
	}, nil
}

// Enrich returns one detail per transaction, in the order given. All
// candles for the address are requested in a single oracle call.
func (e *Enricher) Enrich(ctx context.Context, address model.Address, txs []model.RawTransaction) ([]model.TransactionDetail, error) {
	if len(txs) == 0 {
		return nil, nil
	}

	dates := make([]time.Time, 0, len(txs))
	for _, tx := range txs {
		dates = append(dates, tx.Status.BlockTime)
	}

	candles, err := e.oracle.CandlesAtDates(ctx, e.exchange, e.currency, dates)
	if err != nil {
		return nil, fmt.Errorf("%w: address %s: %w", ErrPriceOracle, address, err)
	}
	if len(candles) != len(txs) {
		return nil, fmt.Errorf("%w: address %s: expected %d, got %d", ErrCandleCountMismatch, address, len(txs), len(candles))
	}

	details := make([]model.TransactionDetail, 0, len(txs))
	for i, tx := range txs {
		details = append(details, model.TransactionDetail{
			Timestamp: dates[i],
			Hash:      tx.TxID,
			Direction: ledger.Classify(address, tx),
			TWAP:      TWAP(candles[i]),
		})
	}
	e.logger.Debug("address enriched",
		zap.String("address", string(address)),
		zap.Int("details", len(details)))
	return details, nil
}

// EnrichAll prices every address concurrently, one worker per address. Any
// failure aborts the whole phase; results are merged once all workers finish.
func (e *Enricher) EnrichAll(ctx context.Context, batches []model.AddressTransactions) (details map[model.Address][]model.TransactionDetail, err error) {
	started := time.Now()
	defer func() {
		if e.metrics != nil {
			e.metrics.ObserveStage("enrich", err, started)
		}
	}()

	results, err := workerpool.Map(ctx, len(batches), batches,
		func(ctx context.Context, b model.AddressTransactions) ([]model.TransactionDetail, error) {
			return e.Enrich(ctx, b.Address, b.Transactions)
		})
	if err != nil {
		e.logger.Error("enrichment failed", zap.Error(err))
		return nil, err
	}

	details = make(map[model.Address][]model.TransactionDetail, len(batches))
	for i, b := range batches {
		details[b.Address] = append(details[b.Address], results[i]...)
	}
	return details, nil
}
