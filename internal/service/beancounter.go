// Package service wires the fetch, price, build and render stages into one run.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

var (
	// ErrNoTransactions means none of the addresses has any confirmed history.
	ErrNoTransactions = errors.New("no transactions found")
	// ErrNoTransactionDetails means pricing produced nothing to book.
	ErrNoTransactionDetails = errors.New("no transaction details")
)

// Beancounter turns address history into a beancount document.
type Beancounter struct {
	fetcher   TransactionFetcher
	enricher  PriceEnricher
	builder   LedgerBuilder
	assembler DocumentAssembler
	metrics   PipelineMetrics
	logger    *zap.Logger
}

// NewBeancounter builds the pipeline from its stages.
func NewBeancounter(
	fetcher TransactionFetcher,
	enricher PriceEnricher,
	builder LedgerBuilder,
	assembler DocumentAssembler,
	metrics PipelineMetrics,
	logger *zap.Logger,
) *Beancounter {
	return &Beancounter{
		fetcher:   fetcher,
		enricher:  enricher,
		builder:   builder,
		assembler: assembler,
		metrics:   metrics,
		logger:    logger,
	}
}

// Run fetches, prices and books every address and returns the rendered document.
func (b *Beancounter) Run(ctx context.Context, addresses []model.Address) (document string, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveStage("run", err, started)
	}()

	batches, err := b.fetch(ctx, addresses)
	if err != nil {
		return "", err
	}
	if len(batches) == 0 {
		return "", ErrNoTransactions
	}

	details, err := b.enricher.EnrichAll(ctx, batches)
	if err != nil {
		return "", err
	}
	if countDetails(details) == 0 {
		return "", ErrNoTransactionDetails
	}

	ledger, err := b.build(addresses, details, indexByHash(batches))
	if err != nil {
		return "", err
	}

	b.logger.Info("ledger built",
		zap.Int("addresses", len(batches)),
		zap.Int("entries", len(ledger.Entries)))
	return b.assembler.Assemble(ledger), nil
}

// fetch returns only the addresses that have history, in address order.
func (b *Beancounter) fetch(ctx context.Context, addresses []model.Address) (batches []model.AddressTransactions, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveStage("fetch", err, started)
	}()

	fetched, err := b.fetcher.FetchAll(ctx, addresses)
	if err != nil {
		return nil, err
	}
	for _, f := range fetched {
		if len(f.Transactions) == 0 {
			b.logger.Debug("address has no history", zap.String("address", string(f.Address)))
			continue
		}
		batches = append(batches, f)
	}
	return batches, nil
}

func (b *Beancounter) build(
	addresses []model.Address,
	details map[model.Address][]model.TransactionDetail,
	txsByHash map[string]model.RawTransaction,
) (ledger *model.Ledger, err error) {
	started := time.Now()
	defer func() {
		b.metrics.ObserveStage("build", err, started)
	}()

	ledger, err = b.builder.Build(addresses, details, txsByHash)
	if err != nil {
		return nil, err
	}
	b.metrics.ObserveEntries(len(ledger.Entries))
	return ledger, nil
}

func countDetails(details map[model.Address][]model.TransactionDetail) int {
	n := 0
	for _, d := range details {
		n += len(d)
	}
	return n
}

// indexByHash flattens every batch into a txid lookup. A transaction touching
// several tracked addresses appears once.
func indexByHash(batches []model.AddressTransactions) map[string]model.RawTransaction {
	index := make(map[string]model.RawTransaction)
	for _, b := range batches {
		for _, tx := range b.Transactions {
			index[tx.TxID] = tx
		}
	}
	return index
}
