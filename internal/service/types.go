package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	TransactionFetcher interface {
		FetchAll(ctx context.Context, addresses []model.Address) ([]model.AddressTransactions, error)
	}
	PriceEnricher interface {
		EnrichAll(ctx context.Context, batches []model.AddressTransactions) (map[model.Address][]model.TransactionDetail, error)
	}
	LedgerBuilder interface {
		Build(addresses []model.Address, details map[model.Address][]model.TransactionDetail, txsByHash map[string]model.RawTransaction) (*model.Ledger, error)
	}
	DocumentAssembler interface {
		Assemble(ledger *model.Ledger) string
	}
	PipelineMetrics interface {
		ObserveStage(stage string, err error, started time.Time)
		ObserveEntries(count int)
	}
)
