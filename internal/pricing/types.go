package pricing

import (
	"context"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Oracle returns one candle per requested date, in request order.
	Oracle interface {
		CandlesAtDates(ctx context.Context, exchange string, currency model.Currency, dates []time.Time) ([]model.Candle, error)
	}
	EnricherMetrics interface {
		ObserveStage(stage string, err error, started time.Time)
	}
)
