package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

const insertCandlesQuery = `
INSERT INTO candles (
    exchange,
    currency,
    timestamp,
    open,
    high,
    low,
    close
) VALUES`

// InsertCandles stores candles for an exchange/currency pair in one batch.
// Re-inserting a timestamp replaces the earlier candle.
func (r *Repository) InsertCandles(ctx context.Context, exchange string, currency model.Currency, candles []model.Candle) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_candles", exchange, currency, err, start)
	}()

	if len(candles) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertCandlesQuery)
	if err != nil {
		return fmt.Errorf("prepare candles batch: %w", err)
	}
	for _, c := range candles {
		if err = batch.Append(
			exchange,
			string(currency),
			c.Timestamp.UTC(),
			c.Open,
			c.High,
			c.Low,
			c.Close,
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append candle: %w", err)
		}
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("send candles batch: %w", err)
	}
	return nil
}
