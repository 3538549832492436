package clickhouse

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
)

// ErrCandleNotFound is returned when no candle lies within the search window of a date.
var ErrCandleNotFound = errors.New("candle not found")

const nearestCandleQuery = `
SELECT
    timestamp,
    open,
    high,
    low,
    close
FROM candles FINAL
WHERE exchange = ? AND currency = ? AND timestamp BETWEEN ? AND ?
ORDER BY abs(toInt64(toUnixTimestamp(timestamp)) - ?) ASC, timestamp ASC
LIMIT 1`

// CandlesAtDates returns, for every date, the stored candle nearest to it.
// The result has one candle per date, in request order.
func (r *Repository) CandlesAtDates(ctx context.Context, exchange string, currency model.Currency, dates []time.Time) (candles []model.Candle, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("candles_at_dates", exchange, currency, err, start)
	}()

	candles = make([]model.Candle, 0, len(dates))
	for _, date := range dates {
		c, err := r.nearestCandle(ctx, exchange, currency, date)
		if err != nil {
			return nil, err
		}
		candles = append(candles, c)
	}
	return candles, nil
}

func (r *Repository) nearestCandle(ctx context.Context, exchange string, currency model.Currency, date time.Time) (c model.Candle, err error) {
	date = date.UTC()
	rows, err := r.conn.Query(ctx, nearestCandleQuery,
		exchange,
		string(currency),
		date.Add(-r.maxDistance),
		date.Add(r.maxDistance),
		date.Unix(),
	)
	if err != nil {
		return model.Candle{}, fmt.Errorf("query nearest candle: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return model.Candle{}, fmt.Errorf("iterate candles: %w", err)
		}
		return model.Candle{}, fmt.Errorf("%w: %s %s at %s", ErrCandleNotFound, exchange, currency, date.Format(time.RFC3339))
	}
	if err = rows.Scan(&c.Timestamp, &c.Open, &c.High, &c.Low, &c.Close); err != nil {
		return model.Candle{}, fmt.Errorf("scan candle: %w", err)
	}
	c.Timestamp = c.Timestamp.UTC()
	return c, nil
}
