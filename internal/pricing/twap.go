// Package pricing attaches fiat prices to classified transactions.
package pricing

import (
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/shopspring/decimal"
)

var four = decimal.NewFromInt(4)

// TWAP approximates the time-weighted average price of a candle as the mean
// of its open, high, low and close, rounded to cents.
func TWAP(c model.Candle) decimal.Decimal {
	return c.Open.Add(c.High).Add(c.Low).Add(c.Close).Div(four).Round(2)
}
