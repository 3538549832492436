package pricing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/shopspring/decimal"
)

// ReadCandles streams OHLC rows (timestamp,open,high,low,close) to fn.
// Timestamps are unix seconds or RFC 3339; a header row is skipped.
func ReadCandles(r io.Reader, fn func(model.Candle) error) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 5
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	count := 0
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		if line == 1 && strings.EqualFold(record[0], "timestamp") {
			continue
		}

		c, err := parseCandle(record)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if err := fn(c); err != nil {
			return count, err
		}
		count++
	}
}

func parseCandle(record []string) (model.Candle, error) {
	ts, err := parseTimestamp(record[0])
	if err != nil {
		return model.Candle{}, err
	}
	prices := make([]decimal.Decimal, 4)
	for i := range prices {
		prices[i], err = decimal.NewFromString(record[i+1])
		if err != nil {
			return model.Candle{}, fmt.Errorf("price %q: %w", record[i+1], err)
		}
	}
	c := model.Candle{Timestamp: ts, Open: prices[0], High: prices[1], Low: prices[2], Close: prices[3]}
	if c.Low.GreaterThan(c.High) {
		return model.Candle{}, fmt.Errorf("low %s above high %s", c.Low, c.High)
	}
	return c, nil
}

func parseTimestamp(s string) (time.Time, error) {
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(secs, 0).UTC(), nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return ts.UTC(), nil
}
