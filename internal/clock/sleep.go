// Package clock holds the time helpers shared by the fetcher and the ledger.
package clock

import (
	"context"
	"time"
)

// SleepFunc blocks for d or until ctx ends.
type SleepFunc func(ctx context.Context, d time.Duration) error

// SleepWithContext waits for d and returns ctx.Err() if the context ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// UTCDate truncates t to midnight of its UTC calendar day.
func UTCDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
