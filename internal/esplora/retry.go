package esplora

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// ErrRetriesExhausted is returned once every attempt allowed by the RetryPolicy
// has failed with a connectivity error.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryPolicy bounds how connectivity failures are retried.
type RetryPolicy struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	MaxAttempts     int
}

// DefaultRetryPolicy waits 4s, doubling up to one minute, for at most 8 attempts.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		InitialInterval: 4 * time.Second,
		MaxInterval:     time.Minute,
		Multiplier:      2,
		MaxAttempts:     8,
	}
}

// Validate checks the policy for values that would never terminate or never wait.
func (p RetryPolicy) Validate() error {
	switch {
	case p.MaxAttempts < 1:
		return fmt.Errorf("retry max attempts must be positive, got %d", p.MaxAttempts)
	case p.InitialInterval < 0:
		return fmt.Errorf("retry initial interval must not be negative, got %s", p.InitialInterval)
	case p.MaxInterval < p.InitialInterval:
		return fmt.Errorf("retry max interval %s is below initial interval %s", p.MaxInterval, p.InitialInterval)
	case p.Multiplier < 1:
		return fmt.Errorf("retry multiplier must be at least 1, got %v", p.Multiplier)
	}
	return nil
}

func (p RetryPolicy) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.InitialInterval
	b.MaxInterval = p.MaxInterval
	b.Multiplier = p.Multiplier
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// retry runs op until it succeeds, fails with a non-connectivity error, or
// MaxAttempts is reached.
func (c *Client) retry(ctx context.Context, target string, op func() error) error {
	b := c.retryPolicy.newBackOff()
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || !isConnectivityError(err) {
			return err
		}
		if attempt >= c.retryPolicy.MaxAttempts {
			return fmt.Errorf("%w: %s after %d attempts: %w", ErrRetriesExhausted, target, attempt, err)
		}

		wait := b.NextBackOff()
		c.logger.Warn("block explorer unreachable, retrying",
			zap.String("target", target),
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
		if c.metrics != nil {
			c.metrics.ObserveRetry()
		}
		if err := c.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func isConnectivityError(err error) bool {
	var netErr net.Error
	return errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF)
}
