// Package esplora fetches address transaction history from an Esplora block explorer.
package esplora

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/goodnatureofminers/btc-beancounter/internal/clock"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/internal/utils"
	"github.com/goodnatureofminers/btc-beancounter/pkg/workerpool"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// chainPageSize is the number of confirmed transactions Esplora returns per page.
const chainPageSize = 25

// Client is an Esplora REST client.
type Client struct {
	baseURL     string
	httpClient  HTTPDoer
	limiter     ratelimit.Limiter
	retryPolicy RetryPolicy
	sleep       clock.SleepFunc
	params      *chaincfg.Params
	metrics     ClientMetrics
	logger      *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) { c.httpClient = doer }
}

// WithRateLimit paces requests to rps per second across all workers.
// Zero or negative disables pacing.
func WithRateLimit(rps int) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = ratelimit.New(rps)
		}
	}
}

// WithRetryPolicy overrides DefaultRetryPolicy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retryPolicy = p }
}

// WithSleep replaces the wait between retries.
func WithSleep(sleep clock.SleepFunc) Option {
	return func(c *Client) { c.sleep = sleep }
}

// NewClient constructs a client for the explorer API rooted at baseURL.
func NewClient(baseURL string, network model.Network, metrics ClientMetrics, logger *zap.Logger, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid esplora url %q: %w", baseURL, err)
	}
	params, err := utils.ChainParams(network)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		limiter:     ratelimit.NewUnlimited(),
		retryPolicy: DefaultRetryPolicy(),
		sleep:       clock.SleepWithContext,
		params:      params,
		metrics:     metrics,
		logger:      logger.Named("esplora"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.retryPolicy.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// AddressTransactions returns the confirmed history of an address, following
// chain pagination. A non-200 answer means the explorer has no data for the
// address and yields an empty result, not an error.
func (c *Client) AddressTransactions(ctx context.Context, address model.Address) ([]model.RawTransaction, error) {
	logger := c.logger.With(zap.String("address", string(address)))

	var (
		result []model.RawTransaction
		path   = fmt.Sprintf("/address/%s/txs", url.PathEscape(string(address)))
	)
	for page := 0; ; page++ {
		dtos, ok, err := c.fetchPage(ctx, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			if page > 0 {
				logger.Warn("history truncated: later page unavailable", zap.Int("page", page))
			}
			break
		}

		confirmed := 0
		lastTxID := ""
		for _, dto := range dtos {
			if !dto.Status.Confirmed {
				logger.Debug("skipping unconfirmed transaction", zap.String("txid", dto.TxID))
				continue
			}
			tx, err := convertTransaction(dto, c.params)
			if err != nil {
				return nil, fmt.Errorf("address %s: %w", address, err)
			}
			result = append(result, tx)
			confirmed++
			lastTxID = tx.TxID
		}
		if confirmed < chainPageSize {
			break
		}
		path = fmt.Sprintf("/address/%s/txs/chain/%s", url.PathEscape(string(address)), lastTxID)
	}

	logger.Debug("address history fetched", zap.Int("transactions", len(result)))
	return result, nil
}

// FetchAll fetches every address concurrently, one worker per address. The
// result keeps address order; any error aborts the whole fetch.
func (c *Client) FetchAll(ctx context.Context, addresses []model.Address) ([]model.AddressTransactions, error) {
	return workerpool.Map(ctx, len(addresses), addresses,
		func(ctx context.Context, address model.Address) (model.AddressTransactions, error) {
			txs, err := c.AddressTransactions(ctx, address)
			if err != nil {
				return model.AddressTransactions{}, err
			}
			return model.AddressTransactions{Address: address, Transactions: txs}, nil
		})
}

func (c *Client) fetchPage(ctx context.Context, path string) ([]txDTO, bool, error) {
	target := c.baseURL + path

	var body []byte
	err := c.retry(ctx, target, func() error {
		c.limiter.Take()
		var err error
		body, err = c.get(ctx, target)
		return err
	})
	if errors.Is(err, errNotOK) {
		c.logger.Warn("block explorer returned no data", zap.String("target", target), zap.Error(err))
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var dtos []txDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", target, err)
	}
	return dtos, true, nil
}

var errNotOK = errors.New("unexpected status")

func (c *Client) get(ctx context.Context, target string) (body []byte, err error) {
	started := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.Observe("address_txs", err, started)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: %s", errNotOK, resp.Status)
	}
	return io.ReadAll(resp.Body)
}
