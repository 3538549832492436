package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/btc-beancounter/internal/metrics"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/internal/pricing"
	"github.com/goodnatureofminers/btc-beancounter/internal/repository/clickhouse"
	"github.com/goodnatureofminers/btc-beancounter/pkg/batcher"
)

type config struct {
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BEANCOUNTER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the candle store" required:"true"`
	Exchange      string        `long:"exchange" env:"BEANCOUNTER_EXCHANGE" description:"exchange the candles come from" required:"true"`
	Currency      string        `long:"currency" env:"BEANCOUNTER_CURRENCY" description:"fiat currency of the prices" default:"USD"`
	Input         string        `long:"input" short:"i" env:"BEANCOUNTER_CANDLES_INPUT" description:"CSV file (timestamp,open,high,low,close), - for stdin" default:"-"`
	BatchSize     int           `long:"batch-size" env:"BEANCOUNTER_CANDLES_BATCH_SIZE" description:"candles per insert" default:"5000"`
	FlushInterval time.Duration `long:"flush-interval" env:"BEANCOUNTER_CANDLES_FLUSH_INTERVAL" description:"max time a partial batch waits" default:"2s"`
	InsertRPS     int           `long:"insert-rps" env:"BEANCOUNTER_CANDLES_INSERT_RPS" description:"max inserts per second, 0 disables" default:"5"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("candle import failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	currency := model.Currency(strings.ToUpper(cfg.Currency))

	input, closeInput, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer closeInput()

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewCandleRepository())
	if err != nil {
		return fmt.Errorf("init candle repository: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Warn("close candle repository", zap.Error(cerr))
		}
	}()

	b := batcher.New(logger.Named("batcher"), func(ctx context.Context, candles []model.Candle) error {
		return repo.InsertCandles(ctx, cfg.Exchange, currency, candles)
	}, cfg.BatchSize, cfg.FlushInterval, cfg.InsertRPS)
	b.Start(ctx)

	read, readErr := pricing.ReadCandles(input, func(c model.Candle) error {
		return b.Add(ctx, c)
	})
	flushErr := b.Stop()
	if err := errors.Join(readErr, flushErr); err != nil {
		return fmt.Errorf("import after %d candles: %w", read, err)
	}

	logger.Info("candles imported",
		zap.String("exchange", cfg.Exchange),
		zap.String("currency", string(currency)),
		zap.Int("read", read),
		zap.Int("stored", b.Flushed()))
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
