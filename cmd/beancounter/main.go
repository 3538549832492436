package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/btc-beancounter/internal/esplora"
	"github.com/goodnatureofminers/btc-beancounter/internal/ledger"
	"github.com/goodnatureofminers/btc-beancounter/internal/metrics"
	"github.com/goodnatureofminers/btc-beancounter/internal/model"
	"github.com/goodnatureofminers/btc-beancounter/internal/pricing"
	"github.com/goodnatureofminers/btc-beancounter/internal/repository/clickhouse"
	"github.com/goodnatureofminers/btc-beancounter/internal/service"
	"github.com/goodnatureofminers/btc-beancounter/internal/wallet"
)

type config struct {
	EsploraURL    string        `long:"esplora-url" env:"BEANCOUNTER_ESPLORA_URL" description:"Esplora REST API base URL" default:"https://blockstream.info/testnet/api"`
	Network       string        `long:"network" env:"BEANCOUNTER_NETWORK" description:"bitcoin network (mainnet, testnet, signet, regtest)" default:"testnet"`
	Addresses     []string      `long:"address" env:"BEANCOUNTER_ADDRESSES" env-delim:"," description:"wallet address, repeatable"`
	ExtendedKey   string        `long:"xpub" env:"BEANCOUNTER_XPUB" description:"account extended public key to derive P2WPKH addresses from"`
	GapLimit      int           `long:"gap-limit" env:"BEANCOUNTER_GAP_LIMIT" description:"addresses derived per branch" default:"100"`
	Exchange      string        `long:"exchange" env:"BEANCOUNTER_EXCHANGE" description:"exchange whose candles price the transactions" default:"kraken"`
	Currency      string        `long:"currency" env:"BEANCOUNTER_CURRENCY" description:"fiat currency" default:"USD"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BEANCOUNTER_CLICKHOUSE_DSN" description:"ClickHouse DSN of the candle store" required:"true"`
	CandleWindow  time.Duration `long:"candle-window" env:"BEANCOUNTER_CANDLE_WINDOW" description:"max distance between a transaction and its candle" default:"24h"`
	Output        string        `long:"output" short:"o" env:"BEANCOUNTER_OUTPUT" description:"beancount file to write" default:"ledger.beancount"`
	Jurisdiction  string        `long:"jurisdiction" env:"BEANCOUNTER_JURISDICTION" description:"jurisdiction component of the BTC account"`
	Institution   string        `long:"institution" env:"BEANCOUNTER_INSTITUTION" description:"institution component of the BTC account"`
	Subaccount    string        `long:"subaccount" env:"BEANCOUNTER_SUBACCOUNT" description:"subaccount appended to both accounts"`
	Chronological bool          `long:"chronological" env:"BEANCOUNTER_CHRONOLOGICAL" description:"order entries by date across all addresses"`
	RateLimit     int           `long:"rate-limit" env:"BEANCOUNTER_RATE_LIMIT" description:"explorer requests per second, 0 disables" default:"10"`
	HTTPTimeout   time.Duration `long:"http-timeout" env:"BEANCOUNTER_HTTP_TIMEOUT" description:"explorer request timeout" default:"30s"`
	RetryAttempts int           `long:"retry-attempts" env:"BEANCOUNTER_RETRY_ATTEMPTS" description:"attempts per request on connectivity errors" default:"8"`
	RetryInitial  time.Duration `long:"retry-initial" env:"BEANCOUNTER_RETRY_INITIAL" description:"first wait after a connectivity error" default:"4s"`
	RetryMax      time.Duration `long:"retry-max" env:"BEANCOUNTER_RETRY_MAX" description:"longest wait between attempts" default:"1m"`
	MetricsAddr   string        `long:"metrics-addr" env:"BEANCOUNTER_METRICS_ADDR" description:"address for metrics server, empty disables it"`
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
		logger.Fatal("beancounter failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	network := model.Network(cfg.Network)
	currency := model.Currency(strings.ToUpper(cfg.Currency))

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	addresses, err := walletAddresses(cfg, network)
	if err != nil {
		return err
	}
	logger.Info("wallet addresses resolved", zap.Int("count", len(addresses)))

	client, err := esplora.NewClient(cfg.EsploraURL, network, metrics.NewEsploraClient(network), logger,
		esplora.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		esplora.WithRateLimit(cfg.RateLimit),
		esplora.WithRetryPolicy(esplora.RetryPolicy{
			InitialInterval: cfg.RetryInitial,
			MaxInterval:     cfg.RetryMax,
			Multiplier:      2,
			MaxAttempts:     cfg.RetryAttempts,
		}),
	)
	if err != nil {
		return fmt.Errorf("init esplora client: %w", err)
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewCandleRepository())
	if err != nil {
		return fmt.Errorf("init candle repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Warn("close candle repository", zap.Error(err))
		}
	}()

	pipelineMetrics := metrics.NewPipeline(currency)
	enricher, err := pricing.NewEnricher(repo.WithMaxDistance(cfg.CandleWindow), cfg.Exchange, currency, pipelineMetrics, logger.Named("pricing"))
	if err != nil {
		return err
	}
	builder, err := ledger.NewBuilder(ledger.Options{
		Currency: currency,
		BTCAccount: ledger.AccountName{
			Type:         "assets",
			Jurisdiction: cfg.Jurisdiction,
			Institution:  cfg.Institution,
			Asset:        string(model.BTC),
			Subaccount:   cfg.Subaccount,
		},
		FiatAccount: ledger.AccountName{
			Type:        "liabilities",
			Institution: "cash",
			Asset:       string(currency),
			Subaccount:  cfg.Subaccount,
		},
		Chronological: cfg.Chronological,
	}, logger.Named("ledger"))
	if err != nil {
		return err
	}
	assembler := ledger.NewAssembler(ledger.NewBeancountValidator(), pipelineMetrics, logger.Named("ledger"))

	svc := service.NewBeancounter(client, enricher, builder, assembler, pipelineMetrics, logger)
	document, err := svc.Run(ctx, addresses)
	if errors.Is(err, service.ErrNoTransactions) {
		logger.Info("wallet has no transactions, nothing written", zap.Int("addresses", len(addresses)))
		return nil
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output, []byte(document), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.Output, err)
	}
	logger.Info("beancount file written", zap.String("path", cfg.Output))
	return nil
}

func walletAddresses(cfg config, network model.Network) ([]model.Address, error) {
	switch {
	case cfg.ExtendedKey != "" && len(cfg.Addresses) > 0:
		return nil, errors.New("use either --address or --xpub, not both")
	case cfg.ExtendedKey != "":
		return wallet.DeriveAddresses(cfg.ExtendedKey, network, cfg.GapLimit)
	default:
		return wallet.ParseAddresses(cfg.Addresses, network)
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
