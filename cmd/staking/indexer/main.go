package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/goodnatureofminers/staking-indexer/internal/metrics"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/ergo"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/model"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/repository/clickhouse"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/repository/postgres"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/service/indexer"
	"github.com/goodnatureofminers/staking-indexer/internal/staking/service/maintenance"
	"github.com/goodnatureofminers/staking-indexer/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	ledgerPostgres   = "postgres"
	ledgerClickhouse = "clickhouse"
)

type config struct {
	PostgresDSN   string        `long:"postgres-dsn" env:"STAKING_POSTGRES_DSN" description:"PostgreSQL DSN of the staking database" required:"true"`
	Ledger        string        `long:"ledger" env:"STAKING_LEDGER" description:"store holding the boxes ledger" choice:"postgres" choice:"clickhouse" default:"postgres"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"STAKING_CLICKHOUSE_DSN" description:"ClickHouse DSN, used with --ledger=clickhouse"`
	Juxtapose     string        `short:"J" long:"juxtapose" env:"STAKING_JUXTAPOSE" description:"boxes ledger table" default:"boxes"`
	Network       model.Network `long:"network" env:"STAKING_NETWORK" description:"ergo network" choice:"mainnet" choice:"testnet" default:"mainnet"`

	NodeURL        string        `long:"node-url" env:"STAKING_NODE_URL" description:"Ergo node REST URL" default:"http://127.0.0.1:9053"`
	NodeAPIKey     string        `long:"node-api-key" env:"STAKING_NODE_API_KEY" description:"Ergo node api_key header"`
	HTTPTimeout    time.Duration `long:"http-timeout" env:"STAKING_HTTP_TIMEOUT" description:"HTTP timeout for node requests" default:"30s"`
	NodeRPS        int           `long:"node-rps" env:"STAKING_NODE_RPS" description:"max node requests per second, 0 for unlimited" default:"0"`
	NodeRetries    uint64        `long:"node-retries" env:"STAKING_NODE_RETRIES" description:"extra attempts per failed node request, 0 drops the box on the first failure" default:"0"`
	NodeRetryDelay time.Duration `long:"node-retry-delay" env:"STAKING_NODE_RETRY_DELAY" description:"delay between node request attempts" default:"1s"`

	FetchConcurrency int           `long:"fetch-concurrency" env:"STAKING_FETCH_CONCURRENCY" description:"concurrent node lookups per batch" default:"20"`
	BatchSize        int           `long:"batch-size" env:"STAKING_BATCH_SIZE" description:"ledger boxes per batch" default:"5000"`
	BatchBackoff     time.Duration `long:"batch-backoff" env:"STAKING_BATCH_BACKOFF" description:"pause after a failed batch or iteration" default:"1s"`
	PollInterval     time.Duration `long:"poll-interval" env:"STAKING_POLL_INTERVAL" description:"node height poll interval while waiting for a block" default:"1s"`
	SettleDelay      time.Duration `long:"settle-delay" env:"STAKING_SETTLE_DELAY" description:"pause before reading the ledger each cycle" default:"2s"`

	Truncate  bool   `short:"T" long:"truncate" env:"STAKING_TRUNCATE" description:"empty the staking tables before starting"`
	Height    int64  `short:"H" long:"height" env:"STAKING_HEIGHT" description:"start height, -1 resumes from the audit log" default:"-1"`
	EndHeight int64  `short:"E" long:"end-height" env:"STAKING_END_HEIGHT" description:"stop once the watermark passes this height" default:"10000000000"`
	BoxID     string `long:"box-id" env:"STAKING_BOX_ID" description:"process a single ledger box and exit"`

	MetricsAddr string `long:"metrics-addr" env:"STAKING_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	TasksAddr   string `long:"tasks-addr" env:"STAKING_TASKS_ADDR" description:"address for the tasks API, empty disables it"`
	LogJSON     bool   `long:"log-json" env:"STAKING_LOG_JSON" description:"production JSON logging"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, "failed to parse flags:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if cfg.Ledger == ledgerClickhouse && cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required with the clickhouse ledger")
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("staking indexer failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	db, err := postgres.Open(ctx, cfg.PostgresDSN, logger)
	if err != nil {
		return fmt.Errorf("init postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer func() {
			_ = sqlDB.Close()
		}()
	}

	repo, err := postgres.NewRepository(db, metrics.NewRepository(ledgerPostgres))
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	ledger, closeLedger, err := newLedger(ctx, cfg, db)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}
	defer closeLedger()

	node, err := ergo.NewClient(ergo.ClientConfig{
		BaseURL:    cfg.NodeURL,
		APIKey:     cfg.NodeAPIKey,
		Timeout:    cfg.HTTPTimeout,
		RPS:        cfg.NodeRPS,
		Retries:    cfg.NodeRetries,
		RetryDelay: cfg.NodeRetryDelay,
	}, metrics.NewNodeClient(cfg.Network))
	if err != nil {
		return fmt.Errorf("init node client: %w", err)
	}
	encoder, err := ergo.NewAddressEncoder(cfg.Network)
	if err != nil {
		return fmt.Errorf("init address encoder: %w", err)
	}

	writer := &sync.Mutex{}
	svc, err := indexer.NewService(
		ledger,
		repo,
		node,
		encoder,
		metrics.NewStakingIndexer(cfg.Network),
		writer,
		indexer.Config{
			Network:          cfg.Network,
			BatchSize:        cfg.BatchSize,
			FetchConcurrency: cfg.FetchConcurrency,
			BatchBackoff:     cfg.BatchBackoff,
			PollInterval:     cfg.PollInterval,
			SettleDelay:      cfg.SettleDelay,
			StartHeight:      cfg.Height,
			EndHeight:        cfg.EndHeight,
			BoxID:            cfg.BoxID,
			Truncate:         cfg.Truncate,
		},
		logger.Named("indexer"),
	)
	if err != nil {
		return err
	}

	if cfg.TasksAddr != "" {
		jobs, err := maintenance.NewJobs(repo, svc, writer, metrics.NewMaintenance(), logger.Named("maintenance"))
		if err != nil {
			return fmt.Errorf("init maintenance jobs: %w", err)
		}
		defer jobs.Close()
		go func() {
			_ = jobs.Run(ctx)
		}()
		startTasksServer(ctx, cfg.TasksAddr, transport.NewTasksHandler(jobs, logger.Named("tasks")), logger)
	}

	return svc.Run(ctx)
}

func newLedger(ctx context.Context, cfg config, db *gorm.DB) (indexer.Ledger, func(), error) {
	switch cfg.Ledger {
	case ledgerClickhouse:
		ledger, err := clickhouse.NewRepository(ctx, cfg.ClickhouseDSN, cfg.Juxtapose, metrics.NewRepository(ledgerClickhouse))
		if err != nil {
			return nil, nil, err
		}
		return ledger, func() { _ = ledger.Close() }, nil
	default:
		ledger, err := postgres.NewLedger(ctx, db, cfg.Juxtapose, metrics.NewRepository(ledgerPostgres))
		if err != nil {
			return nil, nil, err
		}
		return ledger, func() {}, nil
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	startServer(ctx, "metrics", addr, mux, logger)
}

func startTasksServer(ctx context.Context, addr string, handler *transport.TasksHandler, logger *zap.Logger) {
	startServer(ctx, "tasks", addr, handler.Handler(), logger)
}

func startServer(ctx context.Context, name, addr string, handler http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting "+name+" server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(name+" server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown "+name+" server", zap.Error(err))
		}
	}()
}
