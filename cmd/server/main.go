package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	httpAdapter "github.com/iho/gowallet/internal/adapter/http"
	"github.com/iho/gowallet/internal/adapter/http/handler"
	"github.com/iho/gowallet/internal/adapter/repository"
	fileRepo "github.com/iho/gowallet/internal/adapter/repository/file"
	redisRepo "github.com/iho/gowallet/internal/adapter/repository/redis"
	"github.com/iho/gowallet/internal/adapter/repository/retry"
	sqliteRepo "github.com/iho/gowallet/internal/adapter/repository/sqlite"
	"github.com/iho/gowallet/internal/infrastructure/config"
	"github.com/iho/gowallet/internal/infrastructure/logger"
	"github.com/iho/gowallet/internal/infrastructure/metrics"
	"github.com/iho/gowallet/internal/infrastructure/redis"
	"github.com/iho/gowallet/internal/infrastructure/sqlite"
	"github.com/iho/gowallet/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Logger = appLogger
	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))

	ctx := context.Background()

	// Open the snapshot store
	store, cleanup, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		appLogger.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to open snapshot store")
	}
	defer cleanup()
	appLogger.Info().Str("backend", cfg.StorageBackend).Msg("snapshot store ready")

	// Initialize metrics
	m := metrics.New()

	// Initialize the ledger
	ledger := usecase.NewLedgerUseCase(
		ctx,
		retry.NewStore(store, appLogger),
		repository.NewULIDGenerator(),
		appLogger,
		m,
		defaultBalance(cfg.DefaultBalance, appLogger),
	)

	// Initialize handlers
	walletHandler := handler.NewWalletHandler(ledger)
	expenseHandler := handler.NewExpenseHandler(ledger)
	reportHandler := handler.NewReportHandler(ledger)
	healthHandler := handler.NewHealthHandler(store)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		WalletHandler:  walletHandler,
		ExpenseHandler: expenseHandler,
		ReportHandler:  reportHandler,
		HealthHandler:  healthHandler,
		Logger:         appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}

// newSnapshotStore opens the snapshot store selected by STORAGE_BACKEND and
// returns it together with its cleanup function.
func newSnapshotStore(ctx context.Context, cfg *config.Config) (usecase.SnapshotStore, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendFile, "":
		store, err := fileRepo.NewStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil

	case config.BackendSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return sqliteRepo.NewStore(db), func() { db.Close() }, nil

	case config.BackendRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return redisRepo.NewStore(client), func() { client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

// defaultBalance parses the configured starting balance, falling back to the
// stock 5000 when the value does not parse.
func defaultBalance(raw string, logger zerolog.Logger) decimal.Decimal {
	balance, err := decimal.NewFromString(raw)
	if err != nil {
		logger.Warn().Str("value", raw).Msg("invalid DEFAULT_BALANCE, using 5000")
		return decimal.NewFromInt(usecase.DefaultBalance)
	}
	return balance
}
