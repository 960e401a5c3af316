package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dinobank/dinoframe-bff-go/internal/config"
	"github.com/dinobank/dinoframe-bff-go/internal/domain"
	"github.com/dinobank/dinoframe-bff-go/internal/handler"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/cache"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/gateway"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/ledger"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/observability"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/resilience"
	"github.com/dinobank/dinoframe-bff-go/internal/infra/sessionfile"
	"github.com/dinobank/dinoframe-bff-go/internal/service"

	"go.uber.org/zap"
)

func main() {
	// --- Load .env file (for local development) ---
	_ = config.LoadDotEnv(".env")

	// --- Config ---
	cfg := config.Load()

	// --- Logger ---
	logger := observability.NewLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("configuration loaded",
		zap.Int("port", cfg.Port),
		zap.String("log_level", cfg.LogLevel),
		zap.String("ledger_api_url", cfg.LedgerAPIURL),
		zap.Duration("http_timeout", cfg.HTTPTimeout),
		zap.Int("max_concurrency", cfg.MaxConcurrency),
		zap.String("session_file", cfg.SessionFile),
		zap.Duration("summary_cache_ttl", cfg.SummaryCacheTTL),
	)

	// --- Tracing ---
	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "dinoframe-bff")
	if err != nil {
		logger.Fatal("failed to init tracer", zap.Error(err))
	}
	defer shutdown(context.Background())

	// --- Metrics ---
	metrics := observability.NewMetrics()

	// --- Session store ---
	sessions, err := sessionfile.New(cfg.SessionFile, logger)
	if err != nil {
		logger.Fatal("failed to open session store", zap.Error(err))
	}

	// --- Gateway & ledger client ---
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}
	cb := resilience.NewCircuitBreaker("ledger-api")
	bulkhead := resilience.NewBulkhead(cfg.MaxConcurrency)
	gw := gateway.New(httpClient, cfg.LedgerAPIURL, cb, bulkhead, metrics, logger)
	ledgerClient := ledger.NewClient(gw, logger)

	// --- Cache ---
	summaryCache := cache.New[*domain.Account](cfg.SummaryCacheTTL)

	// --- Services ---
	accountSvc := service.NewAccountService(ledgerClient, ledgerClient, summaryCache, metrics, logger)
	svcs := handler.Services{
		Auth:     service.NewAuthService(ledgerClient, sessions, logger),
		Accounts: accountSvc,
		Transfer: service.NewTransferService(ledgerClient, accountSvc, metrics, logger),
		Credit:   service.NewCreditService(ledgerClient, metrics, logger),
		Admin:    service.NewAdminService(ledgerClient, logger),
		Sessions: sessions,
		Metrics:  metrics,
	}

	// --- Router ---
	router := handler.NewRouter(svcs, cfg.AllowedOrigin, logger)

	// --- Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// --- Graceful shutdown ---
	go func() {
		logger.Info("server starting", zap.Int("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced shutdown", zap.Error(err))
	}

	logger.Info("server stopped")
}
