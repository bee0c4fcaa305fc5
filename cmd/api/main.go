package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastbound-gateway/config"
	"fastbound-gateway/internal/httpserver"
	"fastbound-gateway/internal/middleware"
	transferHTTP "fastbound-gateway/internal/transfer/delivery/http"
	repoBolt "fastbound-gateway/internal/transfer/repository/bolt"
	"fastbound-gateway/internal/transfer/usecase"
	"fastbound-gateway/pkg/fastbound"
	"fastbound-gateway/pkg/log"
)

// @title       FastBound Transfer Gateway API
// @description Retry-safe submission of firearms-transfer records to the FastBound cloud API.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FastBound transfer gateway...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "FastBound account: %s", cfg.FastBound.Account)

	if !fastbound.APIKeyLooksValid(cfg.FastBound.APIKey) {
		logger.Warn(ctx, "FastBound API key doesn't look right - did you copy only part of the key?")
	}

	// 3. FastBound client
	fbClient, err := fastbound.New(cfg.FastBound.Account, cfg.FastBound.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to create FastBound client: ", err)
		return
	}
	if cfg.FastBound.BaseURL != "" {
		fbClient.WithBaseURL(cfg.FastBound.BaseURL)
	}
	fbClient.WithHTTPClient(&http.Client{Timeout: 30 * time.Second})

	// 4. Submission journal
	journal, err := repoBolt.New(cfg.Journal.Path, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open submission journal: ", err)
		return
	}
	defer journal.Close()

	// 5. Transfer domain
	transferUC := usecase.New(logger, fbClient, journal, usecase.Config{
		RetryAttempts:   cfg.Submit.RetryAttempts,
		RetryDelay:      cfg.Submit.RetryDelay,
		MaxTotalTimeout: cfg.Submit.MaxTotalTimeout,
	})
	transferHandler := transferHTTP.New(logger, transferUC)

	// 6. HTTP Server
	mw := middleware.New(logger, cfg.API.Key, cfg.API.RateLimitPerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		TransferHandler: transferHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
