package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/bootstrap"
	"github.com/affordable-sports-cars/catalog-indexer/internal/config"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/scheduler"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSchedulerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "scheduler",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Scheduler")

	rt, err := bootstrap.NewRuntime(ctx, &cfg.IngestConfig)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize runtime", zap.Error(err))
	}
	defer rt.Close()

	ingestScheduler := scheduler.NewIngestScheduler(&scheduler.IngestSchedulerConfig{
		CatalogInterval:  cfg.Schedule.CatalogInterval,
		ListingsInterval: cfg.Schedule.ListingsInterval,
		RunOnStart:       cfg.Schedule.RunOnStart,
	}, rt.Runner, adapter.NewClock())

	// Start the scheduler in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := ingestScheduler.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Let a running stage finish briefly before canceling it
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := ingestScheduler.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	logger.InfoCtx(shutdownCtx, "Scheduler stopped")
}
