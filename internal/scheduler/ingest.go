package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ingest"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
)

// IngestSchedulerConfig holds configuration for the ingestion scheduler
type IngestSchedulerConfig struct {
	CatalogInterval  time.Duration // Time between catalog runs
	ListingsInterval time.Duration // Time between listings runs
	RunOnStart       bool          // Run both stages immediately on start
}

// ingestScheduler runs the ingestion stages on independent intervals.
// Stages run sequentially in the scheduler goroutine, catalog first when both are due.
type ingestScheduler struct {
	config    *IngestSchedulerConfig
	runner    ingest.Runner
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewIngestScheduler creates a new ingestion scheduler
func NewIngestScheduler(config *IngestSchedulerConfig, runner ingest.Runner, clock adapter.Clock) Scheduler {
	return &ingestScheduler{
		config:    config,
		runner:    runner,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the scheduler's name
func (s *ingestScheduler) Name() string {
	return "ingest-scheduler"
}

// Start begins the scheduler's main loop
func (s *ingestScheduler) Start(ctx context.Context) error {
	if s.config.CatalogInterval <= 0 || s.config.ListingsInterval <= 0 {
		return fmt.Errorf("scheduler intervals must be positive")
	}
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("scheduler already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting ingest scheduler",
		zap.Duration("catalog_interval", s.config.CatalogInterval),
		zap.Duration("listings_interval", s.config.ListingsInterval),
		zap.Bool("run_on_start", s.config.RunOnStart),
	)

	now := s.clock.Now()
	nextCatalog := now.Add(s.config.CatalogInterval)
	nextListings := now.Add(s.config.ListingsInterval)
	if s.config.RunOnStart {
		nextCatalog, nextListings = now, now
	}

	for {
		if !s.clock.Now().Before(nextCatalog) {
			s.runStage(ctx, domain.StageCatalog)
			nextCatalog = s.clock.Now().Add(s.config.CatalogInterval)
		}
		if s.stopped(ctx) {
			return nil
		}

		if !s.clock.Now().Before(nextListings) {
			s.runStage(ctx, domain.StageListings)
			nextListings = s.clock.Now().Add(s.config.ListingsInterval)
		}

		next := nextCatalog
		if nextListings.Before(next) {
			next = nextListings
		}
		wait := next.Sub(s.clock.Now())
		if wait < 0 {
			wait = 0
		}

		if !s.sleep(ctx, wait) {
			logger.InfoCtx(ctx, "Ingest scheduler stopping", zap.Error(ctx.Err()))
			return nil
		}
	}
}

// Stop gracefully stops the scheduler with timeout support
func (s *ingestScheduler) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping ingest scheduler")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Ingest scheduler stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Ingest scheduler stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runStage runs one stage and logs its outcome. Failures never stop the loop.
func (s *ingestScheduler) runStage(ctx context.Context, stage domain.Stage) {
	result, err := s.runner.Run(ctx, stage)
	switch {
	case errors.Is(err, domain.ErrRunInProgress):
		logger.InfoCtx(ctx, "Skipping scheduled run, another run is in progress", zap.String("stage", string(stage)))
	case result == nil && err != nil:
		logger.ErrorCtx(ctx, fmt.Errorf("scheduled %s run could not start: %w", stage, err))
	case result != nil:
		logger.InfoCtx(ctx, "Scheduled run finished",
			zap.String("runID", result.RunID),
			zap.String("stage", string(stage)),
			zap.String("status", string(result.Status)),
			zap.Int("errors", len(result.Stats.Errors)),
		)
	}
}

// stopped reports whether the context was canceled or a stop was requested
func (s *ingestScheduler) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-s.stopChan:
		return true
	default:
		return false
	}
}

// sleep sleeps for the given duration but can be interrupted by context cancellation.
// Returns true if sleep completed normally, false if interrupted.
func (s *ingestScheduler) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}
