package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/messaging"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

// Runner runs ingestion stages, at most one at a time across every process sharing the lock file
//
//go:generate mockgen -source=runner.go -destination=../mocks/runner.go -package=mocks -mock_names=Runner=MockRunner
type Runner interface {
	// Run executes stage and returns its result, also when the stage fails.
	// It returns ErrUnknownStage or ErrRunInProgress without a result when the run cannot start.
	Run(ctx context.Context, stage domain.Stage) (*domain.RunResult, error)
}

type runner struct {
	mu        sync.Mutex
	pipeline  Pipeline
	store     store.Store
	publisher messaging.Publisher
	lock      adapter.FileLock
	clock     adapter.Clock
	json      adapter.JSON
}

// NewRunner creates a new runner. publisher and lock may be nil.
func NewRunner(
	pipeline Pipeline,
	st store.Store,
	publisher messaging.Publisher,
	lock adapter.FileLock,
	clock adapter.Clock,
	jsonAdapter adapter.JSON,
) Runner {
	return &runner{
		pipeline:  pipeline,
		store:     st,
		publisher: publisher,
		lock:      lock,
		clock:     clock,
		json:      jsonAdapter,
	}
}

// Run executes one ingestion stage
func (r *runner) Run(ctx context.Context, stage domain.Stage) (*domain.RunResult, error) {
	var execute func(context.Context) (domain.Stats, error)
	switch stage {
	case domain.StageCatalog:
		execute = r.pipeline.RunCatalog
	case domain.StageListings:
		execute = r.pipeline.RunListings
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStage, stage)
	}

	if !r.mu.TryLock() {
		return nil, domain.ErrRunInProgress
	}
	defer r.mu.Unlock()

	if r.lock != nil {
		locked, err := r.lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire run lock %s: %w", r.lock.Path(), err)
		}
		if !locked {
			return nil, domain.ErrRunInProgress
		}
		defer func() {
			if err := r.lock.Unlock(); err != nil {
				logger.WarnCtx(ctx, "Failed to release run lock", zap.String("path", r.lock.Path()), zap.Error(err))
			}
		}()
	}

	startedAt := r.clock.Now()
	result := &domain.RunResult{
		RunID:     ulid.MustNewDefault(startedAt).String(),
		Stage:     stage,
		Status:    domain.RunStatusRunning,
		StartedAt: startedAt,
		Stats:     domain.NewStats(),
	}

	logger.InfoCtx(ctx, "Starting ingestion run", zap.String("runID", result.RunID), zap.String("stage", string(stage)))

	// the audit trail is best-effort and never blocks ingestion
	if err := r.store.CreateIngestionRun(ctx, store.CreateIngestionRunInput{
		ID:        result.RunID,
		Stage:     string(stage),
		StartedAt: startedAt,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record ingestion run", zap.String("runID", result.RunID), zap.Error(err))
	}

	stats, runErr := execute(ctx)
	result.Stats.Merge(stats)
	result.FinishedAt = r.clock.Now()
	if runErr != nil {
		result.Status = domain.RunStatusFailed
		result.Error = runErr.Error()
		logger.ErrorCtx(ctx, fmt.Errorf("ingestion run %s failed: %w", result.RunID, runErr), zap.String("stage", string(stage)))
	} else {
		result.Status = domain.RunStatusSucceeded
		logger.InfoCtx(ctx, "Completed ingestion run",
			zap.String("runID", result.RunID),
			zap.String("stage", string(stage)),
			zap.Duration("duration", result.FinishedAt.Sub(startedAt)),
			zap.Int("errors", len(result.Stats.Errors)),
		)
	}

	r.complete(context.WithoutCancel(ctx), result)

	return result, runErr
}

// complete records the outcome of a run and announces it
func (r *runner) complete(ctx context.Context, result *domain.RunResult) {
	input := store.CompleteIngestionRunInput{
		ID:         result.RunID,
		Status:     schema.IngestionRunStatus(result.Status),
		FinishedAt: result.FinishedAt,
	}
	if result.Error != "" {
		errMsg := result.Error
		input.ErrorMessage = &errMsg
	}

	stats, err := r.json.Marshal(result.Stats)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal run stats", zap.String("runID", result.RunID), zap.Error(err))
	} else {
		input.Stats = stats
	}

	if err := r.store.CompleteIngestionRun(ctx, input); err != nil {
		logger.WarnCtx(ctx, "Failed to complete ingestion run record", zap.String("runID", result.RunID), zap.Error(err))
	}

	if r.publisher == nil {
		return
	}
	if err := r.publisher.PublishRunCompleted(ctx, domain.NewRunCompletedEvent(result)); err != nil {
		logger.WarnCtx(ctx, "Failed to publish run completed event", zap.String("runID", result.RunID), zap.Error(err))
	}
}
