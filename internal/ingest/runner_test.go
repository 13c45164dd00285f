package ingest_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ingest"
	"github.com/affordable-sports-cars/catalog-indexer/internal/mocks"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

var (
	runStart = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	runEnd   = runStart.Add(90 * time.Second)
)

// testRunnerMocks contains all the mocks needed for testing the runner
type testRunnerMocks struct {
	ctrl      *gomock.Controller
	pipeline  *mocks.MockPipeline
	store     *mocks.MockStore
	publisher *mocks.MockPublisher
	lock      *mocks.MockFileLock
	clock     *mocks.MockClock
	runner    ingest.Runner
}

func setupTestRunner(t *testing.T) *testRunnerMocks {
	ctrl := gomock.NewController(t)

	tm := &testRunnerMocks{
		ctrl:      ctrl,
		pipeline:  mocks.NewMockPipeline(ctrl),
		store:     mocks.NewMockStore(ctrl),
		publisher: mocks.NewMockPublisher(ctrl),
		lock:      mocks.NewMockFileLock(ctrl),
		clock:     mocks.NewMockClock(ctrl),
	}
	tm.runner = ingest.NewRunner(tm.pipeline, tm.store, tm.publisher, tm.lock, tm.clock, adapter.NewJSON())

	return tm
}

func (tm *testRunnerMocks) expectLockAndClock() {
	tm.lock.EXPECT().TryLock().Return(true, nil)
	tm.lock.EXPECT().Unlock().Return(nil)
	gomock.InOrder(
		tm.clock.EXPECT().Now().Return(runStart),
		tm.clock.EXPECT().Now().Return(runEnd),
	)
}

func TestRunner_Run_Success(t *testing.T) {
	tm := setupTestRunner(t)
	tm.expectLockAndClock()

	stats := domain.NewStats()
	stats.MakesProcessed = 15
	stats.AddError("Failed to process make Acura: timeout")

	var runID string
	tm.store.EXPECT().CreateIngestionRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CreateIngestionRunInput) error {
			runID = input.ID
			assert.Equal(t, "catalog", input.Stage)
			assert.Equal(t, runStart, input.StartedAt)
			return nil
		})
	tm.pipeline.EXPECT().RunCatalog(gomock.Any()).Return(stats, nil)
	tm.store.EXPECT().CompleteIngestionRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CompleteIngestionRunInput) error {
			assert.Equal(t, runID, input.ID)
			assert.Equal(t, schema.IngestionRunStatusSucceeded, input.Status)
			assert.Equal(t, runEnd, input.FinishedAt)
			assert.Nil(t, input.ErrorMessage)
			assert.Contains(t, string(input.Stats), `"makesProcessed":15`)
			return nil
		})
	tm.publisher.EXPECT().PublishRunCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event *domain.RunCompletedEvent) error {
			assert.Equal(t, runID, event.RunID)
			assert.Equal(t, domain.StageCatalog, event.Stage)
			assert.Equal(t, domain.RunStatusSucceeded, event.Status)
			return nil
		})

	result, err := tm.runner.Run(context.Background(), domain.StageCatalog)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.RunID, 26)
	assert.Equal(t, runID, result.RunID)
	assert.Equal(t, domain.RunStatusSucceeded, result.Status)
	assert.Equal(t, runStart, result.StartedAt)
	assert.Equal(t, runEnd, result.FinishedAt)
	assert.Equal(t, 15, result.Stats.MakesProcessed)
	assert.Equal(t, []string{"Failed to process make Acura: timeout"}, result.Stats.Errors)
	assert.Empty(t, result.Error)
}

func TestRunner_Run_StageFailureKeepsPartialStats(t *testing.T) {
	tm := setupTestRunner(t)
	tm.expectLockAndClock()

	stats := domain.NewStats()
	stats.ListingsFetched = 12
	stageErr := errors.Join(domain.ErrTokenUnavailable, errors.New("status 401"))

	tm.store.EXPECT().CreateIngestionRun(gomock.Any(), gomock.Any()).Return(nil)
	tm.pipeline.EXPECT().RunListings(gomock.Any()).Return(stats, stageErr)
	tm.store.EXPECT().CompleteIngestionRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CompleteIngestionRunInput) error {
			assert.Equal(t, schema.IngestionRunStatusFailed, input.Status)
			require.NotNil(t, input.ErrorMessage)
			assert.Equal(t, stageErr.Error(), *input.ErrorMessage)
			return nil
		})
	tm.publisher.EXPECT().PublishRunCompleted(gomock.Any(), gomock.Any()).Return(nil)

	result, err := tm.runner.Run(context.Background(), domain.StageListings)

	assert.ErrorIs(t, err, domain.ErrTokenUnavailable)
	require.NotNil(t, result)
	assert.Equal(t, domain.RunStatusFailed, result.Status)
	assert.Equal(t, 12, result.Stats.ListingsFetched)
	assert.Equal(t, stageErr.Error(), result.Error)
}

func TestRunner_Run_BookkeepingFailuresAreTolerated(t *testing.T) {
	tm := setupTestRunner(t)
	tm.expectLockAndClock()

	tm.store.EXPECT().CreateIngestionRun(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	tm.pipeline.EXPECT().RunCatalog(gomock.Any()).Return(domain.NewStats(), nil)
	tm.store.EXPECT().CompleteIngestionRun(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	tm.publisher.EXPECT().PublishRunCompleted(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	result, err := tm.runner.Run(context.Background(), domain.StageCatalog)

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusSucceeded, result.Status)
}

func TestRunner_Run_UnknownStage(t *testing.T) {
	tm := setupTestRunner(t)

	result, err := tm.runner.Run(context.Background(), domain.Stage("prices"))

	assert.ErrorIs(t, err, domain.ErrUnknownStage)
	assert.Nil(t, result)
}

func TestRunner_Run_LockHeldByAnotherProcess(t *testing.T) {
	tm := setupTestRunner(t)
	tm.lock.EXPECT().TryLock().Return(false, nil)

	result, err := tm.runner.Run(context.Background(), domain.StageCatalog)

	assert.ErrorIs(t, err, domain.ErrRunInProgress)
	assert.Nil(t, result)
}

func TestRunner_Run_LockError(t *testing.T) {
	tm := setupTestRunner(t)
	tm.lock.EXPECT().TryLock().Return(false, errors.New("permission denied"))
	tm.lock.EXPECT().Path().Return("/var/run/ingest.lock")

	result, err := tm.runner.Run(context.Background(), domain.StageCatalog)

	assert.ErrorContains(t, err, "permission denied")
	assert.NotErrorIs(t, err, domain.ErrRunInProgress)
	assert.Nil(t, result)
}

func TestRunner_Run_AtMostOneRunInProcess(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mocks.NewMockPipeline(ctrl)
	st := mocks.NewMockStore(ctrl)
	runner := ingest.NewRunner(pipeline, st, nil, nil, adapter.NewClock(), adapter.NewJSON())

	started := make(chan struct{})
	release := make(chan struct{})
	st.EXPECT().CreateIngestionRun(gomock.Any(), gomock.Any()).Return(nil)
	st.EXPECT().CompleteIngestionRun(gomock.Any(), gomock.Any()).Return(nil)
	pipeline.EXPECT().RunCatalog(gomock.Any()).DoAndReturn(func(ctx context.Context) (domain.Stats, error) {
		close(started)
		<-release
		return domain.NewStats(), nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result, err := runner.Run(context.Background(), domain.StageCatalog)
		assert.NoError(t, err)
		assert.Equal(t, domain.RunStatusSucceeded, result.Status)
	}()

	<-started
	result, err := runner.Run(context.Background(), domain.StageListings)
	assert.ErrorIs(t, err, domain.ErrRunInProgress)
	assert.Nil(t, result)

	close(release)
	wg.Wait()
}

func TestRunner_Run_StatsMarshalFailureStillCompletes(t *testing.T) {
	ctrl := gomock.NewController(t)
	pipeline := mocks.NewMockPipeline(ctrl)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	jsonAdapter := mocks.NewMockJSON(ctrl)
	runner := ingest.NewRunner(pipeline, st, nil, nil, clock, jsonAdapter)

	gomock.InOrder(
		clock.EXPECT().Now().Return(runStart),
		clock.EXPECT().Now().Return(runEnd),
	)
	st.EXPECT().CreateIngestionRun(gomock.Any(), gomock.Any()).Return(nil)
	pipeline.EXPECT().RunCatalog(gomock.Any()).Return(domain.NewStats(), nil)
	jsonAdapter.EXPECT().Marshal(gomock.Any()).Return(nil, errors.New("unsupported value"))
	st.EXPECT().CompleteIngestionRun(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input store.CompleteIngestionRunInput) error {
			assert.Nil(t, input.Stats)
			assert.Equal(t, schema.IngestionRunStatusSucceeded, input.Status)
			return nil
		})

	result, err := runner.Run(context.Background(), domain.StageCatalog)

	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusSucceeded, result.Status)
}
