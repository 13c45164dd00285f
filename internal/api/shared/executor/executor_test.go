package executor_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	apierrors "github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/errors"
	"github.com/affordable-sports-cars/catalog-indexer/internal/api/shared/executor"
	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/mocks"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

// testExecutorMocks contains all the mocks needed for testing the executor
type testExecutorMocks struct {
	ctrl     *gomock.Controller
	store    *mocks.MockStore
	runner   *mocks.MockRunner
	executor executor.Executor
}

func setupTestExecutor(t *testing.T) *testExecutorMocks {
	ctrl := gomock.NewController(t)
	tm := &testExecutorMocks{
		ctrl:   ctrl,
		store:  mocks.NewMockStore(ctrl),
		runner: mocks.NewMockRunner(ctrl),
	}
	tm.executor = executor.NewExecutor(tm.store, tm.runner)
	return tm
}

func strPtr(s string) *string { return &s }

func TestTriggerIngestion_DelegatesToRunner(t *testing.T) {
	tm := setupTestExecutor(t)

	expected := &domain.RunResult{RunID: "r1", Stage: domain.StageListings}
	tm.runner.EXPECT().Run(gomock.Any(), domain.StageListings).Return(expected, nil)

	result, err := tm.executor.TriggerIngestion(context.Background(), domain.StageListings)

	require.NoError(t, err)
	assert.Same(t, expected, result)
}

func TestTriggerIngestion_PassesErrorsThrough(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.runner.EXPECT().Run(gomock.Any(), domain.StageCatalog).Return(nil, domain.ErrRunInProgress)

	result, err := tm.executor.TriggerIngestion(context.Background(), domain.StageCatalog)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrRunInProgress)
}

func TestListIngestionRuns(t *testing.T) {
	tm := setupTestExecutor(t)

	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	finished := started.Add(time.Minute)
	tm.store.EXPECT().ListIngestionRuns(gomock.Any(), 5, 0).Return([]schema.IngestionRun{
		{
			ID:           "01J1",
			Stage:        "listings",
			Status:       schema.IngestionRunStatusFailed,
			StartedAt:    started,
			FinishedAt:   &finished,
			Stats:        datatypes.JSON(`{"listingsFetched":3}`),
			ErrorMessage: strPtr("marketplace access token unavailable"),
		},
		{
			ID:        "01J0",
			Stage:     "catalog",
			Status:    schema.IngestionRunStatusRunning,
			StartedAt: started.Add(-time.Hour),
		},
	}, int64(2), nil)

	resp, err := tm.executor.ListIngestionRuns(context.Background(), 5, 0)

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Total)
	assert.Equal(t, 5, resp.Limit)
	require.Len(t, resp.Runs, 2)
	assert.Equal(t, "failed", resp.Runs[0].Status)
	assert.JSONEq(t, `{"listingsFetched":3}`, string(resp.Runs[0].Stats))
	assert.Equal(t, "marketplace access token unavailable", *resp.Runs[0].ErrorMessage)
	assert.Nil(t, resp.Runs[1].FinishedAt)
	assert.Nil(t, resp.Runs[1].Stats)
}

func TestListIngestionRuns_DefaultLimit(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.store.EXPECT().ListIngestionRuns(gomock.Any(), 20, 0).Return(nil, int64(0), nil)

	resp, err := tm.executor.ListIngestionRuns(context.Background(), 0, 0)

	require.NoError(t, err)
	assert.Empty(t, resp.Runs)
	assert.NotNil(t, resp.Runs)
}

func TestListIngestionRuns_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.store.EXPECT().ListIngestionRuns(gomock.Any(), 10, 0).Return(nil, int64(0), errors.New("connection refused"))

	_, err := tm.executor.ListIngestionRuns(context.Background(), 10, 0)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
	assert.Contains(t, apiErr.Message, "connection refused")
}

func TestListCars(t *testing.T) {
	tm := setupTestExecutor(t)

	filter := store.CarsFilter{Make: "Mazda", MaxPrice: 30000, Page: 1, PerPage: 20}
	tm.store.EXPECT().ListCars(gomock.Any(), filter).Return(&store.CarsPage{
		Cars:       []store.CarCard{{TrimID: 1, MakeName: "Mazda", ModelName: "MX-5 Miata"}},
		Total:      1,
		TotalPages: 1,
		Page:       1,
		PerPage:    20,
	}, nil)

	resp, err := tm.executor.ListCars(context.Background(), filter)

	require.NoError(t, err)
	require.Len(t, resp.Cars, 1)
	assert.Equal(t, "msrp", resp.PricedBy)
	assert.Equal(t, 1, resp.TotalPages)
}

func TestListCars_ListingMode(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.store.EXPECT().ListCars(gomock.Any(), gomock.Any()).Return(&store.CarsPage{FromListings: true}, nil)

	resp, err := tm.executor.ListCars(context.Background(), store.CarsFilter{})

	require.NoError(t, err)
	assert.Equal(t, "listings", resp.PricedBy)
	assert.NotNil(t, resp.Cars)
}

func TestListCars_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.store.EXPECT().ListCars(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := tm.executor.ListCars(context.Background(), store.CarsFilter{})

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
}

func TestGetCar(t *testing.T) {
	tm := setupTestExecutor(t)

	body := "Convertible"
	posted := time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC)
	trimID := uint64(42)
	tm.store.EXPECT().GetCar(gomock.Any(), trimID, 10).Return(&store.CarDetail{
		Trim: schema.Trim{
			ID:    trimID,
			Year:  2016,
			Name:  "Club",
			Body:  &body,
			Model: &schema.Model{Name: "MX-5 Miata", Make: &schema.Make{Name: "Mazda"}},
		},
		Listings: []schema.Listing{
			{
				Source:       "ebay",
				ID:           "v1|1|0",
				Title:        "2016 Mazda MX-5 Miata Club",
				Price:        18500,
				TrimID:       &trimID,
				Confidence:   0.95,
				PostedAt:     &posted,
				MatchReasons: datatypes.JSON(`["Year match: 2016","Make match: mazda"]`),
			},
			{
				Source: "ebay",
				ID:     "v1|2|0",
				Title:  "Mazda MX-5",
				Price:  19900,
			},
		},
	}, nil)

	resp, err := tm.executor.GetCar(context.Background(), trimID)

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Mazda", resp.MakeName)
	assert.Equal(t, "MX-5 Miata", resp.ModelName)
	assert.Equal(t, "Convertible", *resp.Body)
	require.Len(t, resp.Listings, 2)
	assert.Equal(t, []string{"Year match: 2016", "Make match: mazda"}, resp.Listings[0].MatchReasons)
	assert.Equal(t, []string{}, resp.Listings[1].MatchReasons)
	assert.Equal(t, 18500, resp.Listings[0].Price)
}

func TestGetCar_NotFound(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.store.EXPECT().GetCar(gomock.Any(), uint64(5), 10).Return(nil, nil)

	resp, err := tm.executor.GetCar(context.Background(), 5)

	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetCar_StoreError(t *testing.T) {
	tm := setupTestExecutor(t)

	tm.store.EXPECT().GetCar(gomock.Any(), uint64(5), 10).Return(nil, errors.New("boom"))

	_, err := tm.executor.GetCar(context.Background(), 5)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeDatabaseError, apiErr.Code)
}
