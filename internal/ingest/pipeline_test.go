package ingest_test

import (
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/affordable-sports-cars/catalog-indexer/internal/ingest"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testPipelineMocks contains all the mocks needed for testing the pipeline
type testPipelineMocks struct {
	ctrl        *gomock.Controller
	store       *mocks.MockStore
	vpic        *mocks.MockVPICClient
	carQuery    *mocks.MockCarQueryClient
	fuelEconomy *mocks.MockFuelEconomyClient
	ebay        *mocks.MockEbayClient
	pipeline    ingest.Pipeline
}

// setupTestPipeline creates all the mocks and a pipeline ingesting heroMakes
func setupTestPipeline(t *testing.T, heroMakes ...string) *testPipelineMocks {
	ctrl := gomock.NewController(t)

	tm := &testPipelineMocks{
		ctrl:        ctrl,
		store:       mocks.NewMockStore(ctrl),
		vpic:        mocks.NewMockVPICClient(ctrl),
		carQuery:    mocks.NewMockCarQueryClient(ctrl),
		fuelEconomy: mocks.NewMockFuelEconomyClient(ctrl),
		ebay:        mocks.NewMockEbayClient(ctrl),
	}

	tm.pipeline = ingest.NewPipeline(
		ingest.Config{
			HeroMakes:         heroMakes,
			MPGMaxRetries:     2,
			MPGRetryBaseDelay: time.Millisecond,
		},
		tm.store,
		tm.vpic,
		tm.carQuery,
		tm.fuelEconomy,
		tm.ebay,
	)

	return tm
}
