package ingest

import (
	"context"
	"time"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/carquery"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/ebay"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/fueleconomy"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/vpic"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
)

const (
	// DEFAULT_TRIM_SEARCH_LIMIT is the number of trims searched per listings run
	DEFAULT_TRIM_SEARCH_LIMIT = 50
	// DEFAULT_LISTINGS_PAGE_SIZE is the number of listings requested per query
	DEFAULT_LISTINGS_PAGE_SIZE = 50
	// DEFAULT_MPG_RETRY_BASE_DELAY is the delay before the first MPG retry, doubled on each retry
	DEFAULT_MPG_RETRY_BASE_DELAY = time.Second
)

// Config holds the ingestion pipeline tuning
type Config struct {
	// HeroMakes are the makes ingested by the catalog stage, in order
	HeroMakes []string
	// TrimSearchLimit bounds the trims searched by the listings stage
	TrimSearchLimit int
	// ListingsPageSize is the page size of every marketplace search
	ListingsPageSize int
	// MPGMaxRetries is the number of retries after the first failed MPG lookup
	MPGMaxRetries uint64
	// MPGRetryBaseDelay is the delay before the first retry
	MPGRetryBaseDelay time.Duration
}

// Pipeline executes the ingestion stages. Each stage returns the stats it
// accumulated, including when it fails part way.
//
//go:generate mockgen -source=pipeline.go -destination=../mocks/pipeline.go -package=mocks -mock_names=Pipeline=MockPipeline
type Pipeline interface {
	// RunCatalog ingests makes, sporty models and valid trims of the hero makes and enriches MPG
	RunCatalog(ctx context.Context) (domain.Stats, error)
	// RunListings fetches marketplace listings for recent trims, links them to the catalog and prices trims
	RunListings(ctx context.Context) (domain.Stats, error)
}

type pipeline struct {
	config      Config
	store       store.Store
	vpic        vpic.Client
	carQuery    carquery.Client
	fuelEconomy fueleconomy.Client
	ebay        ebay.Client
}

// NewPipeline creates a new ingestion pipeline. Zero config values take the defaults.
func NewPipeline(
	cfg Config,
	st store.Store,
	vpicClient vpic.Client,
	carQueryClient carquery.Client,
	fuelEconomyClient fueleconomy.Client,
	ebayClient ebay.Client,
) Pipeline {
	if len(cfg.HeroMakes) == 0 {
		cfg.HeroMakes = domain.DefaultHeroMakes
	}
	if cfg.TrimSearchLimit <= 0 {
		cfg.TrimSearchLimit = DEFAULT_TRIM_SEARCH_LIMIT
	}
	if cfg.ListingsPageSize <= 0 {
		cfg.ListingsPageSize = DEFAULT_LISTINGS_PAGE_SIZE
	}
	if cfg.MPGRetryBaseDelay <= 0 {
		cfg.MPGRetryBaseDelay = DEFAULT_MPG_RETRY_BASE_DELAY
	}

	return &pipeline{
		config:      cfg,
		store:       st,
		vpic:        vpicClient,
		carQuery:    carQueryClient,
		fuelEconomy: fuelEconomyClient,
		ebay:        ebayClient,
	}
}
