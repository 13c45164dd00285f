package bootstrap

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/affordable-sports-cars/catalog-indexer/internal/adapter"
	"github.com/affordable-sports-cars/catalog-indexer/internal/config"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ingest"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/messaging"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/jetstream"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/carquery"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/ebay"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/fueleconomy"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/vpic"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ratelimit"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
)

// Runtime holds everything a program needs to run ingestion stages
type Runtime struct {
	Store  store.Store
	Runner ingest.Runner

	proxy     ratelimit.Proxy
	publisher messaging.Publisher
}

// NewRuntime connects to the database and wires providers, pipeline and runner from cfg
func NewRuntime(ctx context.Context, cfg *config.IngestConfig) (*Runtime, error) {
	gormLogLevel := gormlogger.Warn
	if cfg.Debug {
		gormLogLevel = gormlogger.Info
	}
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
	)
	dataStore := store.NewPGStore(db)

	proxy, err := ratelimit.NewProxy(ratelimit.Config{Delays: ProviderDelays(cfg.Vendors)})
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit proxy: %w", err)
	}

	jsonAdapter := adapter.NewJSON()
	httpClient := adapter.NewHTTPClient(cfg.Vendors.HTTPTimeout)

	pipeline := ingest.NewPipeline(
		ingest.Config{
			HeroMakes:         cfg.Pipeline.HeroMakes,
			TrimSearchLimit:   cfg.Pipeline.TrimSearchLimit,
			ListingsPageSize:  cfg.Pipeline.ListingsPageSize,
			MPGMaxRetries:     cfg.Pipeline.MPGMaxRetries,
			MPGRetryBaseDelay: cfg.Pipeline.MPGRetryBaseDelay,
		},
		dataStore,
		vpic.NewClient(httpClient, proxy, cfg.Vendors.VPIC.APIURL, jsonAdapter),
		carquery.NewClient(httpClient, proxy, cfg.Vendors.CarQuery.APIURL, jsonAdapter),
		fueleconomy.NewClient(httpClient, proxy, cfg.Vendors.FuelEconomy.APIURL, jsonAdapter),
		ebay.NewClient(httpClient, proxy, ebay.Config{
			APIURL:        cfg.Vendors.Ebay.APIURL,
			OAuthURL:      cfg.Vendors.Ebay.OAuthURL,
			Scope:         cfg.Vendors.Ebay.Scope,
			MarketplaceID: cfg.Vendors.Ebay.MarketplaceID,
			AppID:         cfg.Vendors.Ebay.AppID,
			AppSecret:     cfg.Vendors.Ebay.AppSecret,
		}, jsonAdapter),
	)

	publisher, err := NewPublisher(cfg.NATS, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		_ = proxy.Close()
		return nil, err
	}

	lock, err := adapter.NewFileLock(cfg.Pipeline.LockFile)
	if err != nil {
		_ = proxy.Close()
		if publisher != nil {
			publisher.Close()
		}
		return nil, fmt.Errorf("failed to prepare run lock: %w", err)
	}

	return &Runtime{
		Store:     dataStore,
		Runner:    ingest.NewRunner(pipeline, dataStore, publisher, lock, adapter.NewClock(), jsonAdapter),
		proxy:     proxy,
		publisher: publisher,
	}, nil
}

// Close drains the provider queue and closes the event publisher
func (r *Runtime) Close() {
	if err := r.proxy.Close(); err != nil {
		logger.Warn("Failed to close rate limit proxy", zap.Error(err))
	}
	if r.publisher != nil {
		r.publisher.Close()
	}
}

// ProviderDelays returns the minimum spacing between two calls of each provider
func ProviderDelays(cfg config.VendorsConfig) map[string]time.Duration {
	return map[string]time.Duration{
		vpic.PROVIDER_NAME:        cfg.VPIC.Delay,
		carquery.PROVIDER_NAME:    cfg.CarQuery.Delay,
		fueleconomy.PROVIDER_NAME: cfg.FuelEconomy.Delay,
		ebay.PROVIDER_NAME:        cfg.Ebay.Delay,
	}
}

// NewPublisher connects the run event publisher, or returns nil when NATS is not configured
func NewPublisher(cfg config.NATSConfig, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (messaging.Publisher, error) {
	if cfg.URL == "" {
		logger.Info("NATS URL not configured, run events will not be published")
		return nil, nil
	}

	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.URL,
		SubjectPrefix:  cfg.SubjectPrefix,
		MaxReconnects:  cfg.MaxReconnects,
		ReconnectWait:  cfg.ReconnectWait,
		ConnectionName: cfg.ConnectionName,
	}, natsJS, jsonAdapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create run event publisher: %w", err)
	}

	logger.Info("Publishing run events to NATS", zap.String("url", cfg.URL))
	return publisher, nil
}
