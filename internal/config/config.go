package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration.
// Publishing run events is disabled when URL is empty.
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
	IdleTimeout  int    `mapstructure:"idle_timeout"`
}

// VPICConfig holds the NHTSA vPIC taxonomy API configuration
type VPICConfig struct {
	APIURL string        `mapstructure:"api_url"`
	Delay  time.Duration `mapstructure:"delay"`
}

// CarQueryConfig holds the CarQuery trim/spec API configuration
type CarQueryConfig struct {
	APIURL string        `mapstructure:"api_url"`
	Delay  time.Duration `mapstructure:"delay"`
}

// FuelEconomyConfig holds the fueleconomy.gov API configuration
type FuelEconomyConfig struct {
	APIURL string        `mapstructure:"api_url"`
	Delay  time.Duration `mapstructure:"delay"`
}

// EbayConfig holds the eBay Browse API configuration
type EbayConfig struct {
	APIURL        string        `mapstructure:"api_url"`
	OAuthURL      string        `mapstructure:"oauth_url"`
	Scope         string        `mapstructure:"scope"`
	MarketplaceID string        `mapstructure:"marketplace_id"`
	AppID         string        `mapstructure:"app_id"`
	AppSecret     string        `mapstructure:"app_secret"`
	Delay         time.Duration `mapstructure:"delay"`
}

// VendorsConfig holds configuration for every external data provider
type VendorsConfig struct {
	HTTPTimeout time.Duration     `mapstructure:"http_timeout"`
	VPIC        VPICConfig        `mapstructure:"vpic"`
	CarQuery    CarQueryConfig    `mapstructure:"carquery"`
	FuelEconomy FuelEconomyConfig `mapstructure:"fueleconomy"`
	Ebay        EbayConfig        `mapstructure:"ebay"`
}

// PipelineConfig holds ingestion pipeline tuning
type PipelineConfig struct {
	HeroMakes         []string      `mapstructure:"hero_makes"`
	TrimSearchLimit   int           `mapstructure:"trim_search_limit"`
	ListingsPageSize  int           `mapstructure:"listings_page_size"`
	MPGMaxRetries     uint64        `mapstructure:"mpg_max_retries"`
	MPGRetryBaseDelay time.Duration `mapstructure:"mpg_retry_base_delay"`
	LockFile          string        `mapstructure:"lock_file"`
}

// IngestConfig holds the shared configuration of everything that runs an ingestion stage
type IngestConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	Vendors    VendorsConfig  `mapstructure:"vendors"`
	Pipeline   PipelineConfig `mapstructure:"pipeline"`
	NATS       NATSConfig     `mapstructure:"nats"`
}

// APIConfig holds configuration for the API server
type APIConfig struct {
	IngestConfig `mapstructure:",squash"`
	Server       ServerConfig `mapstructure:"server"`
}

// ScheduleConfig holds the intervals of the periodic ingestion loop
type ScheduleConfig struct {
	CatalogInterval  time.Duration `mapstructure:"catalog_interval"`
	ListingsInterval time.Duration `mapstructure:"listings_interval"`
	RunOnStart       bool          `mapstructure:"run_on_start"`
}

// SchedulerConfig holds configuration for the scheduler program
type SchedulerConfig struct {
	IngestConfig `mapstructure:",squash"`
	Schedule     ScheduleConfig `mapstructure:"schedule"`
}

// LoadIngestConfig loads configuration for the ingest CLI
func LoadIngestConfig(configFile string, envPath string) (*IngestConfig, error) {
	v := configureViper("ingest", configFile, envPath)
	setIngestDefaults(v)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg IngestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)
	setIngestDefaults(v)

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	// ingestion runs synchronously inside the request
	v.SetDefault("server.write_timeout", 1800)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// LoadSchedulerConfig loads configuration for the scheduler program
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerConfig, error) {
	v := configureViper("scheduler", configFile, envPath)
	setIngestDefaults(v)

	v.SetDefault("schedule.catalog_interval", "24h")
	v.SetDefault("schedule.listings_interval", "6h")
	v.SetDefault("schedule.run_on_start", true)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SchedulerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}
	if cfg.Schedule.CatalogInterval <= 0 || cfg.Schedule.ListingsInterval <= 0 {
		return nil, errors.New("schedule intervals must be positive")
	}

	return &cfg, nil
}

func setIngestDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")

	v.SetDefault("vendors.http_timeout", "30s")
	v.SetDefault("vendors.vpic.api_url", "https://vpic.nhtsa.dot.gov/api/vehicles")
	v.SetDefault("vendors.vpic.delay", "100ms")
	v.SetDefault("vendors.carquery.api_url", "https://www.carqueryapi.com/api/0.3")
	v.SetDefault("vendors.carquery.delay", "200ms")
	v.SetDefault("vendors.fueleconomy.api_url", "https://www.fueleconomy.gov/ws/rest/vehicle")
	v.SetDefault("vendors.fueleconomy.delay", "300ms")
	v.SetDefault("vendors.ebay.api_url", "https://api.ebay.com")
	v.SetDefault("vendors.ebay.oauth_url", "https://api.ebay.com/identity/v1/oauth2/token")
	v.SetDefault("vendors.ebay.scope", "https://api.ebay.com/oauth/api_scope")
	v.SetDefault("vendors.ebay.marketplace_id", "EBAY_US")
	v.SetDefault("vendors.ebay.delay", "500ms")

	v.SetDefault("pipeline.trim_search_limit", 50)
	v.SetDefault("pipeline.listings_page_size", 50)
	v.SetDefault("pipeline.mpg_max_retries", 2)
	v.SetDefault("pipeline.mpg_retry_base_delay", "1s")
	v.SetDefault("pipeline.lock_file", filepath.Join(os.TempDir(), "catalog-indexer-ingest.lock"))

	v.SetDefault("nats.subject_prefix", "ingest.runs")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.connection_name", "catalog-indexer")
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("CATALOG_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds environment variables for keys without defaults.
// Viper only maps env vars onto struct fields for keys it already knows about.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.user",
		"database.password",
		"database.dbname",
		// Vendors
		"vendors.ebay.app_id",
		"vendors.ebay.app_secret",
		// Pipeline
		"pipeline.hero_makes",
		// NATS
		"nats.url",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile)) // later files win
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
