package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

// UpsertTrimInput holds the normalized spec fields of a trim keyed by (year, name, model)
type UpsertTrimInput struct {
	ModelID     uint64
	Year        int
	Name        string
	Body        *string
	Engine      *string
	Horsepower  *int
	Torque      *int
	ZeroToSixty *float64
	MPGCity     *int
	MPGHwy      *int
}

// UpsertListingInput holds a mapped listing and the outcome of matching it
type UpsertListingInput struct {
	Source     string
	ID         string
	Title      string
	Price      int
	URL        string
	Image      *string
	Location   *string
	PostedAt   *time.Time
	TrimID     *uint64
	Confidence float64
	Reasons    []string
}

// TrimSummary is a trim joined with its model and make names
type TrimSummary struct {
	ID        uint64  `gorm:"column:id"`
	Year      int     `gorm:"column:year"`
	Name      string  `gorm:"column:name"`
	Body      *string `gorm:"column:body"`
	Engine    *string `gorm:"column:engine"`
	ModelName string  `gorm:"column:model_name"`
	MakeName  string  `gorm:"column:make_name"`
}

// CreateIngestionRunInput describes a run that has just started
type CreateIngestionRunInput struct {
	ID        string
	Stage     string
	StartedAt time.Time
}

// CompleteIngestionRunInput describes the outcome of a finished run
type CompleteIngestionRunInput struct {
	ID           string
	Status       schema.IngestionRunStatus
	FinishedAt   time.Time
	Stats        json.RawMessage
	ErrorMessage *string
}

// CarsFilter selects and paginates car cards
type CarsFilter struct {
	// Make filters by make name prefix, case-insensitive
	Make string
	// Query filters by trim or model name substring, case-insensitive
	Query string
	// MaxPrice bounds the listing price, or the MSRP when no listing qualifies
	MaxPrice int
	Page     int
	PerPage  int
}

// CarCard is one (year, model) entry of the car catalog
type CarCard struct {
	TrimID     uint64  `gorm:"column:trim_id" json:"trimId"`
	Year       int     `gorm:"column:year" json:"year"`
	MakeName   string  `gorm:"column:make_name" json:"makeName"`
	ModelName  string  `gorm:"column:model_name" json:"modelName"`
	TrimName   string  `gorm:"column:trim_name" json:"trimName"`
	MinPrice   *int    `gorm:"column:min_price" json:"minPrice"`
	Image      *string `gorm:"column:image" json:"image"`
	URL        *string `gorm:"column:url" json:"url"`
	Horsepower *int    `gorm:"column:horsepower" json:"horsepower"`
	MPGCity    *int    `gorm:"column:mpg_city" json:"mpgCity"`
	MPGHwy     *int    `gorm:"column:mpg_hwy" json:"mpgHwy"`
}

// CarsPage is a page of car cards
type CarsPage struct {
	Cars       []CarCard `json:"cars"`
	Total      int64     `json:"total"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	// FromListings is true when cards are priced by linked listings rather than MSRP
	FromListings bool `json:"fromListings"`
}

// CarDetail is a trim with its model, make and cheapest linked listings
type CarDetail struct {
	Trim     schema.Trim      `json:"trim"`
	Listings []schema.Listing `json:"listings"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertMake inserts a make by name or returns the existing one
	UpsertMake(ctx context.Context, name string) (*schema.Make, error)
	// UpsertModel inserts a model of a make or returns the existing one
	UpsertModel(ctx context.Context, makeID uint64, name string) (*schema.Model, error)
	// UpsertTrim inserts or updates a trim keyed by (year, name, model) and returns the stored row.
	// Known MPG figures are kept when the input has none.
	UpsertTrim(ctx context.Context, input UpsertTrimInput) (*schema.Trim, error)
	// UpdateTrimMPG fills the MPG columns of a trim that are still NULL
	UpdateTrimMPG(ctx context.Context, trimID uint64, city, highway int) error
	// ListTrimsForSearch returns up to limit trims, most recent year first
	ListTrimsForSearch(ctx context.Context, limit int) ([]TrimSummary, error)
	// ListMatchCandidates returns every trim with its model and make names
	ListMatchCandidates(ctx context.Context) ([]TrimSummary, error)
	// UpsertListing inserts or overwrites a listing keyed by (source, id)
	UpsertListing(ctx context.Context, input UpsertListingInput) error
	// GetLinkedListingPrices returns the positive prices of linked listings grouped by trim id
	GetLinkedListingPrices(ctx context.Context) (map[uint64][]int, error)

	// CreateIngestionRun records the start of an ingestion run
	CreateIngestionRun(ctx context.Context, input CreateIngestionRunInput) error
	// CompleteIngestionRun records the outcome of an ingestion run
	CompleteIngestionRun(ctx context.Context, input CompleteIngestionRunInput) error
	// ListIngestionRuns returns runs, most recent first, and the total count
	ListIngestionRuns(ctx context.Context, limit, offset int) ([]schema.IngestionRun, int64, error)

	// ListCars returns a page of car cards
	ListCars(ctx context.Context, filter CarsFilter) (*CarsPage, error)
	// GetCar returns a trim and its cheapest linked listings, nil when the trim does not exist
	GetCar(ctx context.Context, trimID uint64, listingLimit int) (*CarDetail, error)
}
