package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

const (
	// DEFAULT_MAX_PRICE is the price bound applied when a cars filter has none
	DEFAULT_MAX_PRICE = 200000
	// DEFAULT_PER_PAGE is the page size applied when a cars filter has none
	DEFAULT_PER_PAGE = 20
	// MAX_PER_PAGE caps the page size of a cars filter
	MAX_PER_PAGE = 100
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// Zero settings fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 10
//   - MaxIdleConns: 2
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Ingestion is sequential, so the pool mostly serves the read API.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 10
	}
	if maxIdleConns == 0 {
		maxIdleConns = 2
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UpsertMake inserts a make by name or returns the existing one
func (s *pgStore) UpsertMake(ctx context.Context, name string) (*schema.Make, error) {
	mk := schema.Make{Name: name}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": gorm.Expr("now()")}),
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&mk).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert make: %w", err)
	}

	return &mk, nil
}

// UpsertModel inserts a model of a make or returns the existing one
func (s *pgStore) UpsertModel(ctx context.Context, makeID uint64, name string) (*schema.Model, error) {
	model := schema.Model{Name: name, MakeID: makeID}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "make_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"updated_at": gorm.Expr("now()")}),
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&model).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert model: %w", err)
	}

	return &model, nil
}

// UpsertTrim inserts or updates a trim keyed by (year, name, model)
func (s *pgStore) UpsertTrim(ctx context.Context, input UpsertTrimInput) (*schema.Trim, error) {
	trim := schema.Trim{
		ModelID:     input.ModelID,
		Year:        input.Year,
		Name:        input.Name,
		Body:        input.Body,
		Engine:      input.Engine,
		Horsepower:  input.Horsepower,
		Torque:      input.Torque,
		ZeroToSixty: input.ZeroToSixty,
		MPGCity:     input.MPGCity,
		MPGHwy:      input.MPGHwy,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "year"}, {Name: "name"}, {Name: "model_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"body":          gorm.Expr("EXCLUDED.body"),
				"engine":        gorm.Expr("EXCLUDED.engine"),
				"horsepower":    gorm.Expr("EXCLUDED.horsepower"),
				"torque":        gorm.Expr("EXCLUDED.torque"),
				"zero_to_sixty": gorm.Expr("EXCLUDED.zero_to_sixty"),
				// enriched MPG survives a spec refresh without figures
				"mpg_city":   gorm.Expr("COALESCE(EXCLUDED.mpg_city, trims.mpg_city)"),
				"mpg_hwy":    gorm.Expr("COALESCE(EXCLUDED.mpg_hwy, trims.mpg_hwy)"),
				"updated_at": gorm.Expr("now()"),
			}),
		}).
		Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&trim).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert trim: %w", err)
	}

	return &trim, nil
}

// UpdateTrimMPG fills the MPG columns of a trim that are still NULL
func (s *pgStore) UpdateTrimMPG(ctx context.Context, trimID uint64, city, highway int) error {
	result := s.db.WithContext(ctx).
		Model(&schema.Trim{}).
		Where("id = ?", trimID).
		Updates(map[string]interface{}{
			"mpg_city":   gorm.Expr("COALESCE(mpg_city, ?)", city),
			"mpg_hwy":    gorm.Expr("COALESCE(mpg_hwy, ?)", highway),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update trim MPG: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("trim not found: %d", trimID)
	}

	return nil
}

func (s *pgStore) trimSummaries(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("trims").
		Select("trims.id, trims.year, trims.name, trims.body, trims.engine, models.name AS model_name, makes.name AS make_name").
		Joins("JOIN models ON models.id = trims.model_id").
		Joins("JOIN makes ON makes.id = models.make_id")
}

// ListTrimsForSearch returns up to limit trims, most recent year first
func (s *pgStore) ListTrimsForSearch(ctx context.Context, limit int) ([]TrimSummary, error) {
	if limit <= 0 {
		return []TrimSummary{}, nil
	}

	trims := []TrimSummary{}
	err := s.trimSummaries(ctx).
		Order("trims.year DESC, trims.id ASC").
		Limit(limit).
		Scan(&trims).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list trims for search: %w", err)
	}

	return trims, nil
}

// ListMatchCandidates returns every trim with its model and make names
func (s *pgStore) ListMatchCandidates(ctx context.Context) ([]TrimSummary, error) {
	trims := []TrimSummary{}
	err := s.trimSummaries(ctx).
		Order("trims.id ASC").
		Scan(&trims).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list match candidates: %w", err)
	}

	return trims, nil
}

// UpsertListing inserts or overwrites a listing keyed by (source, id).
// The latest match result always replaces the stored link.
func (s *pgStore) UpsertListing(ctx context.Context, input UpsertListingInput) error {
	reasons := input.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	reasonsJSON, err := json.Marshal(reasons)
	if err != nil {
		return fmt.Errorf("failed to marshal match reasons: %w", err)
	}

	confidence := input.Confidence
	if input.TrimID == nil {
		confidence = 0
	}

	listing := schema.Listing{
		Source:       input.Source,
		ID:           input.ID,
		Title:        input.Title,
		Price:        input.Price,
		URL:          input.URL,
		Image:        input.Image,
		Location:     input.Location,
		PostedAt:     input.PostedAt,
		TrimID:       input.TrimID,
		Confidence:   confidence,
		MatchReasons: datatypes.JSON(reasonsJSON),
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "source"}, {Name: "id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"title":         listing.Title,
				"price":         listing.Price,
				"url":           listing.URL,
				"image":         listing.Image,
				"location":      listing.Location,
				"posted_at":     listing.PostedAt,
				"trim_id":       listing.TrimID,
				"confidence":    listing.Confidence,
				"match_reasons": listing.MatchReasons,
				"updated_at":    gorm.Expr("now()"),
			}),
		}).
		Create(&listing).Error
	if err != nil {
		return fmt.Errorf("failed to upsert listing: %w", err)
	}

	return nil
}

// GetLinkedListingPrices returns the positive prices of linked listings grouped by trim id.
// Each price list is sorted ascending.
func (s *pgStore) GetLinkedListingPrices(ctx context.Context) (map[uint64][]int, error) {
	var rows []struct {
		TrimID uint64 `gorm:"column:trim_id"`
		Price  int    `gorm:"column:price"`
	}

	err := s.db.WithContext(ctx).
		Model(&schema.Listing{}).
		Select("trim_id, price").
		Where("trim_id IS NOT NULL AND price > 0").
		Order("trim_id ASC, price ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get linked listing prices: %w", err)
	}

	prices := make(map[uint64][]int)
	for _, r := range rows {
		prices[r.TrimID] = append(prices[r.TrimID], r.Price)
	}

	return prices, nil
}

// CreateIngestionRun records the start of an ingestion run
func (s *pgStore) CreateIngestionRun(ctx context.Context, input CreateIngestionRunInput) error {
	run := schema.IngestionRun{
		ID:        input.ID,
		Stage:     input.Stage,
		Status:    schema.IngestionRunStatusRunning,
		StartedAt: input.StartedAt,
	}
	if err := s.db.WithContext(ctx).Create(&run).Error; err != nil {
		return fmt.Errorf("failed to create ingestion run: %w", err)
	}

	return nil
}

// CompleteIngestionRun records the outcome of an ingestion run
func (s *pgStore) CompleteIngestionRun(ctx context.Context, input CompleteIngestionRunInput) error {
	result := s.db.WithContext(ctx).
		Model(&schema.IngestionRun{}).
		Where("id = ?", input.ID).
		Updates(map[string]interface{}{
			"status":        input.Status,
			"finished_at":   input.FinishedAt,
			"stats":         datatypes.JSON(input.Stats),
			"error_message": input.ErrorMessage,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete ingestion run: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ingestion run not found: %s", input.ID)
	}

	return nil
}

// ListIngestionRuns returns runs, most recent first, and the total count
func (s *pgStore) ListIngestionRuns(ctx context.Context, limit, offset int) ([]schema.IngestionRun, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.IngestionRun{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ingestion runs: %w", err)
	}

	runs := []schema.IngestionRun{}
	err := query.
		Order("started_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&runs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list ingestion runs: %w", err)
	}

	return runs, total, nil
}

// listingCarsQuery selects one card per (year, model), priced by the cheapest
// linked listing under the price bound. The first placeholder is the bound.
const listingCarsQuery = `
	SELECT DISTINCT ON (t.year, t.model_id)
		t.id AS trim_id,
		t.year,
		mk.name AS make_name,
		m.name AS model_name,
		t.name AS trim_name,
		l.price AS min_price,
		COALESCE(t.image_url, l.image) AS image,
		l.url AS url,
		t.horsepower,
		t.mpg_city,
		t.mpg_hwy
	FROM trims t
	JOIN models m ON m.id = t.model_id
	JOIN makes mk ON mk.id = m.make_id
	JOIN LATERAL (
		SELECT price, image, url
		FROM listings
		WHERE trim_id = t.id AND price > 0 AND price <= ?
		ORDER BY price ASC
		LIMIT 1
	) l ON TRUE
	WHERE %s
	ORDER BY t.year, t.model_id, l.price ASC, t.id ASC`

// msrpCarsQuery selects one card per (year, model) priced by MSRP, keeping
// trims without MSRP. The first placeholder is the bound.
const msrpCarsQuery = `
	SELECT DISTINCT ON (t.year, t.model_id)
		t.id AS trim_id,
		t.year,
		mk.name AS make_name,
		m.name AS model_name,
		t.name AS trim_name,
		t.msrp AS min_price,
		COALESCE(t.image_url, l.image) AS image,
		l.url AS url,
		t.horsepower,
		t.mpg_city,
		t.mpg_hwy
	FROM trims t
	JOIN models m ON m.id = t.model_id
	JOIN makes mk ON mk.id = m.make_id
	LEFT JOIN LATERAL (
		SELECT image, url
		FROM listings
		WHERE trim_id = t.id
		ORDER BY price ASC
		LIMIT 1
	) l ON TRUE
	WHERE (t.msrp <= ? OR t.msrp IS NULL) AND %s
	ORDER BY t.year, t.model_id, t.id ASC`

// ListCars returns a page of car cards. Cards are priced by linked listings
// when any qualify and by MSRP otherwise.
func (s *pgStore) ListCars(ctx context.Context, filter CarsFilter) (*CarsPage, error) {
	filter = NormalizeCarsFilter(filter)
	where, args := carsFilterClause(filter)
	args = append([]interface{}{filter.MaxPrice}, args...)

	page, err := s.queryCars(ctx, fmt.Sprintf(listingCarsQuery, where), args,
		"min_price ASC, make_name ASC, model_name ASC, year DESC, trim_id ASC", filter)
	if err != nil {
		return nil, err
	}
	if page.Total > 0 {
		page.FromListings = true
		return page, nil
	}

	return s.queryCars(ctx, fmt.Sprintf(msrpCarsQuery, where), args,
		"min_price ASC NULLS LAST, make_name ASC, model_name ASC, year DESC, trim_id ASC", filter)
}

func (s *pgStore) queryCars(ctx context.Context, inner string, args []interface{}, orderBy string, filter CarsFilter) (*CarsPage, error) {
	var total int64
	err := s.db.WithContext(ctx).
		Raw(fmt.Sprintf("SELECT COUNT(*) FROM (%s) cars", inner), args...).
		Scan(&total).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count cars: %w", err)
	}

	cars := []CarCard{}
	if total > 0 {
		pageArgs := append(append([]interface{}{}, args...), filter.PerPage, (filter.Page-1)*filter.PerPage)
		err = s.db.WithContext(ctx).
			Raw(fmt.Sprintf("SELECT * FROM (%s) cars ORDER BY %s LIMIT ? OFFSET ?", inner, orderBy), pageArgs...).
			Scan(&cars).Error
		if err != nil {
			return nil, fmt.Errorf("failed to list cars: %w", err)
		}
	}

	return &CarsPage{
		Cars:       cars,
		Total:      total,
		TotalPages: int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage)),
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

// NormalizeCarsFilter applies defaults and bounds to a cars filter
func NormalizeCarsFilter(filter CarsFilter) CarsFilter {
	filter.Make = strings.TrimSpace(filter.Make)
	filter.Query = strings.TrimSpace(filter.Query)
	if filter.MaxPrice <= 0 {
		filter.MaxPrice = DEFAULT_MAX_PRICE
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = DEFAULT_PER_PAGE
	}
	if filter.PerPage > MAX_PER_PAGE {
		filter.PerPage = MAX_PER_PAGE
	}
	return filter
}

func carsFilterClause(filter CarsFilter) (string, []interface{}) {
	conditions := []string{"TRUE"}
	var args []interface{}

	if filter.Make != "" {
		conditions = append(conditions, `mk.name ILIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(filter.Make)+"%")
	}
	if filter.Query != "" {
		pattern := "%" + escapeLike(filter.Query) + "%"
		conditions = append(conditions, `(t.name ILIKE ? ESCAPE '\' OR m.name ILIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	return strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// GetCar returns a trim and its cheapest linked listings
func (s *pgStore) GetCar(ctx context.Context, trimID uint64, listingLimit int) (*CarDetail, error) {
	var trim schema.Trim
	err := s.db.WithContext(ctx).
		Preload("Model.Make").
		Where("id = ?", trimID).
		First(&trim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get trim: %w", err)
	}

	listings := []schema.Listing{}
	if listingLimit > 0 {
		err = s.db.WithContext(ctx).
			Where("trim_id = ?", trimID).
			Order("price ASC, source ASC, id ASC").
			Limit(listingLimit).
			Find(&listings).Error
		if err != nil {
			return nil, fmt.Errorf("failed to get trim listings: %w", err)
		}
	}

	return &CarDetail{Trim: trim, Listings: listings}, nil
}
