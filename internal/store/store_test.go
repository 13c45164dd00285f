package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
	"github.com/affordable-sports-cars/catalog-indexer/internal/types"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// seedTrim upserts a make, model and trim and returns the trim
func seedTrim(t *testing.T, store Store, makeName, modelName string, year int, trimName string) *schema.Trim {
	t.Helper()
	ctx := context.Background()

	mk, err := store.UpsertMake(ctx, makeName)
	require.NoError(t, err)
	model, err := store.UpsertModel(ctx, mk.ID, modelName)
	require.NoError(t, err)
	trim, err := store.UpsertTrim(ctx, UpsertTrimInput{
		ModelID: model.ID,
		Year:    year,
		Name:    trimName,
		Body:    types.StringPtr("Coupe"),
		Engine:  types.StringPtr("6 cyl in-line"),
	})
	require.NoError(t, err)
	return trim
}

// buildTestListing creates a listing input linked to trimID, or unlinked when trimID is zero
func buildTestListing(id string, price int, trimID uint64) UpsertListingInput {
	input := UpsertListingInput{
		Source: "ebay",
		ID:     id,
		Title:  "Listing " + id,
		Price:  price,
		URL:    "https://www.ebay.com/itm/" + id,
		Image:  types.StringPtr("https://i.ebayimg.com/" + id + ".jpg"),
	}
	if trimID != 0 {
		input.TrimID = &trimID
		input.Confidence = 0.85
		input.Reasons = []string{"Year match: 2020 vs 2020"}
	}
	return input
}

// =============================================================================
// Catalog
// =============================================================================

func testUpsertMake(t *testing.T, store Store) {
	ctx := context.Background()

	first, err := store.UpsertMake(ctx, "Porsche")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)
	assert.Equal(t, "Porsche", first.Name)

	second, err := store.UpsertMake(ctx, "Porsche")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	other, err := store.UpsertMake(ctx, "Toyota")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func testUpsertModel(t *testing.T, store Store) {
	ctx := context.Background()

	toyota, err := store.UpsertMake(ctx, "Toyota")
	require.NoError(t, err)
	nissan, err := store.UpsertMake(ctx, "Nissan")
	require.NoError(t, err)

	supra, err := store.UpsertModel(ctx, toyota.ID, "Supra")
	require.NoError(t, err)
	again, err := store.UpsertModel(ctx, toyota.ID, "Supra")
	require.NoError(t, err)
	assert.Equal(t, supra.ID, again.ID)
	assert.Equal(t, toyota.ID, again.MakeID)

	// same name under another make is a different model
	z, err := store.UpsertModel(ctx, nissan.ID, "Supra")
	require.NoError(t, err)
	assert.NotEqual(t, supra.ID, z.ID)
}

func testUpsertTrim(t *testing.T, store Store) {
	ctx := context.Background()

	mk, err := store.UpsertMake(ctx, "Toyota")
	require.NoError(t, err)
	model, err := store.UpsertModel(ctx, mk.ID, "Supra")
	require.NoError(t, err)

	t.Run("insert", func(t *testing.T) {
		zeroToSixty := 4.1
		trim, err := store.UpsertTrim(ctx, UpsertTrimInput{
			ModelID:     model.ID,
			Year:        2020,
			Name:        "3.0 Premium",
			Body:        types.StringPtr("Coupe"),
			Engine:      types.StringPtr("6 cyl in-line"),
			Horsepower:  types.IntPtr(330),
			Torque:      types.IntPtr(369),
			ZeroToSixty: &zeroToSixty,
			MPGCity:     types.IntPtr(24),
		})
		require.NoError(t, err)
		assert.NotZero(t, trim.ID)
		assert.Equal(t, 330, *trim.Horsepower)
		assert.Equal(t, 24, *trim.MPGCity)
		assert.InDelta(t, 4.1, *trim.ZeroToSixty, 0.001)
		assert.Nil(t, trim.MPGHwy)
	})

	t.Run("update keeps id and known MPG", func(t *testing.T) {
		before, err := store.UpsertTrim(ctx, UpsertTrimInput{ModelID: model.ID, Year: 2021, Name: "Base", MPGCity: types.IntPtr(22), MPGHwy: types.IntPtr(30)})
		require.NoError(t, err)

		after, err := store.UpsertTrim(ctx, UpsertTrimInput{
			ModelID:    model.ID,
			Year:       2021,
			Name:       "Base",
			Horsepower: types.IntPtr(255),
		})
		require.NoError(t, err)

		assert.Equal(t, before.ID, after.ID)
		assert.Equal(t, 255, *after.Horsepower)
		require.NotNil(t, after.MPGCity)
		assert.Equal(t, 22, *after.MPGCity)
		require.NotNil(t, after.MPGHwy)
		assert.Equal(t, 30, *after.MPGHwy)
	})

	t.Run("fresh MPG replaces stored MPG", func(t *testing.T) {
		trim, err := store.UpsertTrim(ctx, UpsertTrimInput{ModelID: model.ID, Year: 2021, Name: "Base", MPGCity: types.IntPtr(25)})
		require.NoError(t, err)
		assert.Equal(t, 25, *trim.MPGCity)
		assert.Equal(t, 30, *trim.MPGHwy)
	})
}

func testUpdateTrimMPG(t *testing.T, store Store) {
	ctx := context.Background()
	trim := seedTrim(t, store, "Mazda", "MX-5 Miata", 2019, "Club")

	require.NoError(t, store.UpdateTrimMPG(ctx, trim.ID, 26, 35))

	detail, err := store.GetCar(ctx, trim.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 26, *detail.Trim.MPGCity)
	assert.Equal(t, 35, *detail.Trim.MPGHwy)

	// enrichment only fills NULL columns
	require.NoError(t, store.UpdateTrimMPG(ctx, trim.ID, 1, 2))
	detail, err = store.GetCar(ctx, trim.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 26, *detail.Trim.MPGCity)
	assert.Equal(t, 35, *detail.Trim.MPGHwy)

	assert.Error(t, store.UpdateTrimMPG(ctx, trim.ID+1000, 1, 2))
}

func testListTrimsForSearch(t *testing.T, store Store) {
	ctx := context.Background()

	older := seedTrim(t, store, "Porsche", "Cayman", 2014, "S")
	newest := seedTrim(t, store, "Toyota", "Supra", 2021, "3.0")
	middle := seedTrim(t, store, "Nissan", "370Z", 2018, "Sport")

	trims, err := store.ListTrimsForSearch(ctx, 2)
	require.NoError(t, err)
	require.Len(t, trims, 2)
	assert.Equal(t, newest.ID, trims[0].ID)
	assert.Equal(t, "Supra", trims[0].ModelName)
	assert.Equal(t, "Toyota", trims[0].MakeName)
	assert.Equal(t, middle.ID, trims[1].ID)

	all, err := store.ListMatchCandidates(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, older.ID, all[0].ID)
	assert.Equal(t, "Coupe", *all[0].Body)

	none, err := store.ListTrimsForSearch(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

// =============================================================================
// Listings
// =============================================================================

func testUpsertListing(t *testing.T, store Store) {
	ctx := context.Background()
	trim := seedTrim(t, store, "Toyota", "Supra", 2020, "3.0 Premium")

	t.Run("linked then unlinked", func(t *testing.T) {
		require.NoError(t, store.UpsertListing(ctx, buildTestListing("v1|1|0", 52000, trim.ID)))

		detail, err := store.GetCar(ctx, trim.ID, 10)
		require.NoError(t, err)
		require.Len(t, detail.Listings, 1)
		listing := detail.Listings[0]
		assert.Equal(t, "ebay", listing.Source)
		assert.Equal(t, 0.85, listing.Confidence)
		var reasons []string
		require.NoError(t, json.Unmarshal(listing.MatchReasons, &reasons))
		assert.Equal(t, []string{"Year match: 2020 vs 2020"}, reasons)

		// a later run that no longer matches clears the link
		unlinked := buildTestListing("v1|1|0", 51000, 0)
		unlinked.Confidence = 0.4
		require.NoError(t, store.UpsertListing(ctx, unlinked))

		detail, err = store.GetCar(ctx, trim.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, detail.Listings)
	})

	t.Run("same native id from another source is a different listing", func(t *testing.T) {
		ebay := buildTestListing("shared", 40000, trim.ID)
		other := buildTestListing("shared", 41000, trim.ID)
		other.Source = "other"

		require.NoError(t, store.UpsertListing(ctx, ebay))
		require.NoError(t, store.UpsertListing(ctx, other))

		detail, err := store.GetCar(ctx, trim.ID, 10)
		require.NoError(t, err)
		assert.Len(t, detail.Listings, 2)
	})
}

func testGetLinkedListingPrices(t *testing.T, store Store) {
	ctx := context.Background()
	supra := seedTrim(t, store, "Toyota", "Supra", 2020, "3.0")
	cayman := seedTrim(t, store, "Porsche", "Cayman", 2015, "GTS")

	for _, l := range []UpsertListingInput{
		buildTestListing("a", 55000, supra.ID),
		buildTestListing("b", 48000, supra.ID),
		buildTestListing("c", 0, supra.ID),
		buildTestListing("d", 61000, cayman.ID),
		buildTestListing("e", 30000, 0),
	} {
		require.NoError(t, store.UpsertListing(ctx, l))
	}

	prices, err := store.GetLinkedListingPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[uint64][]int{
		supra.ID:  {48000, 55000},
		cayman.ID: {61000},
	}, prices)
}

// =============================================================================
// Ingestion runs
// =============================================================================

func testIngestionRuns(t *testing.T, store Store) {
	ctx := context.Background()
	started := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.CreateIngestionRun(ctx, CreateIngestionRunInput{ID: "01HZZZZZZZZZZZZZZZZZZZZZZ1", Stage: "catalog", StartedAt: started}))
	require.NoError(t, store.CreateIngestionRun(ctx, CreateIngestionRunInput{ID: "01HZZZZZZZZZZZZZZZZZZZZZZ2", Stage: "listings", StartedAt: started.Add(time.Hour)}))

	errMsg := "marketplace access token unavailable"
	require.NoError(t, store.CompleteIngestionRun(ctx, CompleteIngestionRunInput{
		ID:           "01HZZZZZZZZZZZZZZZZZZZZZZ2",
		Status:       schema.IngestionRunStatusFailed,
		FinishedAt:   started.Add(2 * time.Hour),
		Stats:        json.RawMessage(`{"listingsFetched":0,"errors":[]}`),
		ErrorMessage: &errMsg,
	}))

	runs, total, err := store.ListIngestionRuns(ctx, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, runs, 2)
	assert.Equal(t, "listings", runs[0].Stage)
	assert.Equal(t, schema.IngestionRunStatusFailed, runs[0].Status)
	require.NotNil(t, runs[0].FinishedAt)
	assert.Equal(t, errMsg, *runs[0].ErrorMessage)
	assert.JSONEq(t, `{"listingsFetched":0,"errors":[]}`, string(runs[0].Stats))
	assert.Equal(t, schema.IngestionRunStatusRunning, runs[1].Status)
	assert.Nil(t, runs[1].FinishedAt)

	page, _, err := store.ListIngestionRuns(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "catalog", page[0].Stage)

	err = store.CompleteIngestionRun(ctx, CompleteIngestionRunInput{ID: "missing", Status: schema.IngestionRunStatusSucceeded})
	assert.ErrorContains(t, err, "ingestion run not found")
}

// =============================================================================
// Read API queries
// =============================================================================

func testListCars(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("falls back to MSRP when no listing qualifies", func(t *testing.T) {
		seedTrim(t, store, "Mazda", "MX-5 Miata", 2019, "Club")
		seedTrim(t, store, "Mazda", "MX-5 Miata", 2019, "Grand Touring")
		seedTrim(t, store, "Acura", "NSX", 2017, "Base")

		page, err := store.ListCars(ctx, CarsFilter{})
		require.NoError(t, err)
		assert.False(t, page.FromListings)
		// one card per (year, model)
		assert.Equal(t, int64(2), page.Total)
		require.Len(t, page.Cars, 2)
		// NULL MSRPs sort by make then model
		assert.Equal(t, "Acura", page.Cars[0].MakeName)
		assert.Equal(t, "Mazda", page.Cars[1].MakeName)
		assert.Nil(t, page.Cars[0].MinPrice)
		assert.Equal(t, DEFAULT_PER_PAGE, page.PerPage)
		assert.Equal(t, 1, page.TotalPages)
	})

	t.Run("prices cards by cheapest linked listing", func(t *testing.T) {
		supra := seedTrim(t, store, "Toyota", "Supra", 2020, "3.0")
		cayman := seedTrim(t, store, "Porsche", "Cayman", 2015, "GTS")
		require.NoError(t, store.UpsertListing(ctx, buildTestListing("s1", 52000, supra.ID)))
		require.NoError(t, store.UpsertListing(ctx, buildTestListing("s2", 49000, supra.ID)))
		require.NoError(t, store.UpsertListing(ctx, buildTestListing("c1", 45000, cayman.ID)))
		require.NoError(t, store.UpsertListing(ctx, buildTestListing("c2", 250000, cayman.ID)))

		page, err := store.ListCars(ctx, CarsFilter{})
		require.NoError(t, err)
		assert.True(t, page.FromListings)
		require.Len(t, page.Cars, 2)
		assert.Equal(t, cayman.ID, page.Cars[0].TrimID)
		assert.Equal(t, 45000, *page.Cars[0].MinPrice)
		assert.Equal(t, supra.ID, page.Cars[1].TrimID)
		assert.Equal(t, 49000, *page.Cars[1].MinPrice)
		assert.Equal(t, "https://www.ebay.com/itm/s2", *page.Cars[1].URL)

		cheap, err := store.ListCars(ctx, CarsFilter{MaxPrice: 46000})
		require.NoError(t, err)
		require.Len(t, cheap.Cars, 1)
		assert.Equal(t, cayman.ID, cheap.Cars[0].TrimID)
	})

	t.Run("filters by make prefix and query", func(t *testing.T) {
		page, err := store.ListCars(ctx, CarsFilter{Make: "toy"})
		require.NoError(t, err)
		require.Len(t, page.Cars, 1)
		assert.Equal(t, "Supra", page.Cars[0].ModelName)

		page, err = store.ListCars(ctx, CarsFilter{Query: "gts"})
		require.NoError(t, err)
		require.Len(t, page.Cars, 1)
		assert.Equal(t, "Cayman", page.Cars[0].ModelName)

		// wildcards in the input are literal
		page, err = store.ListCars(ctx, CarsFilter{Query: "%"})
		require.NoError(t, err)
		assert.False(t, page.FromListings)
		assert.Empty(t, page.Cars)
	})

	t.Run("paginates", func(t *testing.T) {
		page, err := store.ListCars(ctx, CarsFilter{Page: 2, PerPage: 1})
		require.NoError(t, err)
		assert.Equal(t, int64(2), page.Total)
		assert.Equal(t, 2, page.TotalPages)
		require.Len(t, page.Cars, 1)
		assert.Equal(t, "Supra", page.Cars[0].ModelName)
	})
}

func testGetCar(t *testing.T, store Store) {
	ctx := context.Background()
	trim := seedTrim(t, store, "Nissan", "370Z", 2018, "Nismo")
	for i, price := range []int{39000, 31000, 35000} {
		require.NoError(t, store.UpsertListing(ctx, buildTestListing(string(rune('a'+i)), price, trim.ID)))
	}

	detail, err := store.GetCar(ctx, trim.ID, 2)
	require.NoError(t, err)
	require.NotNil(t, detail)
	require.NotNil(t, detail.Trim.Model)
	require.NotNil(t, detail.Trim.Model.Make)
	assert.Equal(t, "370Z", detail.Trim.Model.Name)
	assert.Equal(t, "Nissan", detail.Trim.Model.Make.Name)
	require.Len(t, detail.Listings, 2)
	assert.Equal(t, 31000, detail.Listings[0].Price)
	assert.Equal(t, 35000, detail.Listings[1].Price)

	missing, err := store.GetCar(ctx, trim.ID+1000, 10)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestNormalizeCarsFilter(t *testing.T) {
	f := NormalizeCarsFilter(CarsFilter{Make: "  bmw ", Page: -1, PerPage: 500})
	assert.Equal(t, "bmw", f.Make)
	assert.Equal(t, DEFAULT_MAX_PRICE, f.MaxPrice)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, MAX_PER_PAGE, f.PerPage)
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	open, idle, life, idleTime := NormalizeConnectionPoolSettings(0, 0, 0, 0)
	assert.Equal(t, 10, open)
	assert.Equal(t, 2, idle)
	assert.Equal(t, 5*time.Minute, life)
	assert.Equal(t, 10*time.Minute, idleTime)

	open, idle, _, _ = NormalizeConnectionPoolSettings(3, 8, time.Minute, time.Minute)
	assert.Equal(t, 3, open)
	assert.Equal(t, 3, idle)
}

// RunStoreTests runs every store test against a fresh store from newStore.
// newStore must discard the test's writes when the test ends.
func RunStoreTests(t *testing.T, newStore func(t *testing.T) Store) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"UpsertMake", testUpsertMake},
		{"UpsertModel", testUpsertModel},
		{"UpsertTrim", testUpsertTrim},
		{"UpdateTrimMPG", testUpdateTrimMPG},
		{"ListTrimsForSearch", testListTrimsForSearch},
		{"UpsertListing", testUpsertListing},
		{"GetLinkedListingPrices", testGetLinkedListingPrices},
		{"IngestionRuns", testIngestionRuns},
		{"ListCars", testListCars},
		{"GetCar", testGetCar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}
