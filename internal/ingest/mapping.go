package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/normalize"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/carquery"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/ebay"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
	"github.com/affordable-sports-cars/catalog-indexer/internal/types"
)

// usdRates holds the fixed conversion rates to USD. Other currencies are taken as USD.
var usdRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"CAD": decimal.RequireFromString("0.75"),
	"EUR": decimal.RequireFromString("1.1"),
}

// MapSpecTrim converts a raw spec trim into trim upsert input in imperial units.
// The caller sets ModelID.
func MapSpecTrim(trim carquery.Trim) store.UpsertTrimInput {
	name := strings.TrimSpace(trim.Trim)
	if name == "" {
		name = domain.BASE_TRIM_NAME
	}

	var engine *string
	if engineType := strings.TrimSpace(trim.EngineType); engineType != "" {
		if trim.EngineCylinders.Valid {
			engine = types.StringPtr(fmt.Sprintf("%d cyl %s", trim.EngineCylinders.Int(), engineType))
		} else {
			engine = types.StringPtr(engineType)
		}
	}

	return store.UpsertTrimInput{
		Year:        trim.Year.Int(),
		Name:        name,
		Body:        types.NonEmptyPtr(trim.Body),
		Engine:      engine,
		Horsepower:  normalize.PsToHp(normalize.Positive(trim.EnginePowerPS.Ptr())),
		Torque:      normalize.NmToLbFt(normalize.Positive(trim.EngineTorqueNm.Ptr())),
		ZeroToSixty: normalize.KphTo60Seconds(normalize.Positive(trim.ZeroTo100Kph.Ptr())),
		MPGCity:     normalize.LPer100kmToMpg(trim.LitresPer100kmCity.Ptr()),
		MPGHwy:      normalize.LPer100kmToMpg(trim.LitresPer100kmHighway.Ptr()),
	}
}

// ConvertToUSD converts a marketplace amount to whole US dollars, rounding half away from zero
func ConvertToUSD(amount *ebay.Amount) (int, error) {
	if amount == nil || strings.TrimSpace(amount.Value) == "" {
		return 0, fmt.Errorf("missing price")
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount.Value))
	if err != nil {
		return 0, fmt.Errorf("invalid price %q: %w", amount.Value, err)
	}

	if rate, ok := usdRates[strings.ToUpper(amount.Currency)]; ok {
		value = value.Mul(rate)
	}

	return int(value.Round(0).IntPart()), nil
}

// MapListing converts a raw marketplace item into listing upsert input without a match
func MapListing(item ebay.ItemSummary) (store.UpsertListingInput, error) {
	if item.ItemID == "" {
		return store.UpsertListingInput{}, fmt.Errorf("listing has no item id")
	}

	price, err := ConvertToUSD(item.Price)
	if err != nil {
		return store.UpsertListingInput{}, err
	}

	input := store.UpsertListingInput{
		Source: domain.LISTING_SOURCE_EBAY,
		ID:     item.ItemID,
		Title:  item.Title,
		Price:  price,
		URL:    item.ItemWebURL,
	}

	if item.Image != nil {
		input.Image = types.NonEmptyPtr(item.Image.ImageURL)
	}

	if item.ItemLocation != nil {
		var parts []string
		for _, part := range []string{item.ItemLocation.City, item.ItemLocation.StateOrProvince} {
			if part = strings.TrimSpace(part); part != "" {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			input.Location = types.StringPtr(strings.Join(parts, ", "))
		}
	}

	if item.ItemEndDate != "" {
		if endDate, err := time.Parse(time.RFC3339, item.ItemEndDate); err == nil {
			input.PostedAt = &endDate
		}
	}

	return input, nil
}
