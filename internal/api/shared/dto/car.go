package dto

import (
	"encoding/json"
	"time"

	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
)

// CarListResponse is a page of car cards
type CarListResponse struct {
	Cars       []store.CarCard `json:"cars"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	PerPage    int             `json:"perPage"`
	TotalPages int             `json:"totalPages"`
	// PricedBy is "listings" when cards carry their cheapest listing price and "msrp" otherwise
	PricedBy string `json:"pricedBy"`
}

// CarDetailResponse is a trim with its specs and cheapest linked listings
type CarDetailResponse struct {
	ID          uint64            `json:"id"`
	Year        int               `json:"year"`
	MakeName    string            `json:"makeName"`
	ModelName   string            `json:"modelName"`
	Name        string            `json:"name"`
	Body        *string           `json:"body"`
	Engine      *string           `json:"engine"`
	Horsepower  *int              `json:"horsepower"`
	Torque      *int              `json:"torque"`
	ZeroToSixty *float64          `json:"zeroToSixty"`
	MPGCity     *int              `json:"mpgCity"`
	MPGHwy      *int              `json:"mpgHwy"`
	MSRP        *int              `json:"msrp"`
	ImageURL    *string           `json:"imageUrl"`
	Listings    []ListingResponse `json:"listings"`
}

// ListingResponse represents a marketplace listing linked to a trim
type ListingResponse struct {
	Source       string     `json:"source"`
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Price        int        `json:"price"`
	URL          string     `json:"url"`
	Image        *string    `json:"image"`
	Location     *string    `json:"location"`
	PostedAt     *time.Time `json:"postedAt"`
	Confidence   float64    `json:"confidence"`
	MatchReasons []string   `json:"matchReasons"`
}

// MapCarsPageToDTO maps a store.CarsPage to a CarListResponse
func MapCarsPageToDTO(page *store.CarsPage) *CarListResponse {
	cars := page.Cars
	if cars == nil {
		cars = []store.CarCard{}
	}
	pricedBy := "msrp"
	if page.FromListings {
		pricedBy = "listings"
	}
	return &CarListResponse{
		Cars:       cars,
		Total:      page.Total,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
		PricedBy:   pricedBy,
	}
}

// MapCarDetailToDTO maps a store.CarDetail to a CarDetailResponse
func MapCarDetailToDTO(detail *store.CarDetail) *CarDetailResponse {
	trim := detail.Trim
	resp := &CarDetailResponse{
		ID:          trim.ID,
		Year:        trim.Year,
		Name:        trim.Name,
		Body:        trim.Body,
		Engine:      trim.Engine,
		Horsepower:  trim.Horsepower,
		Torque:      trim.Torque,
		ZeroToSixty: trim.ZeroToSixty,
		MPGCity:     trim.MPGCity,
		MPGHwy:      trim.MPGHwy,
		MSRP:        trim.MSRP,
		ImageURL:    trim.ImageURL,
		Listings:    make([]ListingResponse, 0, len(detail.Listings)),
	}
	if trim.Model != nil {
		resp.ModelName = trim.Model.Name
		if trim.Model.Make != nil {
			resp.MakeName = trim.Model.Make.Name
		}
	}

	for _, l := range detail.Listings {
		resp.Listings = append(resp.Listings, MapListingToDTO(l))
	}
	return resp
}

// MapListingToDTO maps a schema.Listing to a ListingResponse
func MapListingToDTO(l schema.Listing) ListingResponse {
	reasons := []string{}
	if len(l.MatchReasons) > 0 {
		// unreadable reasons are dropped rather than failing the response
		_ = json.Unmarshal(l.MatchReasons, &reasons)
	}
	return ListingResponse{
		Source:       l.Source,
		ID:           l.ID,
		Title:        l.Title,
		Price:        l.Price,
		URL:          l.URL,
		Image:        l.Image,
		Location:     l.Location,
		PostedAt:     l.PostedAt,
		Confidence:   l.Confidence,
		MatchReasons: reasons,
	}
}
