package domain

const (
	// Matching constants
	MATCH_CONFIDENCE_THRESHOLD = 0.70

	// Catalog constants
	BASE_TRIM_NAME = "Base"

	// Listing sources
	LISTING_SOURCE_EBAY = "ebay"
)

// DefaultHeroMakes is the curated list of makes prioritized for catalog ingestion
var DefaultHeroMakes = []string{
	"Porsche",
	"Audi",
	"Toyota",
	"BMW",
	"Nissan",
	"Subaru",
	"Chevrolet",
	"Ford",
	"Mazda",
	"Honda",
	"Jaguar",
	"Mercedes-Benz",
	"Lexus",
	"Infiniti",
	"Acura",
}
