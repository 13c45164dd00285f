package matching

import (
	"regexp"
	"strconv"

	"github.com/affordable-sports-cars/catalog-indexer/internal/normalize"
)

var (
	yearRegex = regexp.MustCompile(`\b(19|20)\d{2}\b`)

	// engineRegexes are tried in order against the raw title
	engineRegexes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d+\.?\d*)\s*l\b`),
		regexp.MustCompile(`(?i)\b(\d+)\s*cyl\b`),
		regexp.MustCompile(`(?i)\b(v\d+|i\d+|h\d+|w\d+)\b`),
		regexp.MustCompile(`(?i)\bturbo\b`),
		regexp.MustCompile(`(?i)\bsupercharged\b`),
		regexp.MustCompile(`(?i)\bhybrid\b`),
		regexp.MustCompile(`(?i)\belectric\b`),
	}
)

// ParsedListing holds the vehicle attributes recovered from a listing title.
// Empty strings and a zero year mean the attribute was not found.
type ParsedListing struct {
	Year         int
	Make         string
	Model        string
	Trim         string
	Engine       string
	Transmission string
	Body         string
}

// ParseTitle extracts year, make, model, trim keyword, engine token,
// transmission and body style from a free-text listing title.
// All string attributes are returned in normalized form.
func ParseTitle(title string) ParsedListing {
	normalized := normalize.Name(title)

	return ParsedListing{
		Year:         extractYear(title),
		Make:         firstContained(normalized, knownMakes),
		Model:        firstContained(normalized, knownModels),
		Trim:         firstContained(normalized, trimKeywords),
		Engine:       extractEngine(title),
		Transmission: firstContained(normalized, transmissions),
		Body:         firstContained(normalized, bodyStyles),
	}
}

func extractYear(title string) int {
	m := yearRegex.FindString(title)
	if m == "" {
		return 0
	}
	year, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return year
}

func extractEngine(title string) string {
	for _, re := range engineRegexes {
		if m := re.FindString(title); m != "" {
			return normalize.Name(m)
		}
	}
	return ""
}
