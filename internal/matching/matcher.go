package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/normalize"
	"github.com/affordable-sports-cars/catalog-indexer/internal/types"
)

// Weights are expressed in points out of 100 so that sums are exact
const (
	YEAR_POINTS   = 30
	MAKE_POINTS   = 20
	MODEL_POINTS  = 20
	TRIM_POINTS   = 15
	BODY_POINTS   = 10
	ENGINE_POINTS = 5

	// YEAR_TOLERANCE is the largest year difference still counted as a match
	YEAR_TOLERANCE = 1

	maxPoints = 100
)

// thresholdPoints is domain.MATCH_CONFIDENCE_THRESHOLD in points
var thresholdPoints = int(math.Round(domain.MATCH_CONFIDENCE_THRESHOLD * maxPoints))

// CandidateTrim is a catalog trim with its model and make names
type CandidateTrim struct {
	ID        uint64
	Year      int
	Name      string
	Body      *string
	Engine    *string
	ModelName string
	MakeName  string
}

// Match is the score of a parsed listing against one candidate trim
type Match struct {
	TrimID     uint64
	Confidence float64
	Reasons    []string
}

// Score rates how well a parsed listing fits a candidate trim.
// Confidence is in [0, 1]; reasons describe every contribution and the
// year, make and model mismatches.
func Score(listing ParsedListing, trim CandidateTrim) Match {
	points, reasons := score(listing, trim)
	return Match{
		TrimID:     trim.ID,
		Confidence: confidence(points),
		Reasons:    reasons,
	}
}

// FindBestMatch returns the highest scoring candidate when its confidence
// reaches domain.MATCH_CONFIDENCE_THRESHOLD, nil otherwise.
// Ties are broken by the lowest trim id.
func FindBestMatch(listing ParsedListing, candidates []CandidateTrim) *Match {
	var (
		best       *CandidateTrim
		bestPoints int
	)

	for i := range candidates {
		c := &candidates[i]
		points, _ := score(listing, *c)
		if best == nil || points > bestPoints || (points == bestPoints && c.ID < best.ID) {
			best = c
			bestPoints = points
		}
	}

	if best == nil || bestPoints < thresholdPoints {
		return nil
	}

	match := Score(listing, *best)
	return &match
}

func score(listing ParsedListing, trim CandidateTrim) (int, []string) {
	points := 0
	reasons := []string{}

	if listing.Year != 0 {
		if abs(listing.Year-trim.Year) <= YEAR_TOLERANCE {
			points += YEAR_POINTS
			reasons = append(reasons, fmt.Sprintf("Year match: %d vs %d", listing.Year, trim.Year))
		} else {
			reasons = append(reasons, fmt.Sprintf("Year mismatch: %d vs %d", listing.Year, trim.Year))
		}
	}

	if listing.Make != "" {
		if strings.Contains(normalize.Name(trim.MakeName), listing.Make) {
			points += MAKE_POINTS
			reasons = append(reasons, fmt.Sprintf("Make match: %s", listing.Make))
		} else {
			reasons = append(reasons, fmt.Sprintf("Make mismatch: %s vs %s", listing.Make, trim.MakeName))
		}
	}

	if listing.Model != "" {
		if strings.Contains(normalize.Name(trim.ModelName), listing.Model) {
			points += MODEL_POINTS
			reasons = append(reasons, fmt.Sprintf("Model match: %s", listing.Model))
		} else {
			reasons = append(reasons, fmt.Sprintf("Model mismatch: %s vs %s", listing.Model, trim.ModelName))
		}
	}

	if listing.Trim != "" && strings.Contains(normalize.Name(trim.Name), listing.Trim) {
		points += TRIM_POINTS
		reasons = append(reasons, fmt.Sprintf("Trim match: %s", listing.Trim))
	}

	if listing.Body != "" && !types.StringNilOrEmpty(trim.Body) &&
		strings.Contains(normalize.Name(*trim.Body), listing.Body) {
		points += BODY_POINTS
		reasons = append(reasons, fmt.Sprintf("Body match: %s", listing.Body))
	}

	if listing.Engine != "" && !types.StringNilOrEmpty(trim.Engine) &&
		strings.Contains(normalize.Name(*trim.Engine), listing.Engine) {
		points += ENGINE_POINTS
		reasons = append(reasons, fmt.Sprintf("Engine match: %s", listing.Engine))
	}

	return points, reasons
}

func confidence(points int) float64 {
	if points <= 0 {
		return 0
	}
	if points >= maxPoints {
		return 1
	}
	return float64(points) / maxPoints
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
