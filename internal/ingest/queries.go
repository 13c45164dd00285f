package ingest

import (
	"fmt"
	"strings"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
)

// MAX_QUERIES_PER_TRIM caps the marketplace searches made for one trim
const MAX_QUERIES_PER_TRIM = 3

// searchKeywords widen a search beyond the exact model name
var searchKeywords = []string{"sport", "performance", "turbo", "manual", "automatic"}

// GenerateSearchQueries builds the marketplace queries for a trim, most specific first.
// A zero year omits every year token.
func GenerateSearchQueries(makeName, modelName string, year int, trimName string) []string {
	base := strings.TrimSpace(makeName + " " + modelName)
	trimName = strings.TrimSpace(trimName)

	var queries []string
	prefix := ""
	if year != 0 {
		prefix = fmt.Sprintf("%d %d %d ", year-1, year, year+1)
	}
	queries = append(queries, prefix+base)
	if trimName != "" && trimName != domain.BASE_TRIM_NAME {
		queries = append(queries, prefix+base+" "+trimName)
	}

	for _, keyword := range searchKeywords {
		if year != 0 {
			queries = append(queries, fmt.Sprintf("%d %s %s", year, base, keyword))
		} else {
			queries = append(queries, base+" "+keyword)
		}
	}

	if len(queries) > MAX_QUERIES_PER_TRIM {
		queries = queries[:MAX_QUERIES_PER_TRIM]
	}
	return queries
}
