package ingest

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/matching"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/ebay"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store"
)

// RunListings searches the marketplace for the most recent trims, links every
// listing to its best catalog match and computes price statistics per trim.
// Failing queries and listings are recorded in the stats and skipped.
func (p *pipeline) RunListings(ctx context.Context) (domain.Stats, error) {
	stats := domain.NewStats()

	token, err := p.ebay.GetAccessToken(ctx)
	if err != nil {
		return stats, fmt.Errorf("%w: %w", domain.ErrTokenUnavailable, err)
	}

	trims, err := p.store.ListTrimsForSearch(ctx, p.config.TrimSearchLimit)
	if err != nil {
		return stats, err
	}

	summaries, err := p.store.ListMatchCandidates(ctx)
	if err != nil {
		return stats, err
	}
	candidates := toCandidates(summaries)

	logger.InfoCtx(ctx, "Searching listings",
		zap.Int("trims", len(trims)),
		zap.Int("candidates", len(candidates)),
	)

	for _, trim := range trims {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		trimStats, err := p.processTrimListings(ctx, token.AccessToken, trim, candidates)
		stats.Merge(trimStats)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.AddError("Failed to process listings for %s %s %d %s: %v", trim.MakeName, trim.ModelName, trim.Year, trim.Name, err)
			logger.WarnCtx(ctx, "Failed to process trim listings", zap.Uint64("trimID", trim.ID), zap.Error(err))
		}
	}

	priced, err := p.updatePriceStatistics(ctx)
	if err != nil {
		return stats, err
	}
	stats.TrimsPriced = priced

	logger.InfoCtx(ctx, "Listings ingestion complete",
		zap.Int("fetched", stats.ListingsFetched),
		zap.Int("linked", stats.ListingsLinked),
		zap.Int("unlinked", stats.ListingsUnlinked),
		zap.Int("priced", stats.TrimsPriced),
		zap.Int("errors", len(stats.Errors)),
	)

	return stats, nil
}

// processTrimListings runs the search queries of one trim.
// It fails only when every query failed.
func (p *pipeline) processTrimListings(ctx context.Context, accessToken string, trim store.TrimSummary, candidates []matching.CandidateTrim) (domain.Stats, error) {
	stats := domain.NewStats()

	queries := GenerateSearchQueries(trim.MakeName, trim.ModelName, trim.Year, trim.Name)

	var lastErr error
	failed := 0
	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		resp, err := p.ebay.Search(ctx, accessToken, ebay.SearchParams{
			Query:  query,
			Limit:  p.config.ListingsPageSize,
			Offset: 0,
		})
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			failed++
			lastErr = err
			stats.AddError("Failed to search listings for query %q: %v", query, err)
			logger.WarnCtx(ctx, "Failed to search listings", zap.String("query", query), zap.Error(err))
			continue
		}

		stats.ListingsFetched += len(resp.ItemSummaries)
		for _, item := range resp.ItemSummaries {
			linked, err := p.processListing(ctx, item, candidates)
			if err != nil {
				if ctx.Err() != nil {
					return stats, ctx.Err()
				}
				stats.AddError("Failed to process listing %s: %v", item.ItemID, err)
				logger.WarnCtx(ctx, "Failed to process listing", zap.String("itemID", item.ItemID), zap.Error(err))
				continue
			}
			if linked {
				stats.ListingsLinked++
			} else {
				stats.ListingsUnlinked++
			}
		}
	}

	if len(queries) > 0 && failed == len(queries) {
		return stats, fmt.Errorf("all %d searches failed: %w", failed, lastErr)
	}

	return stats, nil
}

// processListing maps, matches and stores one listing and reports whether it was linked
func (p *pipeline) processListing(ctx context.Context, item ebay.ItemSummary, candidates []matching.CandidateTrim) (bool, error) {
	input, err := MapListing(item)
	if err != nil {
		return false, err
	}

	parsed := matching.ParseTitle(input.Title)
	match := matching.FindBestMatch(parsed, candidates)
	if match != nil {
		trimID := match.TrimID
		input.TrimID = &trimID
		input.Confidence = match.Confidence
		input.Reasons = match.Reasons
	}

	if err := p.store.UpsertListing(ctx, input); err != nil {
		return false, err
	}

	return match != nil, nil
}

// updatePriceStatistics logs the price range of every trim with linked listings
// and returns the number of trims priced
func (p *pipeline) updatePriceStatistics(ctx context.Context) (int, error) {
	prices, err := p.store.GetLinkedListingPrices(ctx)
	if err != nil {
		return 0, err
	}

	trimIDs := make([]uint64, 0, len(prices))
	for id := range prices {
		trimIDs = append(trimIDs, id)
	}
	sort.Slice(trimIDs, func(i, j int) bool { return trimIDs[i] < trimIDs[j] })

	priced := 0
	for _, id := range trimIDs {
		ps := ComputePriceStats(prices[id])
		if ps == nil {
			continue
		}
		priced++
		logger.InfoCtx(ctx, "Trim price statistics",
			zap.Uint64("trimID", id),
			zap.Int("listings", ps.Count),
			zap.Int("min", ps.Min),
			zap.Int("median", ps.Median),
			zap.Int("max", ps.Max),
		)
	}

	return priced, nil
}

func toCandidates(summaries []store.TrimSummary) []matching.CandidateTrim {
	candidates := make([]matching.CandidateTrim, len(summaries))
	for i, s := range summaries {
		candidates[i] = matching.CandidateTrim{
			ID:        s.ID,
			Year:      s.Year,
			Name:      s.Name,
			Body:      s.Body,
			Engine:    s.Engine,
			ModelName: s.ModelName,
			MakeName:  s.MakeName,
		}
	}
	return candidates
}
