package ingest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/domain"
	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/carquery"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/fueleconomy"
	"github.com/affordable-sports-cars/catalog-indexer/internal/store/schema"
	"github.com/affordable-sports-cars/catalog-indexer/internal/types"
)

// RunCatalog ingests the hero makes one after another.
// A failing make, model or trim is recorded in the stats and skipped.
func (p *pipeline) RunCatalog(ctx context.Context) (domain.Stats, error) {
	stats := domain.NewStats()

	logger.InfoCtx(ctx, "Processing hero makes", zap.Int("count", len(p.config.HeroMakes)))

	for _, makeName := range p.config.HeroMakes {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		makeStats, err := p.processMake(ctx, makeName)
		stats.Merge(makeStats)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.AddError("Failed to process make %s: %v", makeName, err)
			logger.ErrorCtx(ctx, fmt.Errorf("failed to process make %s: %w", makeName, err))
		}
	}

	logger.InfoCtx(ctx, "Catalog ingestion complete",
		zap.Int("makes", stats.MakesProcessed),
		zap.Int("models", stats.ModelsProcessed),
		zap.Int("trims", stats.TrimsProcessed),
		zap.Int("mpg_enriched", stats.MPGEnriched),
		zap.Int("errors", len(stats.Errors)),
	)

	return stats, nil
}

// processMake upserts a make and ingests its sporty models
func (p *pipeline) processMake(ctx context.Context, makeName string) (domain.Stats, error) {
	stats := domain.NewStats()

	mk, err := p.store.UpsertMake(ctx, makeName)
	if err != nil {
		return stats, err
	}
	stats.MakesProcessed++

	models, err := p.vpic.GetModelsForMake(ctx, makeName)
	if err != nil {
		return stats, err
	}

	var sporty []string
	for _, m := range models {
		if IsSportyModel(m.ModelName) {
			sporty = append(sporty, m.ModelName)
		}
	}
	logger.InfoCtx(ctx, "Filtered sporty models",
		zap.String("make", makeName),
		zap.Int("models", len(models)),
		zap.Int("sporty", len(sporty)),
	)

	for _, modelName := range sporty {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		modelStats, err := p.processModel(ctx, mk, modelName)
		stats.Merge(modelStats)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.AddError("Failed to process model %s %s: %v", makeName, modelName, err)
			logger.WarnCtx(ctx, "Failed to process model",
				zap.String("make", makeName),
				zap.String("model", modelName),
				zap.Error(err),
			)
		}
	}

	return stats, nil
}

// processModel upserts a model and ingests its valid spec trims
func (p *pipeline) processModel(ctx context.Context, mk *schema.Make, modelName string) (domain.Stats, error) {
	stats := domain.NewStats()

	model, err := p.store.UpsertModel(ctx, mk.ID, modelName)
	if err != nil {
		return stats, err
	}
	stats.ModelsProcessed++

	trims, err := p.carQuery.GetTrims(ctx, mk.Name, modelName)
	if err != nil {
		return stats, err
	}

	for _, raw := range trims {
		if !IsValidCarTrim(raw) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		trimStats, err := p.processTrim(ctx, mk, model, raw)
		stats.Merge(trimStats)
		if err != nil {
			if ctx.Err() != nil {
				return stats, ctx.Err()
			}
			stats.AddError("Failed to process trim %s %s %s: %v", mk.Name, modelName, raw.Trim, err)
			logger.WarnCtx(ctx, "Failed to process trim",
				zap.String("make", mk.Name),
				zap.String("model", modelName),
				zap.String("trim", raw.Trim),
				zap.Error(err),
			)
		}
	}

	return stats, nil
}

// processTrim upserts a trim and fills its missing MPG from fuel economy data.
// MPG failures never fail the trim.
func (p *pipeline) processTrim(ctx context.Context, mk *schema.Make, model *schema.Model, raw carquery.Trim) (domain.Stats, error) {
	stats := domain.NewStats()

	input := MapSpecTrim(raw)
	input.ModelID = model.ID

	trim, err := p.store.UpsertTrim(ctx, input)
	if err != nil {
		return stats, err
	}
	stats.TrimsProcessed++

	if trim.MPGCity != nil && trim.MPGHwy != nil {
		return stats, nil
	}

	query := fueleconomy.Query{
		Year:         trim.Year,
		Make:         firstNonEmpty(raw.MakeDisplay, mk.Name),
		Model:        firstNonEmpty(raw.Name, model.Name),
		Engine:       types.SafeString(trim.Engine),
		Transmission: raw.TransmissionType,
	}

	mpg, err := p.findMPGWithRetry(ctx, query)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to enrich MPG",
			zap.Uint64("trimID", trim.ID),
			zap.Error(err),
		)
		return stats, nil
	}
	if mpg == nil {
		logger.DebugCtx(ctx, "No MPG data found", zap.Uint64("trimID", trim.ID))
		return stats, nil
	}

	if err := p.store.UpdateTrimMPG(ctx, trim.ID, mpg.City, mpg.Highway); err != nil {
		logger.WarnCtx(ctx, "Failed to store MPG",
			zap.Uint64("trimID", trim.ID),
			zap.Error(err),
		)
		return stats, nil
	}
	stats.MPGEnriched++

	logger.InfoCtx(ctx, "Enriched MPG",
		zap.Uint64("trimID", trim.ID),
		zap.Int("city", mpg.City),
		zap.Int("highway", mpg.Highway),
	)

	return stats, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
