package ingest

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/providers/vendors/fueleconomy"
)

// findMPGWithRetry looks up fuel economy, retrying failed lookups with a doubling delay and no jitter.
// A nil result without error means no option carried usable figures.
func (p *pipeline) findMPGWithRetry(ctx context.Context, q fueleconomy.Query) (*fueleconomy.MPG, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.config.MPGRetryBaseDelay
	b.Multiplier = 2.0
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0

	var mpg *fueleconomy.MPG
	operation := func() error {
		var err error
		mpg, err = p.fuelEconomy.FindBestMPG(ctx, q)
		return err
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "MPG lookup failed, retrying",
			zap.Error(err),
			zap.Int("year", q.Year),
			zap.String("make", q.Make),
			zap.String("model", q.Model),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(b, p.config.MPGMaxRetries), ctx)
	if err := backoff.RetryNotify(operation, policy, notifyOnError); err != nil {
		return nil, err
	}

	return mpg, nil
}
