package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
)

// ErrProxyClosed is returned for requests submitted after Close
var ErrProxyClosed = errors.New("proxy is closed")

// RequestFunc is a function that performs the actual API request
type RequestFunc func(ctx context.Context) (interface{}, error)

// requestResult wraps the result and error of a request
type requestResult struct {
	value interface{}
	err   error
}

// Proxy gates outbound provider calls
//
//go:generate mockgen -source=proxy.go -destination=../mocks/ratelimit_proxy.go -package=mocks -mock_names=Proxy=MockRateLimitProxy
type Proxy interface {
	// Request runs fn once the provider's pacing allows it and no other call is in flight
	Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error)

	// Close gracefully shuts down the proxy
	Close() error
}

// Config holds the pacing of every provider
type Config struct {
	// Delays maps a provider name to the minimum spacing between two of its calls
	Delays map[string]time.Duration
	// MaxQueueSize bounds the number of calls waiting for the worker; zero means unbounded
	MaxQueueSize int
}

// proxy runs every call on a single pond worker, so at most one external
// call is in flight per process, and spaces calls to the same provider with
// a token bucket of burst one.
type proxy struct {
	pool      pond.ResultPool[*requestResult]
	limiters  map[string]*rate.Limiter
	closed    atomic.Bool
	closeOnce sync.Once
}

// NewProxy creates a new pacing proxy
func NewProxy(cfg Config) (Proxy, error) {
	if len(cfg.Delays) == 0 {
		return nil, fmt.Errorf("at least one provider must be configured")
	}

	limiters := make(map[string]*rate.Limiter, len(cfg.Delays))
	for name, delay := range cfg.Delays {
		if delay < 0 {
			return nil, fmt.Errorf("provider %s: delay must not be negative", name)
		}
		limit := rate.Inf
		if delay > 0 {
			limit = rate.Every(delay)
		}
		limiters[name] = rate.NewLimiter(limit, 1)
	}

	var opts []pond.Option
	if cfg.MaxQueueSize > 0 {
		opts = append(opts, pond.WithQueueSize(cfg.MaxQueueSize))
	}

	logger.Info("Rate limit proxy initialized",
		zap.Int("providers", len(limiters)),
		zap.Int("max_queue_size", cfg.MaxQueueSize),
	)

	return &proxy{
		pool:     pond.NewResultPool[*requestResult](1, opts...),
		limiters: limiters,
	}, nil
}

// Request submits a paced request and returns its typed result.
// A nil proxy runs fn directly.
func Request[T any](ctx context.Context, p Proxy, providerName string, fn func(ctx context.Context) (T, error)) (T, error) {
	if p == nil {
		return fn(ctx)
	}

	var zero T
	result, err := p.Request(ctx, providerName, func(ctx context.Context) (interface{}, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	if result == nil {
		return zero, nil
	}
	return result.(T), nil
}

func (p *proxy) Request(ctx context.Context, providerName string, fn RequestFunc) (interface{}, error) {
	if p.closed.Load() {
		return nil, ErrProxyClosed
	}

	limiter, ok := p.limiters[providerName]
	if !ok {
		return nil, fmt.Errorf("provider '%s' not configured", providerName)
	}

	task := p.pool.Submit(func() *requestResult {
		if err := limiter.Wait(ctx); err != nil {
			return &requestResult{err: err}
		}
		value, err := fn(ctx)
		return &requestResult{value: value, err: err}
	})

	result, err := task.Wait()
	if err != nil {
		return nil, err
	}
	return result.value, result.err
}

// Close waits for queued calls to finish and rejects new ones
func (p *proxy) Close() error {
	var err error
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		logger.Info("Shutting down rate limit proxy")
		err = p.pool.Stop().Wait()
	})
	return err
}
