package ratelimit_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/affordable-sports-cars/catalog-indexer/internal/logger"
	"github.com/affordable-sports-cars/catalog-indexer/internal/ratelimit"
)

func TestMain(m *testing.M) {
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

func newTestProxy(t *testing.T, delays map[string]time.Duration) ratelimit.Proxy {
	t.Helper()
	p, err := ratelimit.NewProxy(ratelimit.Config{Delays: delays})
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestNewProxy_InvalidConfig(t *testing.T) {
	_, err := ratelimit.NewProxy(ratelimit.Config{})
	assert.Error(t, err)

	_, err = ratelimit.NewProxy(ratelimit.Config{Delays: map[string]time.Duration{"vpic": -time.Second}})
	assert.Error(t, err)
}

func TestProxy_Request_Success(t *testing.T) {
	p := newTestProxy(t, map[string]time.Duration{"vpic": 0})

	result, err := ratelimit.Request(context.Background(), p, "vpic", func(ctx context.Context) (string, error) {
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
}

func TestProxy_Request_NilProxy(t *testing.T) {
	result, err := ratelimit.Request(context.Background(), nil, "anything", func(ctx context.Context) (int, error) {
		return 42, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestProxy_Request_NilResult(t *testing.T) {
	p := newTestProxy(t, map[string]time.Duration{"vpic": 0})

	result, err := ratelimit.Request(context.Background(), p, "vpic", func(ctx context.Context) ([]byte, error) {
		return nil, nil
	})

	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestProxy_Request_UnknownProvider(t *testing.T) {
	p := newTestProxy(t, map[string]time.Duration{"vpic": 0})

	_, err := p.Request(context.Background(), "ebay", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})

	assert.ErrorContains(t, err, "provider 'ebay' not configured")
}

func TestProxy_Request_RequestFunctionError(t *testing.T) {
	p := newTestProxy(t, map[string]time.Duration{"vpic": 0})
	expected := errors.New("boom")

	_, err := ratelimit.Request(context.Background(), p, "vpic", func(ctx context.Context) (string, error) {
		return "", expected
	})

	assert.ErrorIs(t, err, expected)
}

func TestProxy_Request_SpacesCallsToSameProvider(t *testing.T) {
	delay := 50 * time.Millisecond
	p := newTestProxy(t, map[string]time.Duration{"carquery": delay})

	var stamps []time.Time
	for range 3 {
		_, err := ratelimit.Request(context.Background(), p, "carquery", func(ctx context.Context) (bool, error) {
			stamps = append(stamps, time.Now())
			return true, nil
		})
		require.NoError(t, err)
	}

	require.Len(t, stamps, 3)
	// allow a little scheduler slack below the configured spacing
	assert.GreaterOrEqual(t, stamps[1].Sub(stamps[0]), delay-10*time.Millisecond)
	assert.GreaterOrEqual(t, stamps[2].Sub(stamps[1]), delay-10*time.Millisecond)
}

func TestProxy_Request_SingleCallInFlight(t *testing.T) {
	p := newTestProxy(t, map[string]time.Duration{"vpic": 0, "ebay": 0})

	var inFlight, maxInFlight atomic.Int32
	var wg sync.WaitGroup
	for i := range 8 {
		provider := "vpic"
		if i%2 == 0 {
			provider = "ebay"
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ratelimit.Request(context.Background(), p, provider, func(ctx context.Context) (int, error) {
				n := inFlight.Add(1)
				for {
					current := maxInFlight.Load()
					if n <= current || maxInFlight.CompareAndSwap(current, n) {
						break
					}
				}
				time.Sleep(5 * time.Millisecond)
				inFlight.Add(-1)
				return 0, nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxInFlight.Load())
}

func TestProxy_Request_ContextCanceled(t *testing.T) {
	p := newTestProxy(t, map[string]time.Duration{"fueleconomy": time.Hour})

	// consume the initial token
	_, err := ratelimit.Request(context.Background(), p, "fueleconomy", func(ctx context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	called := false
	_, err = ratelimit.Request(ctx, p, "fueleconomy", func(ctx context.Context) (int, error) {
		called = true
		return 2, nil
	})

	assert.Error(t, err)
	assert.False(t, called)
}

func TestProxy_Request_ProxyClosed(t *testing.T) {
	p, err := ratelimit.NewProxy(ratelimit.Config{Delays: map[string]time.Duration{"vpic": 0}})
	require.NoError(t, err)
	require.NoError(t, p.Close())
	// closing twice is a no-op
	require.NoError(t, p.Close())

	_, err = p.Request(context.Background(), "vpic", func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.ErrorIs(t, err, ratelimit.ErrProxyClosed)
}
