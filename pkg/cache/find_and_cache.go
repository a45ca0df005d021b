package cache

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cacher is the subset of cache behaviour FindAndCache relies on.
type Cacher interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type FetchFunc[T any] func(ctx context.Context) (T, error)

// Group collapses concurrent fills of a key and fences out fills that began
// before the key was last invalidated. Generations are tracked per process.
type Group struct {
	sf singleflight.Group

	mu          sync.Mutex
	generations map[string]uint64
}

func (g *Group) generation(key string) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generations[key]
}

// Invalidate deletes key. A fill already in flight still answers its own
// waiters, but later callers do not join it and its value is not written.
func (g *Group) Invalidate(ctx context.Context, c Cacher, key string) error {
	g.mu.Lock()
	if g.generations == nil {
		g.generations = make(map[string]uint64)
	}
	g.generations[key]++
	g.mu.Unlock()

	g.sf.Forget(key)
	return c.Delete(ctx, key)
}

// store writes value unless key was invalidated after gen was read. An
// invalidation racing the write is caught by the second check.
func (g *Group) store(ctx context.Context, c Cacher, key string, gen uint64, value any, ttl time.Duration) (bool, error) {
	if g.generation(key) != gen {
		return false, nil
	}
	if err := c.Set(ctx, key, value, ttl); err != nil {
		return false, err
	}
	if g.generation(key) != gen {
		return false, c.Delete(ctx, key)
	}
	return true, nil
}

const (
	defaultFetchTimeout = 15 * time.Second
	defaultSetTimeout   = 5 * time.Second
)

// addTTLJitter adds up to ±15s random jitter to TTL to avoid mass expiration.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 30*time.Second {
		return ttl
	}
	jitter := time.Duration(rand.Intn(30)-15) * time.Second
	return ttl + jitter
}

func triggerBackgroundRefresh[T any](
	c Cacher,
	g *Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) {
	go func() {
		time.Sleep(time.Duration(rand.Intn(1000)) * time.Millisecond)

		_, _, _ = g.sf.Do(key+":refresh", func() (any, error) {
			gen := g.generation(key)
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				logger.Warn("background refresh failed",
					zap.String("key", key),
					zap.Error(err))
				return nil, err
			}

			setCtx, cancelSet := context.WithTimeout(context.Background(), defaultSetTimeout)
			defer cancelSet()

			ttlWithJitter := addTTLJitter(ttl)
			stored, err := g.store(setCtx, c, key, gen, value, ttlWithJitter)
			switch {
			case err != nil:
				logger.Warn("failed to update cache in background",
					zap.String("key", key),
					zap.Error(err))
			case !stored:
				logger.Debug("background refresh discarded after invalidation", zap.String("key", key))
			default:
				logger.Debug("cache refreshed in background",
					zap.String("key", key),
					zap.Duration("ttl", ttlWithJitter))
			}

			return value, nil
		})
	}()
}

// fetchAndStore ignores cancellation of the caller that started the fill;
// each waiter bounds its own wait in FindAndCache.
func fetchAndStore[T any](
	ctx context.Context,
	c Cacher,
	g *Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	gen := g.generation(key)

	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultFetchTimeout)
	defer cancel()

	value, err := fn(fetchCtx)
	if err != nil {
		return zero, err
	}

	setCtx, cancelSet := context.WithTimeout(context.WithoutCancel(ctx), defaultSetTimeout)
	defer cancelSet()

	stored, err := g.store(setCtx, c, key, gen, value, addTTLJitter(ttl))
	switch {
	case err != nil:
		logger.Warn("failed to set cache on miss", zap.String("key", key), zap.Error(err))
	case !stored:
		logger.Debug("stale fill discarded after invalidation", zap.String("key", key))
	default:
		logger.Debug("cache populated on miss", zap.String("key", key))
	}

	return value, nil
}

// FindAndCache implements read-through caching with singleflight and
// refresh-ahead. Cache errors never fail the call; they degrade to a fetch.
// With refresh disabled a hit is served as-is until the TTL expires. A fill
// that started before g.Invalidate(key) is returned to its callers but never
// written.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	g *Group,
	key string,
	ttl time.Duration,
	refresh bool,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}
	if c == nil {
		return fn(ctx)
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		if refresh {
			triggerBackgroundRefresh(c, g, key, ttl, logger, fn)
		}
		return cached, nil

	case errors.Is(err, ErrMiss):
		logger.Debug("cache miss", zap.String("key", key))

	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	ch := g.sf.DoChan(key, func() (any, error) {
		return fetchAndStore(ctx, c, g, key, ttl, logger, fn)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return zero, res.Err
	}
	v, shared := res.Val, res.Shared

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}

	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}

	return value, nil
}
