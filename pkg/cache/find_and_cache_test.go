package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	getErr  error
	deleted []string
	onSet   func()
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string][]byte)}
}

func (m *memoryCache) Get(_ context.Context, key string, dest any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return ErrMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
	if m.onSet != nil {
		m.onSet()
	}
	return nil
}

func (m *memoryCache) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
		m.deleted = append(m.deleted, k)
	}
	return nil
}

type courseRating struct {
	Course string `json:"course"`
	Rating string `json:"rating"`
}

func TestFindAndCache(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("miss populates cache and hit skips fetch", func(t *testing.T) {
		c := newMemoryCache()
		var g Group
		calls := 0
		fetch := func(ctx context.Context) ([]courseRating, error) {
			calls++
			return []courseRating{{Course: "Java Bootcamp", Rating: "3"}}, nil
		}

		first, err := FindAndCache(ctx, c, &g, "trainer:jdoe", time.Minute, false, logger, fetch)
		require.NoError(t, err)
		second, err := FindAndCache(ctx, c, &g, "trainer:jdoe", time.Minute, false, logger, fetch)
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.Equal(t, first, second)
		assert.Equal(t, "3", second[0].Rating)
	})

	t.Run("fetch error is returned and not cached", func(t *testing.T) {
		c := newMemoryCache()
		var g Group
		boom := errors.New("storage down")

		_, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, func(ctx context.Context) (int, error) {
			return 0, boom
		})

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, c.data)
	})

	t.Run("cache error degrades to fetch", func(t *testing.T) {
		c := newMemoryCache()
		c.getErr = errors.New("connection refused")
		var g Group

		v, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, func(ctx context.Context) (string, error) {
			return "N/A", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "N/A", v)
	})

	t.Run("nil cacher passes through", func(t *testing.T) {
		var g Group
		v, err := FindAndCache[int](ctx, nil, &g, "k", time.Minute, true, logger, func(ctx context.Context) (int, error) {
			return 5, nil
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, v)
	})
}

func TestFindAndCache_Invalidation(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("fill in flight across invalidate is not stored", func(t *testing.T) {
		c := newMemoryCache()
		var g Group
		fetched := make(chan struct{})
		release := make(chan struct{})
		rating := "2"
		fetch := func(ctx context.Context) (string, error) {
			r := rating
			if r == "2" {
				close(fetched)
				<-release
			}
			return r, nil
		}

		done := make(chan string)
		go func() {
			v, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, fetch)
			assert.NoError(t, err)
			done <- v
		}()

		<-fetched
		rating = "3"
		require.NoError(t, g.Invalidate(ctx, c, "k"))
		close(release)

		assert.Equal(t, "2", <-done)
		assert.False(t, c.has("k"))

		v, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, fetch)
		require.NoError(t, err)
		assert.Equal(t, "3", v)
		assert.True(t, c.has("k"))
	})

	t.Run("invalidate racing the write removes it", func(t *testing.T) {
		c := newMemoryCache()
		var g Group
		c.onSet = func() {
			c.onSet = nil
			assert.NoError(t, g.Invalidate(ctx, c, "k"))
		}

		v, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, func(ctx context.Context) (int, error) {
			return 7, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 7, v)
		assert.False(t, c.has("k"))
		assert.Equal(t, []string{"k", "k"}, c.deleted)
	})

	t.Run("later callers do not join a fill started before invalidate", func(t *testing.T) {
		c := newMemoryCache()
		var g Group
		started := make(chan struct{}, 2)
		release := make(chan struct{})
		var mu sync.Mutex
		calls := 0
		fetch := func(ctx context.Context) (int, error) {
			mu.Lock()
			calls++
			n := calls
			mu.Unlock()
			if n == 1 {
				started <- struct{}{}
				<-release
			}
			return n, nil
		}

		first := make(chan int)
		go func() {
			v, _ := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, fetch)
			first <- v
		}()
		<-started
		require.NoError(t, g.Invalidate(ctx, c, "k"))

		v, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, logger, fetch)
		require.NoError(t, err)
		assert.Equal(t, 2, v)

		close(release)
		assert.Equal(t, 1, <-first)
	})
}

func TestFindAndCache_CallerCancellation(t *testing.T) {
	c := newMemoryCache()
	var g Group
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	fetch := func(ctx context.Context) (string, error) {
		once.Do(func() { close(started) })
		<-release
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return "4", nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error)
	go func() {
		_, err := FindAndCache(ctx, c, &g, "k", time.Minute, false, zap.NewNop(), fetch)
		firstErr <- err
	}()
	<-started

	second := make(chan string)
	go func() {
		v, err := FindAndCache(context.Background(), c, &g, "k", time.Minute, false, zap.NewNop(), fetch)
		assert.NoError(t, err)
		second <- v
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, "4", <-second)
	assert.True(t, c.has("k"))
}

func TestAddTTLJitter(t *testing.T) {
	assert.Equal(t, 10*time.Second, addTTLJitter(10*time.Second))
	assert.Equal(t, time.Duration(0), addTTLJitter(0))

	for i := 0; i < 50; i++ {
		got := addTTLJitter(10 * time.Minute)
		assert.GreaterOrEqual(t, got, 10*time.Minute-15*time.Second)
		assert.Less(t, got, 10*time.Minute+15*time.Second)
	}
}
