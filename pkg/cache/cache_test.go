package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/bikeshop/pkg/circuitbreaker"
)

func TestNoopCacheAlwaysMisses(t *testing.T) {
	ctx := context.Background()
	c := NewNoopCache()

	assert.NoError(t, c.Set(ctx, "bike:1", []byte(`{}`), time.Minute))
	_, err := c.Get(ctx, "bike:1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, c.Delete(ctx, "bike:1"))
	assert.NoError(t, c.DeletePrefix(ctx, "bike:"))
}

func TestJSONHelpersPropagateMiss(t *testing.T) {
	var dest map[string]any
	err := GetJSON(context.Background(), NewNoopCache(), "category:1", &dest)
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, SetJSON(context.Background(), NewNoopCache(), "category:1", map[string]any{"id": 1}, 0))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "bike:12", Key("bike", 12))
	assert.Equal(t, "category:", Prefix("category"))
}

type failingCache struct {
	NoopCache
	calls int
}

func (c *failingCache) Get(context.Context, string) ([]byte, error) {
	c.calls++
	return nil, errors.New("connection refused")
}

func TestBreakerCacheShortCircuits(t *testing.T) {
	ctx := context.Background()
	inner := &failingCache{}
	c := NewBreakerCache(inner, circuitbreaker.New("redis", circuitbreaker.Config{MaxFailures: 2, OpenTimeout: time.Hour}))

	for i := 0; i < 2; i++ {
		_, err := c.Get(ctx, "bike:1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheMiss)
	}

	_, err := c.Get(ctx, "bike:1")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Equal(t, 2, inner.calls)
}

func TestBreakerCacheMissIsNotAFailure(t *testing.T) {
	ctx := context.Background()
	breaker := circuitbreaker.New("redis", circuitbreaker.Config{MaxFailures: 1, OpenTimeout: time.Hour})
	c := NewBreakerCache(NewNoopCache(), breaker)

	for i := 0; i < 3; i++ {
		_, err := c.Get(ctx, "bike:1")
		assert.ErrorIs(t, err, ErrCacheMiss)
	}
	assert.Equal(t, circuitbreaker.StateClosed, breaker.State())
}
