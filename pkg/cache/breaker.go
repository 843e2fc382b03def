package cache

import (
	"context"
	"errors"
	"time"

	"github.com/tair/bikeshop/pkg/circuitbreaker"
)

// BreakerCache guards another Cache with a circuit breaker. While the
// breaker is open every Get is a miss and writes are dropped, so an
// unreachable backend costs no round trips.
type BreakerCache struct {
	next    Cache
	breaker *circuitbreaker.Breaker
}

// NewBreakerCache wraps next
func NewBreakerCache(next Cache, breaker *circuitbreaker.Breaker) *BreakerCache {
	return &BreakerCache{next: next, breaker: breaker}
}

func (c *BreakerCache) Get(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := c.breaker.Call(func() error {
		var err error
		data, err = c.next.Get(ctx, key)
		if errors.Is(err, ErrCacheMiss) {
			return nil
		}
		return err
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrOpen) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	if data == nil {
		return nil, ErrCacheMiss
	}
	return data, nil
}

func (c *BreakerCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.breaker.Call(func() error {
		return c.next.Set(ctx, key, value, ttl)
	})
}

func (c *BreakerCache) Delete(ctx context.Context, keys ...string) error {
	return c.breaker.Call(func() error {
		return c.next.Delete(ctx, keys...)
	})
}

func (c *BreakerCache) DeletePrefix(ctx context.Context, prefix string) error {
	return c.breaker.Call(func() error {
		return c.next.DeletePrefix(ctx, prefix)
	})
}
