package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrCacheMiss is returned by Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// DefaultTTL is used when a zero TTL is configured.
const DefaultTTL = 15 * time.Minute

// Config controls entry lifetime
type Config struct {
	TTL time.Duration
}

// Key builds the cache key for one record of resource
func Key(resource string, id uint) string {
	return fmt.Sprintf("%s:%d", resource, id)
}

// Prefix returns the key prefix shared by every record of resource
func Prefix(resource string) string {
	return resource + ":"
}

// Cache is a byte-oriented key/value store with expiry
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// GetJSON loads key into dest
func GetJSON(ctx context.Context, c Cache, key string, dest any) error {
	data, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// SetJSON stores value under key as JSON
func SetJSON(ctx context.Context, c Cache, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}

// NoopCache never stores anything; every Get is a miss.
type NoopCache struct{}

// NewNoopCache creates a cache that stores nothing
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (NoopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NoopCache) Delete(context.Context, ...string) error {
	return nil
}

func (NoopCache) DeletePrefix(context.Context, string) error {
	return nil
}
