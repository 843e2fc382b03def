package query

import (
	"context"
	"errors"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
)

// GetBikeQuery represents the query to get a bike by ID
type GetBikeQuery struct {
	ID uint
}

// GetBikeHandler handles get bike query with a cache-aside lookup
type GetBikeHandler struct {
	repo  domain.BikeRepository
	cache cache.Cache
	cfg   cache.Config
}

// NewGetBikeHandler creates a new get bike handler
func NewGetBikeHandler(repo domain.BikeRepository, c cache.Cache, cfg cache.Config) *GetBikeHandler {
	return &GetBikeHandler{repo: repo, cache: c, cfg: cfg}
}

// Handle executes the get bike query
func (h *GetBikeHandler) Handle(ctx context.Context, query GetBikeQuery) (*domain.Bike, error) {
	key := cache.Key(kafka.ResourceBike, query.ID)

	var cached domain.Bike
	err := cache.GetJSON(ctx, h.cache, key, &cached)
	if err == nil {
		logger.Debug(ctx).Uint("bike_id", query.ID).Msg("Bike found in cache")
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Cache read failed")
	}

	bike, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, h.cache, key, bike, h.cfg.TTL); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to cache bike")
	}
	return bike, nil
}
