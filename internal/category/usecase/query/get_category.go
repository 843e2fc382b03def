package query

import (
	"context"
	"errors"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
)

// GetCategoryQuery represents the query to get a category by ID
type GetCategoryQuery struct {
	ID uint
}

// GetCategoryHandler handles get category query with a cache-aside lookup
type GetCategoryHandler struct {
	repo  domain.CategoryRepository
	cache cache.Cache
	cfg   cache.Config
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(repo domain.CategoryRepository, c cache.Cache, cfg cache.Config) *GetCategoryHandler {
	return &GetCategoryHandler{repo: repo, cache: c, cfg: cfg}
}

// Handle executes the get category query
func (h *GetCategoryHandler) Handle(ctx context.Context, query GetCategoryQuery) (*domain.Category, error) {
	key := cache.Key(kafka.ResourceCategory, query.ID)

	var cached domain.Category
	err := cache.GetJSON(ctx, h.cache, key, &cached)
	if err == nil {
		logger.Debug(ctx).Uint("category_id", query.ID).Msg("Category found in cache")
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Cache read failed")
	}

	category, err := h.repo.FindByID(ctx, query.ID)
	if err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, h.cache, key, category, h.cfg.TTL); err != nil {
		logger.Warn(ctx).Err(err).Str("key", key).Msg("Failed to cache category")
	}
	return category, nil
}
