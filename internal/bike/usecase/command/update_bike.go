package command

import (
	"context"
	"strings"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/validation"
)

// UpdateBikeCommand represents a partial update; nil fields keep their
// stored values.
type UpdateBikeCommand struct {
	ID         uint     `json:"-"`
	Name       *string  `json:"name" validate:"omitempty,min=1,max=100"`
	Price      *float64 `json:"price" validate:"omitempty,gte=0"`
	Stock      *int     `json:"stock" validate:"omitempty,gte=0"`
	CategoryID *uint    `json:"category_id"`
}

// UpdateBikeHandler handles bike update command
type UpdateBikeHandler struct {
	repo       domain.BikeRepository
	categories domain.CategoryFinder
	validator  *validation.Validator
	cache      cache.Cache
	publisher  kafka.EventPublisher
}

// NewUpdateBikeHandler creates a new update bike handler
func NewUpdateBikeHandler(
	repo domain.BikeRepository,
	categories domain.CategoryFinder,
	validator *validation.Validator,
	c cache.Cache,
	publisher kafka.EventPublisher,
) *UpdateBikeHandler {
	return &UpdateBikeHandler{repo: repo, categories: categories, validator: validator, cache: c, publisher: publisher}
}

// Handle executes the update bike command
func (h *UpdateBikeHandler) Handle(ctx context.Context, cmd UpdateBikeCommand) (*domain.Bike, error) {
	if cmd.Name != nil {
		trimmed := strings.TrimSpace(*cmd.Name)
		cmd.Name = &trimmed
	}
	if err := h.validator.Struct(cmd); err != nil {
		return nil, err
	}

	bike, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	// Update fields if provided
	if cmd.Name != nil {
		bike.Name = *cmd.Name
	}
	if cmd.Price != nil {
		bike.Price = *cmd.Price
	}
	if cmd.Stock != nil {
		bike.Stock = *cmd.Stock
	}
	if cmd.CategoryID != nil && *cmd.CategoryID != bike.CategoryID {
		if _, err := h.categories.FindByID(ctx, *cmd.CategoryID); err != nil {
			return nil, err
		}
		bike.CategoryID = *cmd.CategoryID
	}

	if err := h.repo.Update(ctx, bike); err != nil {
		logger.Error(ctx).Err(err).Uint("bike_id", cmd.ID).Msg("Failed to update bike")
		return nil, err
	}
	invalidate(ctx, h.cache, cmd.ID)

	logger.Info(ctx).Uint("bike_id", bike.ID).Int("stock", bike.Stock).Msg("Bike updated")
	publish(ctx, h.publisher, kafka.EventTypeBikeUpdated, bike.ID, bike)
	return bike, nil
}
