package command

import (
	"context"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
)

// DeleteBikeCommand represents the command to delete a bike
type DeleteBikeCommand struct {
	ID uint
}

// DeleteBikeHandler handles bike deletion command
type DeleteBikeHandler struct {
	repo      domain.BikeRepository
	cache     cache.Cache
	publisher kafka.EventPublisher
}

// NewDeleteBikeHandler creates a new delete bike handler
func NewDeleteBikeHandler(repo domain.BikeRepository, c cache.Cache, publisher kafka.EventPublisher) *DeleteBikeHandler {
	return &DeleteBikeHandler{repo: repo, cache: c, publisher: publisher}
}

// Handle executes the delete bike command
func (h *DeleteBikeHandler) Handle(ctx context.Context, cmd DeleteBikeCommand) error {
	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		return err
	}
	invalidate(ctx, h.cache, cmd.ID)

	logger.Info(ctx).Uint("bike_id", cmd.ID).Msg("Bike deleted")
	publish(ctx, h.publisher, kafka.EventTypeBikeDeleted, cmd.ID, nil)
	return nil
}
