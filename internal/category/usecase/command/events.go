package command

import (
	"context"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
)

// publish emits an inventory event. Failures are logged and swallowed: the
// store change has already been committed.
func publish(ctx context.Context, publisher kafka.EventPublisher, eventType string, category *domain.Category) {
	err := publisher.Publish(ctx, kafka.InventoryEvent{
		EventType:  eventType,
		Resource:   kafka.ResourceCategory,
		ResourceID: category.ID,
		Payload:    category,
	})
	if err != nil {
		logger.Warn(ctx).Err(err).
			Str("event_type", eventType).
			Uint("category_id", category.ID).
			Msg("Failed to publish category event")
	}
}

// invalidate drops the cached category and every cached bike, since bikes
// embed the category name.
func invalidate(ctx context.Context, c cache.Cache, id uint) {
	if err := c.Delete(ctx, cache.Key(kafka.ResourceCategory, id)); err != nil {
		logger.Warn(ctx).Err(err).Uint("category_id", id).Msg("Failed to evict category from cache")
	}
	if err := c.DeletePrefix(ctx, cache.Prefix(kafka.ResourceBike)); err != nil {
		logger.Warn(ctx).Err(err).Uint("category_id", id).Msg("Failed to evict bikes from cache")
	}
}
