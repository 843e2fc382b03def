package command

import (
	"context"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
)

func publish(ctx context.Context, publisher kafka.EventPublisher, eventType string, id uint, bike *domain.Bike) {
	event := kafka.InventoryEvent{
		EventType:  eventType,
		Resource:   kafka.ResourceBike,
		ResourceID: id,
	}
	if bike != nil {
		event.Payload = bike
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn(ctx).Err(err).
			Str("event_type", eventType).
			Uint("bike_id", id).
			Msg("Failed to publish bike event")
	}
}

func invalidate(ctx context.Context, c cache.Cache, id uint) {
	if err := c.Delete(ctx, cache.Key(kafka.ResourceBike, id)); err != nil {
		logger.Warn(ctx).Err(err).Uint("bike_id", id).Msg("Failed to evict bike from cache")
	}
}
