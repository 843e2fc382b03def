package command

import (
	"context"
	"fmt"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/apperrors"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
)

// DeleteCategoryCommand represents the command to delete a category
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	repo      domain.CategoryRepository
	bikes     domain.BikeCounter
	cache     cache.Cache
	publisher kafka.EventPublisher
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(
	repo domain.CategoryRepository,
	bikes domain.BikeCounter,
	c cache.Cache,
	publisher kafka.EventPublisher,
) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{repo: repo, bikes: bikes, cache: c, publisher: publisher}
}

// Handle executes the delete category command. A category that bikes still
// reference is rejected with ErrCategoryInUse.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return err
	}

	inUse, err := h.bikes.CountByCategory(ctx, cmd.ID)
	if err != nil {
		return fmt.Errorf("count bikes in category %d: %w", cmd.ID, err)
	}
	if inUse > 0 {
		return apperrors.WrapWithContext(apperrors.ErrCodeConflict, domain.ErrCategoryInUse.Message, domain.ErrCategoryInUse,
			map[string]any{"category_id": cmd.ID, "bikes": inUse})
	}

	if err := h.repo.Delete(ctx, cmd.ID); err != nil {
		logger.Error(ctx).Err(err).Uint("category_id", cmd.ID).Msg("Failed to delete category")
		return err
	}
	invalidate(ctx, h.cache, cmd.ID)

	logger.Info(ctx).Uint("category_id", cmd.ID).Msg("Category deleted")
	publish(ctx, h.publisher, kafka.EventTypeCategoryDeleted, category)
	return nil
}
