package command

import (
	"context"
	"strings"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/cache"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/validation"
)

// UpdateCategoryCommand represents the command to rename a category
type UpdateCategoryCommand struct {
	ID   uint   `json:"-"`
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	repo      domain.CategoryRepository
	validator *validation.Validator
	cache     cache.Cache
	publisher kafka.EventPublisher
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(
	repo domain.CategoryRepository,
	validator *validation.Validator,
	c cache.Cache,
	publisher kafka.EventPublisher,
) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{repo: repo, validator: validator, cache: c, publisher: publisher}
}

// Handle executes the update category command
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := h.validator.Struct(cmd); err != nil {
		return nil, err
	}

	if err := h.repo.Update(ctx, &domain.Category{ID: cmd.ID, Name: cmd.Name}); err != nil {
		logger.Error(ctx).Err(err).Uint("category_id", cmd.ID).Msg("Failed to update category")
		return nil, err
	}
	invalidate(ctx, h.cache, cmd.ID)

	category, err := h.repo.FindByID(ctx, cmd.ID)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx).Uint("category_id", category.ID).Str("name", category.Name).Msg("Category updated")
	publish(ctx, h.publisher, kafka.EventTypeCategoryUpdated, category)
	return category, nil
}
