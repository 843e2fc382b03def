package command

import (
	"context"
	"strings"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/validation"
)

// CreateCategoryCommand represents the command to create a new category
type CreateCategoryCommand struct {
	Name string `json:"name" validate:"required,max=50"`
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	repo      domain.CategoryRepository
	validator *validation.Validator
	publisher kafka.EventPublisher
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(repo domain.CategoryRepository, validator *validation.Validator, publisher kafka.EventPublisher) *CreateCategoryHandler {
	return &CreateCategoryHandler{repo: repo, validator: validator, publisher: publisher}
}

// Handle executes the create category command
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := h.validator.Struct(cmd); err != nil {
		return nil, err
	}

	category := &domain.Category{Name: cmd.Name}
	if err := h.repo.Create(ctx, category); err != nil {
		logger.Error(ctx).Err(err).Str("name", cmd.Name).Msg("Failed to create category")
		return nil, err
	}

	logger.Info(ctx).Uint("category_id", category.ID).Str("name", category.Name).Msg("Category created")
	publish(ctx, h.publisher, kafka.EventTypeCategoryCreated, category)
	return category, nil
}
