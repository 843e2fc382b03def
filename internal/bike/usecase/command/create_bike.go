package command

import (
	"context"
	"strings"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/kafka"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/validation"
)

// CreateBikeCommand represents the command to create a new bike. Pointer
// fields distinguish an omitted value from an explicit zero.
type CreateBikeCommand struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
	Stock      *int     `json:"stock" validate:"required,gte=0"`
	CategoryID *uint    `json:"category_id" validate:"required"`
}

// CreateBikeHandler handles bike creation command
type CreateBikeHandler struct {
	repo       domain.BikeRepository
	categories domain.CategoryFinder
	validator  *validation.Validator
	publisher  kafka.EventPublisher
}

// NewCreateBikeHandler creates a new create bike handler
func NewCreateBikeHandler(
	repo domain.BikeRepository,
	categories domain.CategoryFinder,
	validator *validation.Validator,
	publisher kafka.EventPublisher,
) *CreateBikeHandler {
	return &CreateBikeHandler{repo: repo, categories: categories, validator: validator, publisher: publisher}
}

// Handle executes the create bike command
func (h *CreateBikeHandler) Handle(ctx context.Context, cmd CreateBikeCommand) (*domain.Bike, error) {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if err := h.validator.Struct(cmd); err != nil {
		return nil, err
	}

	// Check that the category exists
	if _, err := h.categories.FindByID(ctx, *cmd.CategoryID); err != nil {
		return nil, err
	}

	bike := &domain.Bike{
		Name:       cmd.Name,
		Price:      *cmd.Price,
		Stock:      *cmd.Stock,
		CategoryID: *cmd.CategoryID,
	}
	if err := h.repo.Create(ctx, bike); err != nil {
		logger.Error(ctx).Err(err).Str("name", cmd.Name).Msg("Failed to create bike")
		return nil, err
	}

	logger.Info(ctx).
		Uint("bike_id", bike.ID).
		Str("name", bike.Name).
		Uint("category_id", bike.CategoryID).
		Msg("Bike created")
	publish(ctx, h.publisher, kafka.EventTypeBikeCreated, bike.ID, bike)
	return bike, nil
}
