package query

import (
	"context"

	"github.com/tair/bikeshop/internal/bike/domain"
)

// ListBikesQuery represents the query to list every bike
type ListBikesQuery struct{}

// ListBikesHandler handles list bikes query
type ListBikesHandler struct {
	repo domain.BikeRepository
}

// NewListBikesHandler creates a new list bikes handler
func NewListBikesHandler(repo domain.BikeRepository) *ListBikesHandler {
	return &ListBikesHandler{repo: repo}
}

// Handle returns all bikes ordered by id
func (h *ListBikesHandler) Handle(ctx context.Context, _ ListBikesQuery) ([]domain.Bike, error) {
	return h.repo.FindAll(ctx)
}
