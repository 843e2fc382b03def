package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/bikeshop/internal/bike/domain"
	"github.com/tair/bikeshop/internal/bike/usecase/command"
	"github.com/tair/bikeshop/internal/bike/usecase/query"
	"github.com/tair/bikeshop/pkg/apperrors"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/metrics"
	"github.com/tair/bikeshop/pkg/response"
)

// BikeHandler handles HTTP requests for bikes using CQRS pattern
type BikeHandler struct {
	// Command handlers
	createHandler *command.CreateBikeHandler
	updateHandler *command.UpdateBikeHandler
	deleteHandler *command.DeleteBikeHandler

	// Query handlers
	getHandler  *query.GetBikeHandler
	listHandler *query.ListBikesHandler

	repo    domain.BikeRepository
	metrics *metrics.HTTPMetrics
}

// NewBikeHandler creates a new bike handler
func NewBikeHandler(
	createHandler *command.CreateBikeHandler,
	updateHandler *command.UpdateBikeHandler,
	deleteHandler *command.DeleteBikeHandler,
	getHandler *query.GetBikeHandler,
	listHandler *query.ListBikesHandler,
	repo domain.BikeRepository,
	m *metrics.HTTPMetrics,
) *BikeHandler {
	return &BikeHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		repo:          repo,
		metrics:       m,
	}
}

// BikeRequest is the body of create and update requests. Every field is
// required on create; update only changes the fields present.
type BikeRequest struct {
	Name       *string  `json:"name" example:"Trek 820"`
	Price      *float64 `json:"price" example:"500"`
	Stock      *int     `json:"stock" example:"10"`
	CategoryID *uint    `json:"category_id" example:"1"`
}

// BikeResponse is the read representation of a bike; Category holds the
// category name.
type BikeResponse struct {
	ID       uint    `json:"id" example:"1"`
	Name     string  `json:"name" example:"Trek 820"`
	Price    float64 `json:"price" example:"500"`
	Stock    int     `json:"stock" example:"10"`
	Category string  `json:"category" example:"Горный"`
}

func toResponse(b *domain.Bike) BikeResponse {
	return BikeResponse{
		ID:       b.ID,
		Name:     b.Name,
		Price:    b.Price,
		Stock:    b.Stock,
		Category: b.Category.Name,
	}
}

func (h *BikeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/bikes", h.ListBikes).Methods(http.MethodGet)
	router.HandleFunc("/bikes", h.CreateBike).Methods(http.MethodPost)
	router.HandleFunc("/bikes/{id:[0-9]+}", h.GetBike).Methods(http.MethodGet)
	router.HandleFunc("/bikes/{id:[0-9]+}", h.UpdateBike).Methods(http.MethodPut)
	router.HandleFunc("/bikes/{id:[0-9]+}", h.DeleteBike).Methods(http.MethodDelete)
}

// ListBikes godoc
// @Summary List bikes
// @Description Get every bike ordered by id
// @Tags Bikes
// @Produce json
// @Success 200 {array} BikeResponse
// @Failure 500 {object} response.Envelope
// @Router /bikes [get]
func (h *BikeHandler) ListBikes(w http.ResponseWriter, r *http.Request) {
	bikes, err := h.listHandler.Handle(r.Context(), query.ListBikesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list bikes")
		response.Error(w, err)
		return
	}

	out := make([]BikeResponse, 0, len(bikes))
	for i := range bikes {
		out = append(out, toResponse(&bikes[i]))
	}
	response.JSON(w, http.StatusOK, out)
}

// CreateBike godoc
// @Summary Create bike
// @Description Create a new bike in an existing category
// @Tags Bikes
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Bike data"
// @Success 201 {object} BikeResponse
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope "Category not found"
// @Router /bikes [post]
func (h *BikeHandler) CreateBike(w http.ResponseWriter, r *http.Request) {
	var req BikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorMessage(w, apperrors.ErrCodeInvalidRequest, "invalid request body")
		return
	}

	cmd := command.CreateBikeCommand{
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	}
	if req.Name != nil {
		cmd.Name = *req.Name
	}

	bike, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.updateInventoryMetric(r.Context())
	response.JSON(w, http.StatusCreated, toResponse(bike))
}

// GetBike godoc
// @Summary Get bike by ID
// @Description Get a specific bike by its ID
// @Tags Bikes
// @Produce json
// @Param id path int true "Bike ID"
// @Success 200 {object} BikeResponse
// @Failure 404 {object} response.Envelope
// @Router /bikes/{id} [get]
func (h *BikeHandler) GetBike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	bike, err := h.getHandler.Handle(r.Context(), query.GetBikeQuery{ID: id})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(bike))
}

// UpdateBike godoc
// @Summary Update bike
// @Description Partially update a bike; omitted fields keep their values
// @Tags Bikes
// @Accept json
// @Produce json
// @Param id path int true "Bike ID"
// @Param request body BikeRequest true "Fields to change"
// @Success 200 {object} BikeResponse
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /bikes/{id} [put]
func (h *BikeHandler) UpdateBike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req BikeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorMessage(w, apperrors.ErrCodeInvalidRequest, "invalid request body")
		return
	}

	bike, err := h.updateHandler.Handle(r.Context(), command.UpdateBikeCommand{
		ID:         id,
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, toResponse(bike))
}

// DeleteBike godoc
// @Summary Delete bike
// @Description Delete a bike by its ID
// @Tags Bikes
// @Param id path int true "Bike ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteBikeCommand{ID: id}); err != nil {
		response.Error(w, err)
		return
	}

	h.updateInventoryMetric(r.Context())
	response.NoContent(w)
}

// updateInventoryMetric updates the stored bikes gauge
func (h *BikeHandler) updateInventoryMetric(ctx context.Context) {
	count, err := h.repo.Count(ctx)
	if err == nil {
		h.metrics.SetInventory("bike", count)
	}
}

func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, domain.ErrBikeNotFound)
		return 0, false
	}
	return uint(id), true
}
