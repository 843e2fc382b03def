package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/bikeshop/internal/category/domain"
	"github.com/tair/bikeshop/internal/category/usecase/command"
	"github.com/tair/bikeshop/internal/category/usecase/query"
	"github.com/tair/bikeshop/pkg/apperrors"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/metrics"
	"github.com/tair/bikeshop/pkg/response"
)

// CategoryHandler handles HTTP requests for categories using CQRS pattern
type CategoryHandler struct {
	// Command handlers
	createHandler *command.CreateCategoryHandler
	updateHandler *command.UpdateCategoryHandler
	deleteHandler *command.DeleteCategoryHandler

	// Query handlers
	getHandler  *query.GetCategoryHandler
	listHandler *query.ListCategoriesHandler

	repo    domain.CategoryRepository
	metrics *metrics.HTTPMetrics
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(
	createHandler *command.CreateCategoryHandler,
	updateHandler *command.UpdateCategoryHandler,
	deleteHandler *command.DeleteCategoryHandler,
	getHandler *query.GetCategoryHandler,
	listHandler *query.ListCategoriesHandler,
	repo domain.CategoryRepository,
	m *metrics.HTTPMetrics,
) *CategoryHandler {
	return &CategoryHandler{
		createHandler: createHandler,
		updateHandler: updateHandler,
		deleteHandler: deleteHandler,
		getHandler:    getHandler,
		listHandler:   listHandler,
		repo:          repo,
		metrics:       m,
	}
}

// CategoryRequest is the body of create and update requests
type CategoryRequest struct {
	Name string `json:"name" example:"Горный"`
}

func (h *CategoryHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/categories", h.ListCategories).Methods(http.MethodGet)
	router.HandleFunc("/categories", h.CreateCategory).Methods(http.MethodPost)
	router.HandleFunc("/categories/{id:[0-9]+}", h.GetCategory).Methods(http.MethodGet)
	router.HandleFunc("/categories/{id:[0-9]+}", h.UpdateCategory).Methods(http.MethodPut)
	router.HandleFunc("/categories/{id:[0-9]+}", h.DeleteCategory).Methods(http.MethodDelete)
}

// ListCategories godoc
// @Summary List categories
// @Description Get every category ordered by id
// @Tags Categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 500 {object} response.Envelope
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.listHandler.Handle(r.Context(), query.ListCategoriesQuery{})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list categories")
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, categories)
}

// CreateCategory godoc
// @Summary Create category
// @Description Create a new category
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} domain.Category
// @Failure 400 {object} response.Envelope
// @Router /categories [post]
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorMessage(w, apperrors.ErrCodeInvalidRequest, "invalid request body")
		return
	}

	category, err := h.createHandler.Handle(r.Context(), command.CreateCategoryCommand{Name: req.Name})
	if err != nil {
		response.Error(w, err)
		return
	}

	h.updateInventoryMetric(r.Context())
	response.JSON(w, http.StatusCreated, category)
}

// GetCategory godoc
// @Summary Get category by ID
// @Description Get a specific category by its ID
// @Tags Categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} domain.Category
// @Failure 404 {object} response.Envelope
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	category, err := h.getHandler.Handle(r.Context(), query.GetCategoryQuery{ID: id})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, category)
}

// UpdateCategory godoc
// @Summary Update category
// @Description Rename a category
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} domain.Category
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.ErrorMessage(w, apperrors.ErrCodeInvalidRequest, "invalid request body")
		return
	}

	category, err := h.updateHandler.Handle(r.Context(), command.UpdateCategoryCommand{ID: id, Name: req.Name})
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, category)
}

// DeleteCategory godoc
// @Summary Delete category
// @Description Delete a category that no bike references
// @Tags Categories
// @Param id path int true "Category ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCategoryCommand{ID: id}); err != nil {
		response.Error(w, err)
		return
	}

	h.updateInventoryMetric(r.Context())
	response.NoContent(w)
}

// updateInventoryMetric refreshes the stored categories gauge
func (h *CategoryHandler) updateInventoryMetric(ctx context.Context) {
	count, err := h.repo.Count(ctx)
	if err == nil {
		h.metrics.SetInventory("category", count)
	}
}

// pathID parses the {id} route variable. Ids that do not fit a uint32 can
// never have been issued and are reported as not found.
func pathID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Error(w, domain.ErrCategoryNotFound)
		return 0, false
	}
	return uint(id), true
}
