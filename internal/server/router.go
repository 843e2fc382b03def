package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"gorm.io/gorm"

	bikehttp "github.com/tair/bikeshop/internal/bike/delivery/http"
	categoryhttp "github.com/tair/bikeshop/internal/category/delivery/http"
	_ "github.com/tair/bikeshop/internal/docs"
	"github.com/tair/bikeshop/pkg/apperrors"
	"github.com/tair/bikeshop/pkg/logger"
	"github.com/tair/bikeshop/pkg/middleware"
	"github.com/tair/bikeshop/pkg/response"
)

// NewHandler assembles the HTTP surface: resource routes, health, metrics
// and Swagger UI behind the middleware chain, wrapped in CORS.
func NewHandler(
	categories *categoryhttp.CategoryHandler,
	bikes *bikehttp.BikeHandler,
	db *gorm.DB,
	gatherer prometheus.Gatherer,
	mwConfig *middleware.Config,
) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.ErrorMessage(w, apperrors.ErrCodeNotFound, "resource not found")
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusMethodNotAllowed, response.Envelope{Success: false, Error: "method not allowed"})
	})

	middleware.Register(router, mwConfig)

	categories.RegisterRoutes(router)
	bikes.RegisterRoutes(router)

	RegisterHealthCheck(router, db)

	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	router.Handle("/", http.RedirectHandler("/swagger/index.html", http.StatusFound)).Methods(http.MethodGet)

	logger.Logger.Info().
		Str("metrics_endpoint", "/metrics").
		Str("swagger", "/swagger/index.html").
		Msg("HTTP routes registered")

	return middleware.SetupCORS(mwConfig)(router)
}

// RegisterHealthCheck exposes GET /health, which pings the database
func RegisterHealthCheck(router *mux.Router, db *gorm.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(r.Context())
		}
		if err != nil {
			logger.Error(r.Context()).Err(err).Msg("Health check failed")
			response.JSON(w, http.StatusServiceUnavailable, response.Envelope{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		response.JSON(w, http.StatusOK, response.Envelope{
			Success: true,
			Message: "Bikeshop service is healthy",
		})
	}).Methods(http.MethodGet)
}
