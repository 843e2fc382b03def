package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	bikehttp "github.com/tair/bikeshop/internal/bike/delivery/http"
	categoryhttp "github.com/tair/bikeshop/internal/category/delivery/http"
	"github.com/tair/bikeshop/pkg/database"
	"github.com/tair/bikeshop/pkg/metrics"
	"github.com/tair/bikeshop/pkg/middleware"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(database.Config{Driver: database.DriverSQLite, SQLitePath: ":memory:"})
	require.NoError(t, err)
	return db
}

func TestHealthCheck(t *testing.T) {
	db := openDB(t)
	router := mux.NewRouter()
	RegisterHealthCheck(router, db)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Bikeshop service is healthy"}`, rec.Body.String())

	require.NoError(t, database.Close(db))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Database unavailable"}`, rec.Body.String())
}

func TestNewHandlerFallbacks(t *testing.T) {
	db := openDB(t)
	t.Cleanup(func() { _ = database.Close(db) })

	reg := prometheus.NewRegistry()
	h := NewHandler(
		&categoryhttp.CategoryHandler{},
		&bikehttp.BikeHandler{},
		db,
		reg,
		middleware.DefaultConfig(metrics.NewHTTPMetrics(reg)),
	)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/unknown", http.StatusNotFound},
		{http.MethodPatch, "/categories", http.StatusMethodNotAllowed},
		{http.MethodGet, "/", http.StatusFound},
		{http.MethodGet, "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	db := openDB(t)
	t.Cleanup(func() { _ = database.Close(db) })

	reg := prometheus.NewRegistry()
	h := NewHandler(&categoryhttp.CategoryHandler{}, &bikehttp.BikeHandler{}, db, reg,
		middleware.DefaultConfig(metrics.NewHTTPMetrics(reg)))

	req := httptest.NewRequest(http.MethodOptions, "/bikes", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
