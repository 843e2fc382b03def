package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/tair/bikeshop/pkg/metrics"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"id":1}`))
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	var captured string
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bikes", nil))

	_, err := uuid.Parse(captured)
	require.NoError(t, err)
	assert.Equal(t, captured, rec.Header().Get(RequestIDHeader))
}

func TestRequestIDMiddlewareKeepsValidID(t *testing.T) {
	provided := uuid.New().String()
	var captured string
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
	req.Header.Set(RequestIDHeader, provided)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, provided, captured)
}

func TestRequestIDMiddlewareReplacesInvalidID(t *testing.T) {
	var captured string
	handler := RequestIDMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/bikes", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.NotEqual(t, "<script>", captured)
	_, err := uuid.Parse(captured)
	assert.NoError(t, err)
}

func TestRecoveryMiddleware(t *testing.T) {
	m := metrics.NewHTTPMetrics(prometheus.NewRegistry())
	handler := RecoveryMiddleware(m)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("flat tyre")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bikes", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "internal server error", body["error"])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PanicRecoveries))
}

func TestRateLimitMiddleware(t *testing.T) {
	m := metrics.NewHTTPMetrics(prometheus.NewRegistry())
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	handler := RateLimitMiddleware(limiter, m)(http.HandlerFunc(okHandler))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/bikes", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/bikes", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Equal(t, "1", second.Header().Get("Retry-After"))
	assert.JSONEq(t, `{"success":false,"error":"rate limit exceeded"}`, second.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RateLimitRejects))
}

func TestSecurityHeadersSkipCSPForSwagger(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(okHandler))

	api := httptest.NewRecorder()
	handler.ServeHTTP(api, httptest.NewRequest(http.MethodGet, "/bikes", nil))
	assert.Equal(t, "nosniff", api.Header().Get("X-Content-Type-Options"))
	assert.NotEmpty(t, api.Header().Get("Content-Security-Policy"))

	docs := httptest.NewRecorder()
	handler.ServeHTTP(docs, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, "DENY", docs.Header().Get("X-Frame-Options"))
	assert.Empty(t, docs.Header().Get("Content-Security-Policy"))
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := metrics.NewHTTPMetrics(prometheus.NewRegistry())
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/bikes/{id:[0-9]+}", okHandler).Methods(http.MethodGet)

	for _, path := range []string{"/bikes/1", "/bikes/2", "/bikes/3"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/bikes/{id:[0-9]+}", "200")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}

func TestRegisterFullChain(t *testing.T) {
	m := metrics.NewHTTPMetrics(prometheus.NewRegistry())
	router := mux.NewRouter()
	Register(router, DefaultConfig(m))
	router.HandleFunc("/categories", func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, RequestIDFromContext(r.Context()))
		okHandler(w, r)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/categories", "200")))
}
