package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tair/bikeshop/pkg/metrics"
)

// MetricsMiddleware records Prometheus metrics labelled by route template
func MetricsMiddleware(m *metrics.HTTPMetrics) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			m.InFlight.Inc()
			defer m.InFlight.Dec()

			rw := newStatusRecorder(w)
			next.ServeHTTP(rw, r)

			m.ObserveRequest(r.Method, routeTemplate(r), strconv.Itoa(rw.statusCode), time.Since(start), rw.size)
		})
	}
}
