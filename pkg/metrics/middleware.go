package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HTTPMiddleware returns an HTTP middleware that records request metrics.
// Paths are labeled by chi route pattern, not raw URL, to bound cardinality.
func HTTPMiddleware(registry *Registry) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			registry.httpActiveRequests.Inc()
			defer registry.httpActiveRequests.Dec()

			next.ServeHTTP(ww, r)

			path := chi.RouteContext(r.Context()).RoutePattern()
			if path == "" {
				path = "unmatched"
			}

			registry.httpRequestsTotal.
				WithLabelValues(r.Method, path, strconv.Itoa(ww.Status())).
				Inc()
			registry.httpRequestDuration.
				WithLabelValues(r.Method, path).
				Observe(time.Since(start).Seconds())
		})
	}
}
