package middleware

import (
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/trip-companion/internal/metrics"
)

// NewMetricsHandler returns a middleware that counts requests and observes
// their latency, labelled by chi route pattern rather than raw path so that
// activity IDs do not explode label cardinality.
func NewMetricsHandler(c *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			route := routePattern(r)
			c.Requests.WithLabelValues(r.Method, route, strconv.Itoa(ww.Status())).Inc()
			c.RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
