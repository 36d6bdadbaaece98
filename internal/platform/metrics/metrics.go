package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP-level Prometheus metrics shared by every server.
type Metrics struct {
	RequestDuration *prometheus.HistogramVec
}

var shared = &Metrics{
	RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "polyglot_http_request_duration_seconds",
		Help:    "HTTP request latency by server, route and status",
		Buckets: prometheus.DefBuckets,
	}, []string{"server", "route", "status"}),
}

// New returns the process-wide metrics. promauto registers on first use, so
// every caller shares one set of collectors.
func New() *Metrics {
	return shared
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware observes request latency labelled by the matched chi route pattern.
func (m *Metrics) Middleware(server string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			m.RequestDuration.
				WithLabelValues(server, route, strconv.Itoa(ww.Status())).
				Observe(time.Since(start).Seconds())
		})
	}
}
