// Package backends holds the reference implementations of the five backing
// services the front door composes. Each subpackage owns one store and exposes
// it over the JSON envelope contract.
package backends

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"polyglot/internal/platform/metrics"
	"polyglot/internal/platform/middleware"
	"polyglot/pkg/platform/httputil"
)

// Registrar mounts a service's endpoints.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter builds the router shared by every backing service: the common
// middleware chain, a liveness answer on GET / and /metrics.
func NewRouter(server string, logger *slog.Logger, svc Registrar) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	r := chi.NewRouter()
	r.Use(middleware.Common(logger)...)
	r.Use(metrics.New().Middleware(server))

	r.Get("/", httputil.WriteRunning)
	r.Handle("/metrics", metrics.Handler())
	svc.Register(r)
	return r
}
