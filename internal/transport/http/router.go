package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"polyglot/internal/platform/metrics"
	"polyglot/internal/platform/middleware"
	"polyglot/internal/ratelimit"
	"polyglot/pkg/platform/httputil"
)

// RouterDeps collects what the front-door router needs besides the handler.
type RouterDeps struct {
	Validator TokenValidator
	Sessions  SessionResolver
	Limiter   *ratelimit.Limiter
	Logger    *slog.Logger
}

// NewRouter wires the public front-door endpoints.
func NewRouter(h *Handler, deps RouterDeps) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.Common(logger)...)
	r.Use(metrics.New().Middleware("frontdoor"))

	r.Get("/", httputil.WriteRunning)
	r.Handle("/metrics", metrics.Handler())
	r.Get("/health", h.handleHealth)

	r.Group(func(r chi.Router) {
		r.Use(OptionalAuth(deps.Validator, deps.Sessions, logger))
		h.Register(r, deps.Limiter, logger)
	})
	return r
}

// Register mounts the session-aware routes on r.
func (h *Handler) Register(r chi.Router, limiter *ratelimit.Limiter, logger *slog.Logger) {
	r.With(ratelimit.RateLimitByIP(limiter, logger)).Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Get("/session", h.handleSessionStatus)

	r.Route("/cart", func(r chi.Router) {
		r.Get("/", h.handleReadCart)
		r.Post("/update", h.handleUpdateCart)
		r.Post("/clear", h.handleClearCart)
	})
	r.Post("/purchase", h.handlePurchase)

	r.Get("/statements", h.handleListStatements)
	r.Get("/statements/{statementID}", h.handleReadStatement)

	r.Post("/follow", h.handleFollow)
	r.Get("/recommendations", h.handleRecommend)
	r.Post("/products/search", h.handleFetchProducts)
	r.Get("/logs", h.handleReadLogs)
}
