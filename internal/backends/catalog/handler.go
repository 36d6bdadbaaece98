// Package catalog is the relational catalog/auth service: product search
// over the declarative filter table and bcrypt-backed user credentials.
package catalog

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"polyglot/contracts/wire"
	"polyglot/internal/backends"
	"polyglot/internal/catalog/filter"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/httputil"
)

// Store is the persistence the catalog handler needs.
type Store interface {
	FetchProducts(ctx context.Context, f filter.Filter) ([]id.Product, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
	UserID(ctx context.Context, username string) (id.UserID, error)
	IsAdmin(ctx context.Context, username string) (bool, error)
}

// Handler exposes the catalog store.
type Handler struct {
	store   Store
	filters *filter.Table
	logger  *slog.Logger
}

// New constructs a catalog handler. A nil table uses filter.Default.
func New(store Store, filters *filter.Table, logger *slog.Logger) *Handler {
	if filters == nil {
		filters = filter.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, filters: filters, logger: logger}
}

// Register mounts catalog endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/products/search", h.handleFetchProducts)
	r.Post("/auth/login", h.handleAuthenticate)
	r.Post("/users/id", h.handleUserID)
	r.Post("/users/admin", h.handleIsAdmin)
}

func (h *Handler) handleFetchProducts(w http.ResponseWriter, r *http.Request) {
	raw := map[string]any{}
	if r.ContentLength != 0 {
		if err := httputil.Decode(r, &raw); err != nil {
			httputil.WriteError(w, err)
			return
		}
	}
	f, err := h.filters.Normalize(raw)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	products, err := h.store.FetchProducts(r.Context(), f)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "fetch products failed")
		return
	}
	httputil.WriteSuccess(w, products)
}

func (h *Handler) handleAuthenticate(w http.ResponseWriter, r *http.Request) {
	var req wire.Credentials
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	ok, err := h.store.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "authenticate failed")
		return
	}
	httputil.WriteSuccess(w, ok)
}

func (h *Handler) handleUserID(w http.ResponseWriter, r *http.Request) {
	var req wire.Username
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	userID, err := h.store.UserID(r.Context(), req.Username)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "user not found")
		return
	}
	httputil.WriteSuccess(w, userID)
}

func (h *Handler) handleIsAdmin(w http.ResponseWriter, r *http.Request) {
	var req wire.Username
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	admin, err := h.store.IsAdmin(r.Context(), req.Username)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "user not found")
		return
	}
	httputil.WriteSuccess(w, admin)
}
