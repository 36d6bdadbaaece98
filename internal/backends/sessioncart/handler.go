// Package sessioncart is the key-value session and cart service.
package sessioncart

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"polyglot/contracts/wire"
	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
)

// DefaultSessionTTL applies when a create request carries no ttl.
const DefaultSessionTTL = 3600 * time.Second

// Store is the persistence the session/cart handler needs.
type Store interface {
	CreateSession(ctx context.Context, userID id.UserID, ttl time.Duration) (id.SessionToken, error)
	DropSession(ctx context.Context, userID id.UserID) (bool, error)
	SessionExists(ctx context.Context, token id.SessionToken) (bool, error)
	UserHasSession(ctx context.Context, userID id.UserID) (bool, error)
	CreateCart(ctx context.Context, userID id.UserID) (id.CartID, error)
	DeleteCart(ctx context.Context, userID id.UserID) (bool, error)
	GetCart(ctx context.Context, userID id.UserID) (id.CartID, error)
	CartExists(ctx context.Context, userID id.UserID) (bool, error)
	ResetCart(ctx context.Context, userID id.UserID) (id.CartID, error)
	UpdateCart(ctx context.Context, userID id.UserID, productID id.ProductID, delta int) (id.Cart, error)
	ReadCart(ctx context.Context, userID id.UserID) (id.Cart, error)
}

// Handler exposes the session and cart store.
type Handler struct {
	store  Store
	logger *slog.Logger
}

func New(store Store, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, logger: logger}
}

// Register mounts session and cart endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.handleCreateSession)
		r.Post("/drop", h.handleDropSession)
		r.Post("/exists", h.handleSessionExists)
		r.Post("/active", h.handleUserHasSession)
	})
	r.Route("/carts", func(r chi.Router) {
		r.Post("/", h.handleCreateCart)
		r.Post("/delete", h.handleDeleteCart)
		r.Post("/get", h.handleGetCart)
		r.Post("/exists", h.handleCartExists)
		r.Post("/reset", h.handleResetCart)
		r.Post("/update", h.handleUpdateCart)
		r.Post("/read", h.handleReadCart)
	})
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req wire.CreateSession
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	ttl := DefaultSessionTTL
	if req.TTLSeconds > 0 {
		ttl = time.Duration(req.TTLSeconds) * time.Second
	}
	token, err := h.store.CreateSession(r.Context(), req.UserID, ttl)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "create session failed")
		return
	}
	httputil.WriteSuccess(w, token)
}

// handleDropSession answers a missing session with 400 and data false, so
// callers cannot tell "no session" from "could not drop".
func (h *Handler) handleDropSession(w http.ResponseWriter, r *http.Request) {
	var req wire.UserRef
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	dropped, err := h.store.DropSession(r.Context(), req.UserID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "drop session failed")
		return
	}
	if !dropped {
		httputil.WriteErrorData(w,
			dErrors.New(dErrors.CodeValidation, "Session does not exist or could not be dropped"), false)
		return
	}
	httputil.WriteNotice(w, "", "Session dropped successfully", true)
}

func (h *Handler) handleSessionExists(w http.ResponseWriter, r *http.Request) {
	var req wire.SessionRef
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	ok, err := h.store.SessionExists(r.Context(), req.SessionID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "session lookup failed")
		return
	}
	httputil.WriteSuccess(w, ok)
}

func (h *Handler) handleUserHasSession(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "session lookup failed", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.UserHasSession(ctx, userID)
	})
}

func (h *Handler) handleCreateCart(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "create cart failed", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.CreateCart(ctx, userID)
	})
}

func (h *Handler) handleDeleteCart(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "delete cart failed", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.DeleteCart(ctx, userID)
	})
}

func (h *Handler) handleGetCart(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "cart not found", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.GetCart(ctx, userID)
	})
}

func (h *Handler) handleCartExists(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "cart lookup failed", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.CartExists(ctx, userID)
	})
}

func (h *Handler) handleResetCart(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "reset cart failed", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.ResetCart(ctx, userID)
	})
}

func (h *Handler) handleReadCart(w http.ResponseWriter, r *http.Request) {
	h.withUser(w, r, "read cart failed", func(ctx context.Context, userID id.UserID) (any, error) {
		return h.store.ReadCart(ctx, userID)
	})
}

func (h *Handler) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	var req wire.UpdateCart
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	cart, err := h.store.UpdateCart(r.Context(), req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "update cart failed")
		return
	}
	httputil.WriteSuccess(w, cart)
}

// withUser decodes a {user_id} body and writes fn's result.
func (h *Handler) withUser(w http.ResponseWriter, r *http.Request, failure string, fn func(context.Context, id.UserID) (any, error)) {
	var req wire.UserRef
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	out, err := fn(r.Context(), req.UserID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, failure)
		return
	}
	httputil.WriteSuccess(w, out)
}
