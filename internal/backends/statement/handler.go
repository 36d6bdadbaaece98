// Package statement is the purchase statement ledger service.
package statement

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"polyglot/contracts/wire"
	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/httputil"
)

// Store is the persistence the statement handler needs.
type Store interface {
	Create(ctx context.Context, userID id.UserID, purchase id.Cart) (id.StatementID, error)
	List(ctx context.Context, userID id.UserID) ([]id.StatementID, error)
	Read(ctx context.Context, statementID id.StatementID) (id.Statement, error)
}

// Handler exposes the statement store.
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

// Register mounts statement endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/statements", h.handleCreate)
	r.Post("/statements/list", h.handleList)
	r.Post("/statements/read", h.handleRead)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req wire.CreateStatement
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	statementID, err := h.store.Create(r.Context(), req.UserID, req.Purchase)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "create statement failed")
		return
	}
	h.logger.InfoContext(r.Context(), "statement created",
		"statement_id", statementID,
		"user_id", req.UserID,
		"items", len(req.Purchase),
	)
	httputil.WriteSuccess(w, statementID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	var req wire.UserRef
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	ids, err := h.store.List(r.Context(), req.UserID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "list statements failed")
		return
	}
	httputil.WriteSuccess(w, ids)
}

func (h *Handler) handleRead(w http.ResponseWriter, r *http.Request) {
	var req wire.StatementRef
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	st, err := h.store.Read(r.Context(), req.StatementID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "statement not found")
		return
	}
	httputil.WriteSuccess(w, st)
}
