// Package graph is the relationship and recommendation service.
package graph

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"polyglot/contracts/wire"
	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
)

// Store is the persistence the graph handler needs.
type Store interface {
	Follow(ctx context.Context, source, target id.UserID) (bool, error)
	RecordPurchase(ctx context.Context, userID id.UserID, productID id.ProductID) (bool, error)
	Recommend(ctx context.Context, userID id.UserID) ([]id.ProductID, error)
}

// Handler exposes the graph store.
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

// Register mounts graph endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/follow", h.handleFollow)
	r.Post("/purchase", h.handleRecordPurchase)
	r.Post("/recommend", h.handleRecommend)
}

func (h *Handler) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req wire.Follow
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	if req.SourceID == req.TargetID {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "users cannot follow themselves"))
		return
	}
	ok, err := h.store.Follow(r.Context(), req.SourceID, req.TargetID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "follow failed")
		return
	}
	httputil.WriteSuccess(w, ok)
}

func (h *Handler) handleRecordPurchase(w http.ResponseWriter, r *http.Request) {
	var req wire.PurchaseEdge
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	ok, err := h.store.RecordPurchase(r.Context(), req.UserID, req.ProductID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "record purchase failed")
		return
	}
	httputil.WriteSuccess(w, ok)
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req wire.UserRef
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	ids, err := h.store.Recommend(r.Context(), req.UserID)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "recommend failed")
		return
	}
	httputil.WriteSuccess(w, ids)
}
