// Package logstore is the append-only audit log service.
package logstore

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"polyglot/contracts/wire"
	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/httputil"
)

// DefaultReadLimit bounds a read that asks for no limit.
const DefaultReadLimit = 10

// Store is the persistence the log handler needs.
type Store interface {
	Append(ctx context.Context, entry id.LogEntry) error
	Read(ctx context.Context, userID id.UserID, limit int) ([]id.LogEntry, error)
}

// Handler exposes the log store.
type Handler struct {
	store  Store
	mirror Mirror
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithMirror copies every appended entry to m.
func WithMirror(m Mirror) Option {
	return func(h *Handler) {
		h.mirror = m
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) {
		if now != nil {
			h.now = now
		}
	}
}

func New(store Store, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	h := &Handler{store: store, now: time.Now, logger: logger}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Register mounts log endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/logs", h.handleAppend)
	r.Post("/logs/read", h.handleRead)
}

func (h *Handler) handleAppend(w http.ResponseWriter, r *http.Request) {
	var req wire.AppendLog
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	entry := id.LogEntry{
		UserID:     req.UserID,
		Timestamp:  req.Timestamp.UTC(),
		Action:     req.Action,
		Parameters: req.Parameters,
		Tags:       req.Tags,
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = h.now().UTC()
	}
	if entry.Parameters == nil {
		entry.Parameters = map[string]string{}
	}
	if entry.Tags == nil {
		entry.Tags = []string{}
	}
	if err := h.store.Append(r.Context(), entry); err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "append log failed")
		return
	}
	if h.mirror != nil {
		h.mirror.Publish(r.Context(), entry)
	}
	httputil.WriteSuccess(w, true)
}

func (h *Handler) handleRead(w http.ResponseWriter, r *http.Request) {
	var req wire.ReadLogs
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	limit := req.Limit
	if limit == 0 {
		limit = DefaultReadLimit
	}
	entries, err := h.store.Read(r.Context(), req.UserID, limit)
	if err != nil {
		backends.WriteStoreError(w, r, h.logger, err, "read logs failed")
		return
	}
	httputil.WriteSuccess(w, entries)
}
