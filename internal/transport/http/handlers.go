package httptransport

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"polyglot/internal/orchestrator"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
	"polyglot/pkg/requestcontext"
)

// Handler is the thin HTTP layer over the orchestrator. It decodes requests,
// delegates, and writes envelopes; notices become success envelopes that
// carry a notice code and message.
type Handler struct {
	service Service
	tokens  TokenIssuer
	health  HealthReporter
	logger  *slog.Logger
}

func NewHandler(service Service, tokens TokenIssuer, health HealthReporter, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{service: service, tokens: tokens, health: health, logger: logger}
}

type updateCartRequest struct {
	ProductID id.ProductID `json:"product_id" validate:"required,gt=0"`
	Quantity  int          `json:"quantity"`
}

type followRequest struct {
	UserID id.UserID `json:"user_id" validate:"required,gt=0"`
}

func (h *Handler) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	var req updateCartRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.service.UpdateCart(r.Context(), SessionFromContext(r.Context()), req.ProductID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleReadCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ReadCart(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleClearCart(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ClearCart(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handlePurchase(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Purchase(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleListStatements(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.ListStatements(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleReadStatement(w http.ResponseWriter, r *http.Request) {
	statementID, err := id.ParseStatementID(chi.URLParam(r, "statementID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.service.ReadStatement(r.Context(), SessionFromContext(r.Context()), statementID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleFollow(w http.ResponseWriter, r *http.Request) {
	var req followRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil {
		httputil.WriteError(w, err)
		return
	}
	res, err := h.service.Follow(r.Context(), SessionFromContext(r.Context()), req.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleRecommend(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Recommend(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleFetchProducts(w http.ResponseWriter, r *http.Request) {
	filter := map[string]any{}
	if r.ContentLength != 0 {
		if err := httputil.Decode(r, &filter); err != nil {
			httputil.WriteError(w, err)
			return
		}
	}
	res, err := h.service.FetchProducts(r.Context(), SessionFromContext(r.Context()), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleReadLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID, err := parseLogUser(q.Get("user_id"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "limit must be a non-negative integer"))
			return
		}
		limit = n
	}
	res, err := h.service.ReadLogs(r.Context(), SessionFromContext(r.Context()), userID, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

// parseLogUser accepts a positive user id or the anonymous id that labels
// entries recorded without a session. Empty means the caller's own log.
func parseLogUser(raw string) (id.UserID, error) {
	switch raw {
	case "":
		return 0, nil
	case id.AnonymousUserID.String():
		return id.AnonymousUserID, nil
	}
	return id.ParseUserID(raw)
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snapshot := h.health.Snapshot()
	out := make(map[string]bool, len(snapshot))
	for svc, up := range snapshot {
		out[string(svc)] = up
	}
	httputil.WriteSuccess(w, out)
}

func writeResult[T any](w http.ResponseWriter, res orchestrator.Result[T]) {
	switch {
	case res.Notice != orchestrator.NoticeNone:
		httputil.WriteNotice(w, string(res.Notice), res.Message, noticeData(res))
	case res.Message != "":
		httputil.WriteNotice(w, "", res.Message, res.Value)
	default:
		httputil.WriteSuccess(w, res.Value)
	}
}

// noticeData keeps a payload on notices that carry one, such as an already
// logged in session.
func noticeData[T any](res orchestrator.Result[T]) any {
	if res.Notice == orchestrator.NoticeAlreadyLoggedIn {
		return res.Value
	}
	return nil
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := dErrors.CodeOf(err)
	if code == dErrors.CodeInternal || code == dErrors.CodeUpstream || code == dErrors.CodeTimeout {
		h.logger.ErrorContext(r.Context(), "request failed",
			"path", r.URL.Path,
			"code", code,
			"request_id", requestcontext.RequestID(r.Context()),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
