package httptransport

import (
	"errors"
	"net/http"
	"time"

	"polyglot/internal/orchestrator"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
)

// loginRequest carries no required tags: a caller with a live session may
// post no credentials at all, and the orchestrator checks that first.
type loginRequest struct {
	Username string `json:"username" validate:"max=255"`
	Password string `json:"password" validate:"max=1024"`
}

type loginResponse struct {
	AccessToken string    `json:"access_token,omitempty"`
	TokenType   string    `json:"token_type,omitempty"`
	ExpiresIn   int       `json:"expires_in,omitempty"`
	UserID      id.UserID `json:"user_id"`
	Username    string    `json:"username"`
	IsAdmin     bool      `json:"is_admin"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.DecodeAndValidate(r, &req); err != nil && !errors.Is(err, httputil.ErrEmptyBody) {
		httputil.WriteError(w, err)
		return
	}

	current := SessionFromContext(r.Context())
	res, err := h.service.Login(r.Context(), current, req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if res.Value == nil {
		httputil.WriteNotice(w, string(res.Notice), res.Message, nil)
		return
	}

	sess := res.Value
	body := loginResponse{UserID: sess.UserID, Username: sess.Username, IsAdmin: sess.IsAdmin}
	if current == nil || current.Token != sess.Token {
		ttl := sess.ExpiresAt.Sub(time.Now())
		if ttl <= 0 {
			h.writeError(w, r, dErrors.New(dErrors.CodeInternal, "session expired before token issue"))
			return
		}
		token, err := h.tokens.GenerateAccessToken(sess.UserID, sess.Username, sess.Token, ttl)
		if err != nil {
			h.writeError(w, r, dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign access token"))
			return
		}
		body.AccessToken = token
		body.TokenType = "Bearer"
		body.ExpiresIn = int(ttl.Seconds())
	}
	writeResult(w, orchestrator.Result[loginResponse]{Value: body, Notice: res.Notice, Message: res.Message})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.Logout(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}

func (h *Handler) handleSessionStatus(w http.ResponseWriter, r *http.Request) {
	res, err := h.service.SessionStatus(r.Context(), SessionFromContext(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeResult(w, res)
}
