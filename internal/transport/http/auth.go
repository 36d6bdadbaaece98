package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	jwttoken "polyglot/internal/jwt_token"
	"polyglot/internal/orchestrator"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
	"polyglot/pkg/requestcontext"
)

type sessionKey struct{}

// TokenValidator verifies access tokens.
type TokenValidator interface {
	ValidateToken(token string) (jwttoken.Principal, error)
}

// SessionResolver looks up live sessions by token.
type SessionResolver interface {
	Resolve(token id.SessionToken) (*orchestrator.Session, bool)
}

// SessionFromContext returns the caller's session, or nil when anonymous.
func SessionFromContext(ctx context.Context) *orchestrator.Session {
	sess, _ := ctx.Value(sessionKey{}).(*orchestrator.Session)
	return sess
}

// WithSession attaches a session to ctx.
func WithSession(ctx context.Context, sess *orchestrator.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, sess)
}

// OptionalAuth resolves a bearer token to a session. Requests without a
// token, or whose session has ended, proceed anonymously; the orchestrator
// answers them with a notice. A malformed or forged token is rejected.
func OptionalAuth(validator TokenValidator, sessions SessionResolver, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(raw) == "" {
				httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid authorization header"))
				return
			}
			principal, err := validator.ValidateToken(strings.TrimSpace(raw))
			if err != nil {
				logger.DebugContext(ctx, "access token rejected",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				httputil.WriteError(w, err)
				return
			}
			sess, ok := sessions.Resolve(principal.SessionToken)
			if !ok || sess.UserID != principal.UserID {
				next.ServeHTTP(w, r)
				return
			}
			ctx = WithSession(ctx, sess)
			ctx = requestcontext.WithUserID(ctx, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
