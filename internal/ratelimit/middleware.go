package ratelimit

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
	"polyglot/pkg/requestcontext"
)

// RateLimitByIP rejects requests from a client IP that ran out of tokens with
// 429 and a Retry-After header.
func RateLimitByIP(l *Limiter, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := requestcontext.ClientIP(r.Context())
			allowed, retryAfter := l.Allow(ip)
			if !allowed {
				secs := int(math.Ceil(retryAfter.Seconds()))
				if secs < 1 {
					secs = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(secs))
				logger.WarnContext(r.Context(), "rate limit exceeded",
					"path", r.URL.Path,
					"client_ip", ip,
					"retry_after_s", secs,
				)
				httputil.WriteError(w, dErrors.New(dErrors.CodeRateLimited, "too many requests, retry later"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
