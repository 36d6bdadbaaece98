// Package requestcontext carries request-scoped values from the HTTP
// middleware to services, clients and loggers without importing net/http.
//
// Tests set values directly:
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "polyglot/pkg/domain"
)

type key int

const (
	userIDKey key = iota
	clientIPKey
	requestIDKey
	requestTimeKey
)

func value[T any](ctx context.Context, k key) (T, bool) {
	v, ok := ctx.Value(k).(T)
	return v, ok
}

// UserID is the authenticated caller, or zero when anonymous.
func UserID(ctx context.Context) id.UserID {
	v, _ := value[id.UserID](ctx, userIDKey)
	return v
}

func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ClientIP is the caller's address as resolved by the client metadata
// middleware.
func ClientIP(ctx context.Context) string {
	v, _ := value[string](ctx, clientIPKey)
	return v
}

func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey, ip)
}

// RequestID is forwarded to backing services as X-Request-ID.
func RequestID(ctx context.Context) string {
	v, _ := value[string](ctx, requestIDKey)
	return v
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// Now is the time pinned for the request, or time.Now outside a request.
func Now(ctx context.Context) time.Time {
	if t, ok := value[time.Time](ctx, requestTimeKey); ok {
		return t
	}
	return time.Now()
}

func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, requestTimeKey, t)
}
