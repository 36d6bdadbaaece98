// Package clients holds the typed JSON-over-HTTP clients for the five backing
// services. Every call goes through Caller, which resolves the endpoint from
// the registry, unwraps the response envelope and normalizes failures into
// coded errors.
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"polyglot/internal/platform/middleware"
	"polyglot/internal/registry"
	dErrors "polyglot/pkg/domain-errors"
	"polyglot/pkg/platform/httputil"
	"polyglot/pkg/requestcontext"
)

const maxResponseBytes = 4 << 20

// HTTPDoer is the subset of *http.Client used by Caller.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Caller performs envelope-aware calls against registered services.
type Caller struct {
	registry *registry.Registry
	http     HTTPDoer
	tracer   trace.Tracer
	metrics  *callMetrics
}

// CallerOption configures a Caller.
type CallerOption func(*Caller)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(doer HTTPDoer) CallerOption {
	return func(c *Caller) {
		if doer != nil {
			c.http = doer
		}
	}
}

// WithTimeout sets the per-call timeout of the default *http.Client.
func WithTimeout(d time.Duration) CallerOption {
	return func(c *Caller) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// NewCaller builds a Caller over reg.
func NewCaller(reg *registry.Registry, opts ...CallerOption) (*Caller, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	c := &Caller{
		registry: reg,
		http:     &http.Client{Timeout: 10 * time.Second},
		tracer:   otel.Tracer("polyglot/clients"),
		metrics:  defaultCallMetrics,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Registry exposes the registry the caller resolves against.
func (c *Caller) Registry() *registry.Registry { return c.registry }

// Call posts body to svc/op and decodes the envelope's data into out.
// out may be nil when the caller only needs the success signal.
func (c *Caller) Call(ctx context.Context, svc registry.ServiceName, op registry.Operation, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, string(svc)+"."+string(op),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("polyglot.service", string(svc)),
			attribute.String("polyglot.operation", string(op)),
		),
	)
	start := time.Now()
	defer func() {
		c.metrics.observe(svc, op, err, time.Since(start))
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	url, err := c.registry.Endpoint(svc, op)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "build request")
	}
	req.Header.Set("Content-Type", "application/json")
	if reqID := requestcontext.RequestID(ctx); reqID != "" {
		req.Header.Set(middleware.RequestIDHeader, reqID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportError(svc, op, err)
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return transportError(svc, op, err)
	}
	return decodeEnvelope(svc, op, resp.StatusCode, raw, out)
}

// decodeEnvelope classifies a response. Non-2xx or status:"error" bodies
// become coded errors carrying the remote message; the data of a success
// envelope is decoded into out.
func decodeEnvelope(svc registry.ServiceName, op registry.Operation, status int, raw []byte, out any) error {
	var env httputil.Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, fmt.Sprintf("%s %s returned malformed response", svc, op))
	}

	if status < 200 || status > 299 || env.Status != httputil.StatusSuccess {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("%s %s failed with status %d", svc, op, status)
		}
		code := httputil.CodeFor(status)
		if status >= 200 && status <= 299 {
			code = dErrors.CodeUpstream
		}
		return &RemoteError{Service: svc, Operation: op, Status: status, Data: env.Data, err: dErrors.New(code, msg)}
	}

	if out == nil {
		return nil
	}
	if len(env.Data) == 0 {
		return dErrors.New(dErrors.CodeUpstream, fmt.Sprintf("%s %s returned no data", svc, op))
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUpstream, fmt.Sprintf("%s %s returned unexpected data", svc, op))
	}
	return nil
}

func transportError(svc registry.ServiceName, op registry.Operation, err error) error {
	msg := fmt.Sprintf("%s %s call failed", svc, op)
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return dErrors.Wrap(err, dErrors.CodeTimeout, msg)
	}
	return dErrors.Wrap(err, dErrors.CodeUpstream, msg)
}

// RemoteError is a non-success envelope returned by a reachable service.
type RemoteError struct {
	Service   registry.ServiceName
	Operation registry.Operation
	Status    int
	// Data is the raw data field of the error envelope, if any.
	Data json.RawMessage
	err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Service, e.Operation, e.err)
}

func (e *RemoteError) Unwrap() error { return e.err }
