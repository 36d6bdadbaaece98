// Package health probes the backing services and caches one availability flag
// per service. Probes never fail: a connection error, timeout, non-2xx status
// or a payload other than {"status":"running"} marks the service unavailable.
package health

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"polyglot/internal/registry"
	dErrors "polyglot/pkg/domain-errors"
)

// HTTPDoer is the subset of *http.Client used for probes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultTimeout bounds a single probe.
const DefaultTimeout = 5 * time.Second

// Monitor holds the cached availability flags. Flags start false until the
// first probe and are safe for concurrent use.
type Monitor struct {
	registry *registry.Registry
	http     HTTPDoer
	timeout  time.Duration
	logger   *slog.Logger
	flags    map[registry.ServiceName]*atomic.Bool
}

// Option configures a Monitor.
type Option func(*Monitor)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Monitor) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithHTTPClient(doer HTTPDoer) Option {
	return func(m *Monitor) {
		if doer != nil {
			m.http = doer
		}
	}
}

// WithTimeout bounds each probe.
func WithTimeout(d time.Duration) Option {
	return func(m *Monitor) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// New creates a Monitor for every service in reg.
func New(reg *registry.Registry, opts ...Option) (*Monitor, error) {
	if reg == nil {
		return nil, errors.New("registry is required")
	}
	m := &Monitor{
		registry: reg,
		http:     http.DefaultClient,
		timeout:  DefaultTimeout,
		logger:   slog.Default(),
		flags:    make(map[registry.ServiceName]*atomic.Bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	for _, name := range reg.Services() {
		m.flags[name] = &atomic.Bool{}
		serviceUp.WithLabelValues(string(name)).Set(0)
	}
	return m, nil
}

// Probe checks svc once, updates its cached flag and returns it.
func (m *Monitor) Probe(ctx context.Context, svc registry.ServiceName) bool {
	up := m.check(ctx, svc)
	m.set(svc, up)
	return up
}

func (m *Monitor) check(ctx context.Context, svc registry.ServiceName) bool {
	url, err := m.registry.HealthURL(svc)
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	defer func() { probeDuration.WithLabelValues(string(svc)).Observe(time.Since(start).Seconds()) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := m.http.Do(req)
	if err != nil {
		m.logger.DebugContext(ctx, "health probe failed", "service", svc, "error", err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return false
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err != nil {
		return false
	}
	return body.Status == "running"
}

// ProbeAll probes every registered service concurrently and returns a snapshot.
func (m *Monitor) ProbeAll(ctx context.Context) map[registry.ServiceName]bool {
	g, gctx := errgroup.WithContext(ctx)
	for _, name := range m.registry.Services() {
		g.Go(func() error {
			m.Probe(gctx, name)
			return nil
		})
	}
	_ = g.Wait()

	snap := m.Snapshot()
	for name, up := range snap {
		m.logger.InfoContext(ctx, "service health", "service", name, "available", up)
	}
	return snap
}

// Run re-probes every interval until ctx is done. A non-positive interval
// returns immediately, leaving the startup result cached.
func (m *Monitor) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ProbeAll(ctx)
		}
	}
}

// Available returns the cached flag for svc.
func (m *Monitor) Available(svc registry.ServiceName) bool {
	f, ok := m.flags[svc]
	return ok && f.Load()
}

// Require returns a CodeUnavailable error naming the first unavailable service.
func (m *Monitor) Require(svcs ...registry.ServiceName) error {
	for _, svc := range svcs {
		if !m.Available(svc) {
			return dErrors.Newf(dErrors.CodeUnavailable, "%s service is down", svc)
		}
	}
	return nil
}

// Snapshot copies the cached flags.
func (m *Monitor) Snapshot() map[registry.ServiceName]bool {
	out := make(map[registry.ServiceName]bool, len(m.flags))
	for name, f := range m.flags {
		out[name] = f.Load()
	}
	return out
}

// Set overrides a cached flag. Used by operators and tests.
func (m *Monitor) Set(svc registry.ServiceName, up bool) {
	m.set(svc, up)
}

func (m *Monitor) set(svc registry.ServiceName, up bool) {
	f, ok := m.flags[svc]
	if !ok {
		return
	}
	if prev := f.Swap(up); prev != up {
		m.logger.Info("service availability changed", "service", svc, "available", up)
	}
	v := 0.0
	if up {
		v = 1
	}
	serviceUp.WithLabelValues(string(svc)).Set(v)
}
