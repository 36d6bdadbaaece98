// Package audit records user actions in the log store. Recording is best
// effort: Record has no error return, entries are skipped while the log store
// is down or its circuit is open, and write failures are only counted.
package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"polyglot/internal/registry"
	"polyglot/pkg/platform/circuit"
	"polyglot/pkg/requestcontext"
)

const (
	defaultBufferSize   = 256
	defaultWriteTimeout = 5 * time.Second
)

// Logger ships audit entries to the log store.
type Logger struct {
	sink         Sink
	gate         Gate
	breaker      *circuit.Breaker
	logger       *slog.Logger
	metrics      *Metrics
	async        bool
	bufferSize   int
	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan queued
	done   chan struct{}
}

type queued struct {
	ctx   context.Context
	entry Entry
}

// Option configures a Logger.
type Option func(*Logger)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Logger) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithMetrics enables Prometheus counters.
func WithMetrics(m *Metrics) Option {
	return func(l *Logger) { l.metrics = m }
}

// WithBreaker replaces the default circuit breaker.
func WithBreaker(b *circuit.Breaker) Option {
	return func(l *Logger) {
		if b != nil {
			l.breaker = b
		}
	}
}

// WithSync writes entries inline instead of through the buffer.
func WithSync() Option {
	return func(l *Logger) { l.async = false }
}

// WithBufferSize bounds the async queue.
func WithBufferSize(n int) Option {
	return func(l *Logger) {
		if n > 0 {
			l.bufferSize = n
		}
	}
}

// WithWriteTimeout bounds each append call.
func WithWriteTimeout(d time.Duration) Option {
	return func(l *Logger) {
		if d > 0 {
			l.writeTimeout = d
		}
	}
}

// New creates a Logger. In async mode (the default) it starts one worker that
// lives until Close.
func New(sink Sink, gate Gate, opts ...Option) (*Logger, error) {
	if sink == nil {
		return nil, errors.New("audit sink is required")
	}
	if gate == nil {
		return nil, errors.New("health gate is required")
	}
	l := &Logger{
		sink:         sink,
		gate:         gate,
		breaker:      circuit.New("audit", circuit.WithFailureThreshold(5), circuit.WithCooldown(30*time.Second)),
		logger:       slog.Default(),
		async:        true,
		bufferSize:   defaultBufferSize,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.async {
		l.queue = make(chan queued, l.bufferSize)
		l.done = make(chan struct{})
		go l.run()
	}
	return l, nil
}

// Record ships an entry. It never blocks on the log store in async mode and
// never reports failure.
func (l *Logger) Record(ctx context.Context, entry Entry) {
	if !l.gate.Available(registry.LogStore) {
		l.metrics.incDropped(reasonUnavailable)
		return
	}
	if !l.breaker.Allow() {
		l.metrics.incDropped(reasonCircuitOpen)
		return
	}

	if !l.async {
		l.write(ctx, entry)
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		l.metrics.incDropped(reasonClosed)
		return
	}
	select {
	case l.queue <- queued{ctx: context.WithoutCancel(ctx), entry: entry}:
	default:
		l.metrics.incDropped(reasonBufferFull)
		l.logger.DebugContext(ctx, "audit buffer full, entry dropped", "action", entry.Action)
	}
}

// Close stops accepting entries and waits for the buffer to drain or ctx to
// expire.
func (l *Logger) Close(ctx context.Context) error {
	if !l.async {
		return nil
	}
	l.mu.Lock()
	if !l.closed {
		l.closed = true
		close(l.queue)
	}
	l.mu.Unlock()

	select {
	case <-l.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Logger) write(ctx context.Context, entry Entry) {
	wctx, cancel := context.WithTimeout(ctx, l.writeTimeout)
	defer cancel()

	ok, err := l.sink.AppendLog(wctx, entry.toWire())
	if err == nil && !ok {
		err = errors.New("log store rejected entry")
	}
	if err != nil {
		l.metrics.incWriteFailures()
		_, change := l.breaker.RecordFailure()
		if change.Opened {
			l.metrics.setCircuitBreakerState(true)
			l.logger.WarnContext(ctx, "audit circuit opened", "breaker", l.breaker.Name())
		}
		l.logger.DebugContext(ctx, "audit write failed",
			"action", entry.Action,
			"user_id", entry.UserID,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return
	}

	_, change := l.breaker.RecordSuccess()
	if change.Closed {
		l.metrics.setCircuitBreakerState(false)
		l.logger.InfoContext(ctx, "audit circuit closed", "breaker", l.breaker.Name())
	}
	l.metrics.incRecorded()
	l.logger.DebugContext(ctx, entry.Action,
		"log_type", "audit",
		"user_id", entry.UserID,
		"tags", entry.Tags,
	)
}
