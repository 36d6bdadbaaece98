// Package orchestrator composes the five backing services into user-facing
// operations. It is the only place where cross-service invariants hold: a
// session belongs to one user, a cart never stores a non-positive quantity,
// and checkout runs as an ordered saga.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"polyglot/internal/audit"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

const (
	DefaultSessionTTL = time.Hour
	DefaultLogLimit   = 10
	MaxLogLimit       = 100
)

// Service runs front-door operations. Every operation takes the caller's
// session explicitly; nil means anonymous.
type Service struct {
	catalog    Catalog
	sessions   SessionCart
	statements Statements
	graph      Graph
	logs       LogReader
	health     HealthGate
	auditor    Auditor
	tags       Tagger

	table       *SessionTable
	locks       userLocks
	sessionTTL  time.Duration
	stepTimeout time.Duration
	logger      *slog.Logger
	metrics     *Metrics
	now         func() time.Time
}

// Backends groups the remote collaborators.
type Backends struct {
	Catalog    Catalog
	Sessions   SessionCart
	Statements Statements
	Graph      Graph
	Logs       LogReader
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithSessionTTL sets the lifetime of new sessions.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.sessionTTL = ttl
		}
	}
}

// WithSessionTable shares a table, typically with the auth middleware.
func WithSessionTable(t *SessionTable) Option {
	return func(s *Service) {
		if t != nil {
			s.table = t
		}
	}
}

// WithStepTimeout bounds each purchase saga step.
func WithStepTimeout(d time.Duration) Option {
	return func(s *Service) { s.stepTimeout = d }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service. All backends, the health gate, the auditor and
// the tagger are required.
func New(b Backends, health HealthGate, auditor Auditor, tags Tagger, opts ...Option) (*Service, error) {
	switch {
	case b.Catalog == nil:
		return nil, errors.New("catalog client is required")
	case b.Sessions == nil:
		return nil, errors.New("session/cart client is required")
	case b.Statements == nil:
		return nil, errors.New("statement client is required")
	case b.Graph == nil:
		return nil, errors.New("graph client is required")
	case b.Logs == nil:
		return nil, errors.New("log reader is required")
	case health == nil:
		return nil, errors.New("health gate is required")
	case auditor == nil:
		return nil, errors.New("auditor is required")
	case tags == nil:
		return nil, errors.New("tagger is required")
	}
	s := &Service{
		catalog:    b.Catalog,
		sessions:   b.Sessions,
		statements: b.Statements,
		graph:      b.Graph,
		logs:       b.Logs,
		health:     health,
		auditor:    auditor,
		tags:       tags,
		sessionTTL: DefaultSessionTTL,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == nil {
		s.table = NewSessionTable(s.now)
	}
	return s, nil
}

// Sessions exposes the table for token resolution.
func (s *Service) Sessions() *SessionTable { return s.table }

// Resolve returns the live session for token.
func (s *Service) Resolve(token id.SessionToken) (*Session, bool) {
	return s.table.Resolve(token)
}

func (s *Service) authenticated(sess *Session) bool {
	return sess.Live(s.now())
}

func (s *Service) record(ctx context.Context, sess *Session, action string, params map[string]any, svcs ...registry.ServiceName) {
	userID := id.AnonymousUserID
	if sess != nil {
		userID = sess.UserID
	}
	s.recordFor(ctx, userID, action, params, svcs...)
}

func (s *Service) recordFor(ctx context.Context, userID id.UserID, action string, params map[string]any, svcs ...registry.ServiceName) {
	if params == nil {
		params = map[string]any{}
	}
	s.auditor.Record(ctx, audit.Entry{
		UserID:     userID,
		Action:     action,
		Parameters: params,
		Tags:       s.tags.Tags(svcs...),
	})
}
