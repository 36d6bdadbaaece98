package orchestrator

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"polyglot/internal/audit"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// Catalog is the relational catalog/auth service.
type Catalog interface {
	FetchProducts(ctx context.Context, filter map[string]any) ([]id.Product, error)
	Authenticate(ctx context.Context, username, password string) (bool, error)
	ResolveUserID(ctx context.Context, username string) (id.UserID, error)
	IsAdmin(ctx context.Context, username string) (bool, error)
}

// SessionCart is the key-value session and cart store.
type SessionCart interface {
	CreateSession(ctx context.Context, userID id.UserID, ttl time.Duration) (id.SessionToken, error)
	DropSession(ctx context.Context, userID id.UserID) (bool, error)
	SessionExists(ctx context.Context, token id.SessionToken) (bool, error)
	CreateCart(ctx context.Context, userID id.UserID) (id.CartID, error)
	DeleteCart(ctx context.Context, userID id.UserID) (bool, error)
	GetCart(ctx context.Context, userID id.UserID) (id.CartID, error)
	CartExists(ctx context.Context, userID id.UserID) (bool, error)
	SupportsReset() bool
	ResetCart(ctx context.Context, userID id.UserID) (id.CartID, error)
	UpdateCart(ctx context.Context, userID id.UserID, productID id.ProductID, delta int) (id.Cart, error)
	ReadCart(ctx context.Context, userID id.UserID) (id.Cart, error)
}

// Statements is the document statement ledger.
type Statements interface {
	CreateStatement(ctx context.Context, userID id.UserID, purchase id.Cart) (id.StatementID, error)
	ListStatements(ctx context.Context, userID id.UserID) ([]id.StatementID, error)
	ReadStatement(ctx context.Context, statementID id.StatementID) (id.Statement, error)
}

// Graph is the social and recommendation store.
type Graph interface {
	Follow(ctx context.Context, source, target id.UserID) (bool, error)
	RecordPurchase(ctx context.Context, userID id.UserID, productID id.ProductID) (bool, error)
	Recommend(ctx context.Context, userID id.UserID) ([]id.ProductID, error)
}

// LogReader reads back the append-only log.
type LogReader interface {
	ReadLogs(ctx context.Context, userID id.UserID, limit int) ([]id.LogEntry, error)
}

// HealthGate refuses work against services last seen down.
type HealthGate interface {
	Require(svcs ...registry.ServiceName) error
}

// Auditor records user actions. It cannot fail.
type Auditor interface {
	Record(ctx context.Context, entry audit.Entry)
}

// Tagger maps services to the tags stamped on audit entries.
type Tagger interface {
	Tags(svcs ...registry.ServiceName) []string
}
