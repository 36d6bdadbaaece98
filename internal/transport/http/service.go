package httptransport

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"polyglot/internal/orchestrator"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// Service is the orchestrator surface the handlers call.
type Service interface {
	Login(ctx context.Context, current *orchestrator.Session, username, password string) (orchestrator.Result[*orchestrator.Session], error)
	Logout(ctx context.Context, current *orchestrator.Session) (orchestrator.Result[string], error)
	SessionStatus(ctx context.Context, current *orchestrator.Session) (orchestrator.Result[bool], error)
	UpdateCart(ctx context.Context, sess *orchestrator.Session, productID id.ProductID, delta int) (orchestrator.Result[id.Cart], error)
	ReadCart(ctx context.Context, sess *orchestrator.Session) (orchestrator.Result[id.Cart], error)
	ClearCart(ctx context.Context, sess *orchestrator.Session) (orchestrator.Result[id.Cart], error)
	Purchase(ctx context.Context, sess *orchestrator.Session) (orchestrator.Result[orchestrator.Receipt], error)
	ListStatements(ctx context.Context, sess *orchestrator.Session) (orchestrator.Result[[]id.StatementID], error)
	ReadStatement(ctx context.Context, sess *orchestrator.Session, statementID id.StatementID) (orchestrator.Result[id.Statement], error)
	Follow(ctx context.Context, sess *orchestrator.Session, target id.UserID) (orchestrator.Result[bool], error)
	Recommend(ctx context.Context, sess *orchestrator.Session) (orchestrator.Result[[]id.ProductID], error)
	FetchProducts(ctx context.Context, sess *orchestrator.Session, filter map[string]any) (orchestrator.Result[[]id.Product], error)
	ReadLogs(ctx context.Context, sess *orchestrator.Session, userID id.UserID, limit int) (orchestrator.Result[[]id.LogEntry], error)
}

// TokenIssuer signs front-door access tokens.
type TokenIssuer interface {
	GenerateAccessToken(userID id.UserID, username string, sessionID id.SessionToken, expiresIn time.Duration) (string, error)
}

// HealthReporter exposes cached backing-service health.
type HealthReporter interface {
	Snapshot() map[registry.ServiceName]bool
}
