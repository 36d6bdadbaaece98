package clients

import (
	"context"

	"polyglot/contracts/wire"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// StatementClient talks to the document statement ledger.
type StatementClient struct {
	caller *Caller
}

func NewStatementClient(caller *Caller) *StatementClient {
	return &StatementClient{caller: caller}
}

func (c *StatementClient) CreateStatement(ctx context.Context, userID id.UserID, purchase id.Cart) (id.StatementID, error) {
	var stmtID id.StatementID
	err := c.caller.Call(ctx, registry.Statement, registry.OpCreateStatement,
		wire.CreateStatement{UserID: userID, Purchase: purchase}, &stmtID)
	return stmtID, err
}

func (c *StatementClient) ListStatements(ctx context.Context, userID id.UserID) ([]id.StatementID, error) {
	var ids []id.StatementID
	err := c.caller.Call(ctx, registry.Statement, registry.OpListStatements, wire.UserRef{UserID: userID}, &ids)
	return ids, err
}

// ReadStatement returns a CodeNotFound error when the id does not exist.
func (c *StatementClient) ReadStatement(ctx context.Context, stmtID id.StatementID) (id.Statement, error) {
	var stmt id.Statement
	err := c.caller.Call(ctx, registry.Statement, registry.OpReadStatement, wire.StatementRef{StatementID: stmtID}, &stmt)
	return stmt, err
}
