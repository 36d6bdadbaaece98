package orchestrator

import (
	"context"
	"fmt"
	"slices"

	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

// ListStatements returns the ids of the caller's statements.
func (s *Service) ListStatements(ctx context.Context, sess *Session) (res Result[[]id.StatementID], err error) {
	defer func() { s.metrics.observe("list_statements", res.Notice, err) }()

	if err := s.health.Require(registry.Statement); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[[]id.StatementID](), nil
	}
	s.record(ctx, sess, "Get Statements", nil, registry.Statement)

	ids, err := s.statements.ListStatements(ctx, sess.UserID)
	if err != nil {
		return res, err
	}
	if ids == nil {
		ids = []id.StatementID{}
	}
	return value(ids), nil
}

// ReadStatement returns one of the caller's statements. Ids outside the
// caller's list, and ids the ledger no longer has, yield NoticeNotOwned.
func (s *Service) ReadStatement(ctx context.Context, sess *Session, statementID id.StatementID) (res Result[id.Statement], err error) {
	defer func() { s.metrics.observe("read_statement", res.Notice, err) }()

	if err := s.health.Require(registry.Statement); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[id.Statement](), nil
	}
	params := map[string]any{"statement_id": statementID}
	s.record(ctx, sess, "Read Statement", params, registry.Statement)

	notOwned := func() Result[id.Statement] {
		s.record(ctx, sess, "Read Statement Fail", params, registry.Statement)
		return noticed[id.Statement](NoticeNotOwned, fmt.Sprintf("Statement %d does not belong to %s", statementID, sess.Username))
	}

	owned, err := s.statements.ListStatements(ctx, sess.UserID)
	if err != nil {
		return res, err
	}
	if !slices.Contains(owned, statementID) {
		return notOwned(), nil
	}

	stmt, err := s.statements.ReadStatement(ctx, statementID)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeNotFound) {
			return notOwned(), nil
		}
		return res, err
	}
	if stmt.UserID != sess.UserID {
		return notOwned(), nil
	}

	s.record(ctx, sess, "Read Statement Success", params, registry.Statement)
	return value(stmt), nil
}

// Follow records that the caller follows target.
func (s *Service) Follow(ctx context.Context, sess *Session, target id.UserID) (res Result[bool], err error) {
	defer func() { s.metrics.observe("follow", res.Notice, err) }()

	if err := s.health.Require(registry.Graph); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[bool](), nil
	}
	if target <= 0 {
		return res, dErrors.New(dErrors.CodeValidation, "user id must be positive")
	}
	if target == sess.UserID {
		return res, dErrors.New(dErrors.CodeValidation, "cannot follow yourself")
	}
	s.record(ctx, sess, "Follow User", map[string]any{"filter": map[string]any{"user_id": target}}, registry.Graph)

	ok, err := s.graph.Follow(ctx, sess.UserID, target)
	if err != nil {
		return res, err
	}
	return value(ok), nil
}

// Recommend returns products bought by users the caller follows that the
// caller has not bought.
func (s *Service) Recommend(ctx context.Context, sess *Session) (res Result[[]id.ProductID], err error) {
	defer func() { s.metrics.observe("recommend", res.Notice, err) }()

	if err := s.health.Require(registry.Graph); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[[]id.ProductID](), nil
	}
	s.record(ctx, sess, "Getting recommendations", nil, registry.Graph)

	ids, err := s.graph.Recommend(ctx, sess.UserID)
	if err != nil {
		return res, err
	}
	if ids == nil {
		ids = []id.ProductID{}
	}
	return value(ids), nil
}

// FetchProducts searches the catalog. Anonymous callers are allowed and
// unrecognized filter keys are ignored.
func (s *Service) FetchProducts(ctx context.Context, sess *Session, filter map[string]any) (res Result[[]id.Product], err error) {
	defer func() { s.metrics.observe("fetch_products", res.Notice, err) }()

	if err := s.health.Require(registry.Catalog); err != nil {
		return res, err
	}
	if filter == nil {
		filter = map[string]any{}
	}
	s.record(ctx, sess, "fetch_products", filter, registry.Catalog)

	products, err := s.catalog.FetchProducts(ctx, filter)
	if err != nil {
		return res, err
	}
	if products == nil {
		products = []id.Product{}
	}
	return value(products), nil
}

// ReadLogs returns userID's most recent log entries. A zero userID means the
// caller. Only admins may read another user's log.
func (s *Service) ReadLogs(ctx context.Context, sess *Session, userID id.UserID, limit int) (res Result[[]id.LogEntry], err error) {
	defer func() { s.metrics.observe("read_logs", res.Notice, err) }()

	if err := s.health.Require(registry.LogStore); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[[]id.LogEntry](), nil
	}
	if userID == 0 {
		userID = sess.UserID
	}
	if userID != sess.UserID && !sess.IsAdmin {
		return res, dErrors.New(dErrors.CodeForbidden, "only admins may read other users' logs")
	}
	limit = clampLimit(limit)
	s.record(ctx, sess, "Read Logs", map[string]any{"filter": map[string]any{"user_id": userID}, "limit": limit}, registry.LogStore)

	entries, err := s.logs.ReadLogs(ctx, userID, limit)
	if err != nil {
		return res, err
	}
	if entries == nil {
		entries = []id.LogEntry{}
	}
	return value(entries), nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLogLimit
	case limit > MaxLogLimit:
		return MaxLogLimit
	}
	return limit
}
