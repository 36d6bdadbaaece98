package orchestrator

import (
	"context"
	"errors"

	"polyglot/internal/registry"
	"polyglot/internal/saga"
	id "polyglot/pkg/domain"
)

const purchaseSaga = "purchase"

// Receipt is the outcome of a successful checkout.
type Receipt struct {
	StatementID id.StatementID `json:"statement_id"`
	Items       id.Cart        `json:"items"`
}

// Purchase checks out the caller's cart. The steps run in order: one purchase
// edge per product in ascending id order, the statement, then the cart reset.
// A failure stops the run and returns a *saga.StepError; steps already done
// are not undone. Edge writes are upserts so a retry after a partial failure
// does not duplicate them.
func (s *Service) Purchase(ctx context.Context, sess *Session) (res Result[Receipt], err error) {
	defer func() { s.metrics.observe("purchase", res.Notice, err) }()

	if err := s.health.Require(registry.SessionCart, registry.Statement, registry.Graph); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[Receipt](), nil
	}

	cart, err := s.sessions.ReadCart(ctx, sess.UserID)
	if err != nil {
		return res, err
	}
	snapshot := cart.Snapshot()
	if snapshot.IsEmpty() {
		return noticed[Receipt](NoticeCartEmpty, "Cart is empty"), nil
	}

	var statementID id.StatementID
	steps := make([]saga.Step, 0, len(snapshot)+2)
	for _, productID := range snapshot.ProductIDs() {
		steps = append(steps, saga.Step{
			Name:   "purchase_edge",
			Detail: productID.String(),
			Execute: func(ctx context.Context) error {
				_, err := s.graph.RecordPurchase(ctx, sess.UserID, productID)
				return err
			},
		})
	}
	steps = append(steps,
		saga.Step{
			Name: "create_statement",
			Execute: func(ctx context.Context) error {
				var err error
				statementID, err = s.statements.CreateStatement(ctx, sess.UserID, snapshot)
				return err
			},
		},
		saga.Step{
			Name: "reset_cart",
			Execute: func(ctx context.Context) error {
				_, err := s.resetCart(ctx, sess)
				return err
			},
		},
	)

	run := saga.New(purchaseSaga, saga.Config{StepTimeout: s.stepTimeout, Logger: s.logger}, steps...)
	if _, err := run.Execute(ctx); err != nil {
		params := map[string]any{"cart_contents": snapshot}
		var stepErr *saga.StepError
		if errors.As(err, &stepErr) {
			params["failed_step"] = stepErr.Step
			params["completed_steps"] = stepErr.Completed
		}
		s.record(ctx, sess, "Purchase Fail", params, registry.SessionCart, registry.Statement, registry.Graph)
		return res, err
	}

	s.record(ctx, sess, "Purchase", map[string]any{
		"cart_contents": snapshot,
		"statement_id":  statementID,
	}, registry.SessionCart, registry.Statement, registry.Graph)

	return value(Receipt{StatementID: statementID, Items: snapshot}), nil
}
