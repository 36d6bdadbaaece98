package orchestrator

import (
	"context"

	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

// UpdateCart adds delta to the product's quantity. The store removes the
// entry once the quantity drops to zero or below.
func (s *Service) UpdateCart(ctx context.Context, sess *Session, productID id.ProductID, delta int) (res Result[id.Cart], err error) {
	defer func() { s.metrics.observe("update_cart", res.Notice, err) }()

	if err := s.health.Require(registry.SessionCart); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[id.Cart](), nil
	}
	if productID <= 0 {
		return res, dErrors.New(dErrors.CodeValidation, "product id must be positive")
	}
	s.record(ctx, sess, "Update Cart", map[string]any{"product_id": productID, "quantity": delta}, registry.SessionCart)

	cart, err := s.sessions.UpdateCart(ctx, sess.UserID, productID, delta)
	if err != nil {
		return res, err
	}
	return value(cart.Snapshot()), nil
}

// ReadCart returns the caller's cart. An empty cart is a valid result.
func (s *Service) ReadCart(ctx context.Context, sess *Session) (res Result[id.Cart], err error) {
	defer func() { s.metrics.observe("read_cart", res.Notice, err) }()

	if err := s.health.Require(registry.SessionCart); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[id.Cart](), nil
	}
	s.record(ctx, sess, "Read Cart", nil, registry.SessionCart)

	cart, err := s.sessions.ReadCart(ctx, sess.UserID)
	if err != nil {
		return res, err
	}
	return value(cart.Snapshot()), nil
}

// ClearCart resets the caller's cart and reads it back.
func (s *Service) ClearCart(ctx context.Context, sess *Session) (res Result[id.Cart], err error) {
	defer func() { s.metrics.observe("clear_cart", res.Notice, err) }()

	if err := s.health.Require(registry.SessionCart); err != nil {
		return res, err
	}
	if !s.authenticated(sess) {
		return noSession[id.Cart](), nil
	}
	s.record(ctx, sess, "Clear Cart", nil, registry.SessionCart)

	if _, err := s.resetCart(ctx, sess); err != nil {
		return res, err
	}
	cart, err := s.sessions.ReadCart(ctx, sess.UserID)
	if err != nil {
		return res, err
	}
	return value(cart.Snapshot()), nil
}

// resetCart empties the cart under a fresh handle. The store's atomic reset is
// used when available; otherwise the cart is deleted and recreated, which
// leaves a window where the user has no cart.
func (s *Service) resetCart(ctx context.Context, sess *Session) (id.CartID, error) {
	var (
		cartID id.CartID
		err    error
	)
	if s.sessions.SupportsReset() {
		cartID, err = s.sessions.ResetCart(ctx, sess.UserID)
	} else {
		if _, err = s.sessions.DeleteCart(ctx, sess.UserID); err != nil {
			return "", err
		}
		cartID, err = s.sessions.CreateCart(ctx, sess.UserID)
	}
	if err != nil {
		return "", err
	}
	sess.CartID = cartID
	s.table.SetCart(sess.Token, cartID)
	return cartID, nil
}
