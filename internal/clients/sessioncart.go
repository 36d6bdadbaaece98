package clients

import (
	"context"
	"errors"
	"time"

	"polyglot/contracts/wire"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

// SessionCartClient talks to the key-value session and cart store.
type SessionCartClient struct {
	caller *Caller
}

func NewSessionCartClient(caller *Caller) *SessionCartClient {
	return &SessionCartClient{caller: caller}
}

func (c *SessionCartClient) CreateSession(ctx context.Context, userID id.UserID, ttl time.Duration) (id.SessionToken, error) {
	var token id.SessionToken
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpCreateSession,
		wire.CreateSession{UserID: userID, TTLSeconds: int(ttl / time.Second)}, &token)
	return token, err
}

// DropSession reports false, not an error, when the store rejects the drop.
// A missing session and a failed drop are deliberately indistinguishable.
func (c *SessionCartClient) DropSession(ctx context.Context, userID id.UserID) (bool, error) {
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpDropSession, wire.UserRef{UserID: userID}, nil)
	if err == nil {
		return true, nil
	}
	var remote *RemoteError
	if errors.As(err, &remote) && dErrors.HasCode(err, dErrors.CodeValidation) {
		return false, nil
	}
	return false, err
}

func (c *SessionCartClient) SessionExists(ctx context.Context, token id.SessionToken) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpSessionExists, wire.SessionRef{SessionID: token}, &ok)
	return ok, err
}

func (c *SessionCartClient) UserHasSession(ctx context.Context, userID id.UserID) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpUserHasSession, wire.UserRef{UserID: userID}, &ok)
	return ok, err
}

func (c *SessionCartClient) CreateCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	var cartID id.CartID
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpCreateCart, wire.UserRef{UserID: userID}, &cartID)
	return cartID, err
}

func (c *SessionCartClient) DeleteCart(ctx context.Context, userID id.UserID) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpDeleteCart, wire.UserRef{UserID: userID}, &ok)
	return ok, err
}

func (c *SessionCartClient) GetCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	var cartID id.CartID
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpGetCart, wire.UserRef{UserID: userID}, &cartID)
	return cartID, err
}

func (c *SessionCartClient) CartExists(ctx context.Context, userID id.UserID) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpCartExists, wire.UserRef{UserID: userID}, &ok)
	return ok, err
}

// SupportsReset reports whether the registry declares the atomic reset primitive.
func (c *SessionCartClient) SupportsReset() bool {
	return c.caller.Registry().Has(registry.SessionCart, registry.OpResetCart)
}

// ResetCart atomically replaces the user's cart with a fresh empty one.
func (c *SessionCartClient) ResetCart(ctx context.Context, userID id.UserID) (id.CartID, error) {
	var cartID id.CartID
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpResetCart, wire.UserRef{UserID: userID}, &cartID)
	return cartID, err
}

func (c *SessionCartClient) UpdateCart(ctx context.Context, userID id.UserID, productID id.ProductID, delta int) (id.Cart, error) {
	cart := id.Cart{}
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpUpdateCart,
		wire.UpdateCart{UserID: userID, ProductID: productID, Quantity: delta}, &cart)
	return cart, err
}

func (c *SessionCartClient) ReadCart(ctx context.Context, userID id.UserID) (id.Cart, error) {
	cart := id.Cart{}
	err := c.caller.Call(ctx, registry.SessionCart, registry.OpReadCart, wire.UserRef{UserID: userID}, &cart)
	return cart, err
}
