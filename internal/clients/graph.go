package clients

import (
	"context"

	"polyglot/contracts/wire"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// GraphClient talks to the relationship and recommendation store.
type GraphClient struct {
	caller *Caller
}

func NewGraphClient(caller *Caller) *GraphClient {
	return &GraphClient{caller: caller}
}

func (c *GraphClient) Follow(ctx context.Context, source, target id.UserID) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.Graph, registry.OpFollow, wire.Follow{SourceID: source, TargetID: target}, &ok)
	return ok, err
}

// RecordPurchase upserts the user-bought-product edge.
func (c *GraphClient) RecordPurchase(ctx context.Context, userID id.UserID, productID id.ProductID) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.Graph, registry.OpRecordPurchase, wire.PurchaseEdge{UserID: userID, ProductID: productID}, &ok)
	return ok, err
}

func (c *GraphClient) Recommend(ctx context.Context, userID id.UserID) ([]id.ProductID, error) {
	var ids []id.ProductID
	err := c.caller.Call(ctx, registry.Graph, registry.OpRecommend, wire.UserRef{UserID: userID}, &ids)
	return ids, err
}
