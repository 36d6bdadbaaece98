package clients

import (
	"context"

	"polyglot/contracts/wire"
	"polyglot/internal/catalog/filter"
	"polyglot/internal/registry"
	id "polyglot/pkg/domain"
)

// CatalogClient talks to the relational catalog/auth service.
type CatalogClient struct {
	caller  *Caller
	filters *filter.Table
}

// NewCatalogClient builds a catalog client. A nil table uses filter.Default.
func NewCatalogClient(caller *Caller, filters *filter.Table) *CatalogClient {
	if filters == nil {
		filters = filter.Default()
	}
	return &CatalogClient{caller: caller, filters: filters}
}

// FetchProducts sends only recognized filter keys; unrecognized ones are
// silently dropped.
func (c *CatalogClient) FetchProducts(ctx context.Context, raw map[string]any) ([]id.Product, error) {
	f, err := c.filters.Normalize(raw)
	if err != nil {
		return nil, err
	}
	var out []id.Product
	if err := c.caller.Call(ctx, registry.Catalog, registry.OpFetchProducts, f, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *CatalogClient) Authenticate(ctx context.Context, username, password string) (bool, error) {
	var ok bool
	err := c.caller.Call(ctx, registry.Catalog, registry.OpAuthenticate, wire.Credentials{Username: username, Password: password}, &ok)
	return ok, err
}

func (c *CatalogClient) ResolveUserID(ctx context.Context, username string) (id.UserID, error) {
	var userID id.UserID
	err := c.caller.Call(ctx, registry.Catalog, registry.OpResolveUserID, wire.Username{Username: username}, &userID)
	return userID, err
}

func (c *CatalogClient) IsAdmin(ctx context.Context, username string) (bool, error) {
	var admin bool
	err := c.caller.Call(ctx, registry.Catalog, registry.OpIsAdmin, wire.Username{Username: username}, &admin)
	return admin, err
}
