//go:build integration

package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"polyglot/internal/backends/catalog"
	"polyglot/internal/catalog/filter"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/sentinel"
	"polyglot/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *catalog.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.GetManager().GetPostgres(s.T())
	s.store = catalog.NewPostgres(s.pg.DB, nil)
	s.Require().NoError(s.store.Migrate(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.Truncate(context.Background(),
		"products", "vendors", "product_types", "product_conditions", "users"))
}

func (s *PostgresStoreSuite) seedProducts(ctx context.Context) {
	for _, p := range []id.Product{
		{
			Vendor: "Acme", ProductType: "Laptop", ProductCondition: "New", MPN: "A-1",
			Price: decimal.RequireFromString("999.99"), StockQuantity: 4, WarrantyMonths: 24,
			Attributes: map[string]string{"RAM Size": "16GB"},
		},
		{
			Vendor: "Acme", ProductType: "Laptop", ProductCondition: "Refurbished", MPN: "A-2",
			Price: decimal.RequireFromString("499.00"), StockQuantity: 0, WarrantyMonths: 6,
			Attributes: map[string]string{"RAM Size": "8GB"},
		},
		{
			Vendor: "Globex", ProductType: "Desktop", ProductCondition: "New", MPN: "G-1",
			Price: decimal.RequireFromString("1299.50"), StockQuantity: 10, WarrantyMonths: 36,
		},
	} {
		_, err := s.store.AddProduct(ctx, p)
		s.Require().NoError(err)
	}
}

func (s *PostgresStoreSuite) TestFetchProductsFilters() {
	ctx := context.Background()
	s.seedProducts(ctx)
	table := filter.Default()

	all, err := s.store.FetchProducts(ctx, filter.Filter{})
	s.Require().NoError(err)
	s.Len(all, 3)

	f, err := table.Normalize(map[string]any{"vendor": "Acme", "price_max": "500"})
	s.Require().NoError(err)
	cheap, err := s.store.FetchProducts(ctx, f)
	s.Require().NoError(err)
	s.Require().Len(cheap, 1)
	s.Equal("A-2", cheap[0].MPN)
	s.Equal("8GB", cheap[0].Attributes["RAM Size"])

	f, err = table.Normalize(map[string]any{"RAM Size": "16GB"})
	s.Require().NoError(err)
	byAttr, err := s.store.FetchProducts(ctx, f)
	s.Require().NoError(err)
	s.Require().Len(byAttr, 1)
	s.Equal("A-1", byAttr[0].MPN)

	f, err = table.Normalize(map[string]any{"product_warranty_min": 30})
	s.Require().NoError(err)
	long, err := s.store.FetchProducts(ctx, f)
	s.Require().NoError(err)
	s.Require().Len(long, 1)
	s.Equal("Globex", long[0].Vendor)
	s.True(decimal.RequireFromString("1299.50").Equal(long[0].Price))
}

func (s *PostgresStoreSuite) TestUsers() {
	ctx := context.Background()

	userID, err := s.store.CreateUser(ctx, "alice", "wonderland", false)
	s.Require().NoError(err)
	adminID, err := s.store.CreateUser(ctx, "root", "toor", true)
	s.Require().NoError(err)
	s.NotEqual(userID, adminID)

	_, err = s.store.CreateUser(ctx, "alice", "again", false)
	s.ErrorIs(err, sentinel.ErrConflict)

	ok, err := s.store.Authenticate(ctx, "alice", "wonderland")
	s.Require().NoError(err)
	s.True(ok)
	ok, err = s.store.Authenticate(ctx, "alice", "nope")
	s.Require().NoError(err)
	s.False(ok)
	ok, err = s.store.Authenticate(ctx, "ghost", "x")
	s.Require().NoError(err)
	s.False(ok)

	got, err := s.store.UserID(ctx, "alice")
	s.Require().NoError(err)
	s.Equal(userID, got)
	_, err = s.store.UserID(ctx, "ghost")
	s.ErrorIs(err, sentinel.ErrNotFound)

	admin, err := s.store.IsAdmin(ctx, "root")
	s.Require().NoError(err)
	s.True(admin)
	admin, err = s.store.IsAdmin(ctx, "alice")
	s.Require().NoError(err)
	s.False(admin)
}
