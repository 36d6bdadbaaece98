package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"polyglot/internal/backends"
	"polyglot/internal/catalog/filter"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/sentinel"
)

const schema = `
CREATE TABLE IF NOT EXISTS vendors (
	id     BIGSERIAL PRIMARY KEY,
	vendor TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS product_types (
	id           BIGSERIAL PRIMARY KEY,
	product_type TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS product_conditions (
	id                BIGSERIAL PRIMARY KEY,
	product_condition TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS products (
	id                   BIGSERIAL PRIMARY KEY,
	vendor_id            BIGINT NOT NULL REFERENCES vendors(id),
	product_type_id      BIGINT NOT NULL REFERENCES product_types(id),
	product_condition_id BIGINT NOT NULL REFERENCES product_conditions(id),
	mpn                  TEXT NOT NULL,
	price                NUMERIC(12, 2) NOT NULL,
	stock_quantity       INTEGER NOT NULL DEFAULT 0,
	product_warranty     INTEGER NOT NULL DEFAULT 0,
	attributes           JSONB NOT NULL DEFAULT '{}'::jsonb
);
CREATE TABLE IF NOT EXISTS users (
	id            BIGSERIAL PRIMARY KEY,
	user_name     TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE
);
`

const productQuery = `
SELECT p.id, v.vendor, pt.product_type, pc.product_condition, p.mpn,
       p.price, p.stock_quantity, p.product_warranty, p.attributes
FROM products p
JOIN vendors v ON v.id = p.vendor_id
JOIN product_types pt ON pt.id = p.product_type_id
JOIN product_conditions pc ON pc.id = p.product_condition_id
`

const storeName = "postgres_catalog"

// PostgresStore serves products and user credentials from PostgreSQL.
type PostgresStore struct {
	db      *sql.DB
	filters *filter.Table
}

// NewPostgres constructs the catalog store. A nil table uses filter.Default.
func NewPostgres(db *sql.DB, filters *filter.Table) *PostgresStore {
	if filters == nil {
		filters = filter.Default()
	}
	return &PostgresStore{db: db, filters: filters}
}

// Migrate creates the catalog tables if they are missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate catalog schema: %w", err)
	}
	return nil
}

// FetchProducts returns the products matching every predicate of f, ordered by id.
func (s *PostgresStore) FetchProducts(ctx context.Context, f filter.Filter) ([]id.Product, error) {
	defer backends.ObserveStore(storeName, "fetch_products")()

	where, args := s.filters.Where(f)
	rows, err := s.db.QueryContext(ctx, productQuery+where+"\nORDER BY p.id", args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []id.Product{}
	for rows.Next() {
		var (
			p     id.Product
			attrs []byte
		)
		if err := rows.Scan(&p.ID, &p.Vendor, &p.ProductType, &p.ProductCondition, &p.MPN,
			&p.Price, &p.StockQuantity, &p.WarrantyMonths, &attrs); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if len(attrs) > 0 {
			if err := json.Unmarshal(attrs, &p.Attributes); err != nil {
				return nil, fmt.Errorf("decode product %d attributes: %w", p.ID, err)
			}
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}
	return products, nil
}

// Authenticate reports whether password matches the stored hash. Unknown
// users authenticate as false.
func (s *PostgresStore) Authenticate(ctx context.Context, username, password string) (bool, error) {
	defer backends.ObserveStore(storeName, "authenticate")()

	var hash string
	err := s.db.QueryRowContext(ctx, `SELECT password_hash FROM users WHERE user_name = $1`, username).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load credentials: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("compare password: %w", err)
	}
	return true, nil
}

// UserID resolves a username. Unknown users are sentinel.ErrNotFound.
func (s *PostgresStore) UserID(ctx context.Context, username string) (id.UserID, error) {
	defer backends.ObserveStore(storeName, "resolve_user_id")()

	var userID id.UserID
	err := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE user_name = $1`, username).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, sentinel.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("resolve user id: %w", err)
	}
	return userID, nil
}

// IsAdmin reports the admin flag. Unknown users are sentinel.ErrNotFound.
func (s *PostgresStore) IsAdmin(ctx context.Context, username string) (bool, error) {
	defer backends.ObserveStore(storeName, "is_admin")()

	var admin bool
	err := s.db.QueryRowContext(ctx, `SELECT is_admin FROM users WHERE user_name = $1`, username).Scan(&admin)
	if errors.Is(err, sql.ErrNoRows) {
		return false, sentinel.ErrNotFound
	}
	if err != nil {
		return false, fmt.Errorf("load admin flag: %w", err)
	}
	return admin, nil
}

// CreateUser stores a user with a bcrypt hash of password. An existing
// username is sentinel.ErrConflict.
func (s *PostgresStore) CreateUser(ctx context.Context, username, password string, admin bool) (id.UserID, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}
	var userID id.UserID
	err = s.db.QueryRowContext(ctx, `
		INSERT INTO users (user_name, password_hash, is_admin)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_name) DO NOTHING
		RETURNING id`, username, string(hash), admin).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, sentinel.ErrConflict
	}
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return userID, nil
}

// AddProduct inserts a product, creating its vendor, type and condition rows
// as needed, and returns the assigned id.
func (s *PostgresStore) AddProduct(ctx context.Context, p id.Product) (id.ProductID, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	vendorID, err := upsertLookup(ctx, tx, "vendors", "vendor", p.Vendor)
	if err != nil {
		return 0, err
	}
	typeID, err := upsertLookup(ctx, tx, "product_types", "product_type", p.ProductType)
	if err != nil {
		return 0, err
	}
	conditionID, err := upsertLookup(ctx, tx, "product_conditions", "product_condition", p.ProductCondition)
	if err != nil {
		return 0, err
	}
	attrs := p.Attributes
	if attrs == nil {
		attrs = map[string]string{}
	}
	rawAttrs, err := json.Marshal(attrs)
	if err != nil {
		return 0, fmt.Errorf("encode attributes: %w", err)
	}

	var productID id.ProductID
	err = tx.QueryRowContext(ctx, `
		INSERT INTO products (vendor_id, product_type_id, product_condition_id, mpn, price,
		                      stock_quantity, product_warranty, attributes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		vendorID, typeID, conditionID, p.MPN, p.Price.String(), p.StockQuantity, p.WarrantyMonths, rawAttrs,
	).Scan(&productID)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit product: %w", err)
	}
	return productID, nil
}

// upsertLookup returns the id of value in a lookup table, inserting it first
// when missing. table and column are constants from AddProduct.
func upsertLookup(ctx context.Context, tx *sql.Tx, table, column, value string) (int64, error) {
	var rowID int64
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s) VALUES ($1)
		ON CONFLICT (%[2]s) DO UPDATE SET %[2]s = EXCLUDED.%[2]s
		RETURNING id`, table, column)
	if err := tx.QueryRowContext(ctx, query, value).Scan(&rowID); err != nil {
		return 0, fmt.Errorf("upsert %s: %w", table, err)
	}
	return rowID, nil
}
