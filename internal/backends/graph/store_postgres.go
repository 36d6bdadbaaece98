package graph

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	dErrors "polyglot/pkg/domain-errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS follows (
	source_id  BIGINT NOT NULL,
	target_id  BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (source_id, target_id),
	CONSTRAINT follows_no_self CHECK (source_id <> target_id)
);
CREATE TABLE IF NOT EXISTS purchases (
	user_id    BIGINT NOT NULL,
	product_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (user_id, product_id)
);
`

// recommendQuery ranks products bought by the users the source follows, by
// how many of them bought it, skipping what the source already owns.
const recommendQuery = `
SELECT COALESCE(array_agg(product_id ORDER BY buyers DESC, product_id), '{}')
FROM (
	SELECT p.product_id, COUNT(*) AS buyers
	FROM follows f
	JOIN purchases p ON p.user_id = f.target_id
	WHERE f.source_id = $1
	  AND NOT EXISTS (
		SELECT 1 FROM purchases mine
		WHERE mine.user_id = $1 AND mine.product_id = p.product_id
	  )
	GROUP BY p.product_id
	ORDER BY buyers DESC, p.product_id
	LIMIT $2
) ranked`

const (
	storeName = "postgres_graph"

	// DefaultRecommendLimit caps one recommendation answer.
	DefaultRecommendLimit = 20

	pqCheckViolation = "23514"
)

// PostgresStore keeps follow and purchase edges as relational rows.
type PostgresStore struct {
	db    *sql.DB
	limit int
}

// NewPostgres constructs the graph store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db, limit: DefaultRecommendLimit}
}

// Migrate creates the edge tables if they are missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate graph schema: %w", err)
	}
	return nil
}

// Follow records source -> target. Repeating an existing edge succeeds.
func (s *PostgresStore) Follow(ctx context.Context, source, target id.UserID) (bool, error) {
	defer backends.ObserveStore(storeName, "follow")()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO follows (source_id, target_id) VALUES ($1, $2)
		ON CONFLICT (source_id, target_id) DO NOTHING`, int64(source), int64(target))
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqCheckViolation {
		return false, dErrors.New(dErrors.CodeValidation, "users cannot follow themselves")
	}
	if err != nil {
		return false, fmt.Errorf("insert follow: %w", err)
	}
	return true, nil
}

// RecordPurchase upserts the user-bought-product edge.
func (s *PostgresStore) RecordPurchase(ctx context.Context, userID id.UserID, productID id.ProductID) (bool, error) {
	defer backends.ObserveStore(storeName, "record_purchase")()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO purchases (user_id, product_id) VALUES ($1, $2)
		ON CONFLICT (user_id, product_id) DO NOTHING`, int64(userID), int64(productID))
	if err != nil {
		return false, fmt.Errorf("upsert purchase edge: %w", err)
	}
	return true, nil
}

// Recommend returns product ids for the user, best first.
func (s *PostgresStore) Recommend(ctx context.Context, userID id.UserID) ([]id.ProductID, error) {
	defer backends.ObserveStore(storeName, "recommend")()

	var raw []int64
	if err := s.db.QueryRowContext(ctx, recommendQuery, int64(userID), s.limit).Scan(pq.Array(&raw)); err != nil {
		return nil, fmt.Errorf("recommend: %w", err)
	}
	out := make([]id.ProductID, len(raw))
	for i, v := range raw {
		out[i] = id.ProductID(v)
	}
	return out, nil
}
