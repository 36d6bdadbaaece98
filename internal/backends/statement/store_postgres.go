package statement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"polyglot/internal/backends"
	id "polyglot/pkg/domain"
	"polyglot/pkg/platform/sentinel"
)

const schema = `
CREATE TABLE IF NOT EXISTS statements (
	id            BIGSERIAL PRIMARY KEY,
	user_id       BIGINT NOT NULL,
	purchase      JSONB NOT NULL,
	creation_date TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS statements_user_id_idx ON statements (user_id, id);
`

const storeName = "postgres_statement"

// PostgresStore keeps immutable purchase statements. Ids come from a
// sequence, so they are monotonic.
type PostgresStore struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPostgres constructs the statement store over a pgx pool.
func NewPostgres(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool, now: time.Now}
}

// Migrate creates the statements table if it is missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate statement schema: %w", err)
	}
	return nil
}

// Create records a purchase snapshot and returns its id.
func (s *PostgresStore) Create(ctx context.Context, userID id.UserID, purchase id.Cart) (id.StatementID, error) {
	defer backends.ObserveStore(storeName, "create")()

	raw, err := json.Marshal(purchase.Snapshot())
	if err != nil {
		return 0, fmt.Errorf("encode purchase: %w", err)
	}
	var statementID id.StatementID
	err = s.pool.QueryRow(ctx, `
		INSERT INTO statements (user_id, purchase, creation_date)
		VALUES ($1, $2, $3)
		RETURNING id`, int64(userID), raw, s.now().UTC()).Scan(&statementID)
	if err != nil {
		return 0, fmt.Errorf("insert statement: %w", err)
	}
	return statementID, nil
}

// List returns the user's statement ids in creation order.
func (s *PostgresStore) List(ctx context.Context, userID id.UserID) ([]id.StatementID, error) {
	defer backends.ObserveStore(storeName, "list")()

	rows, err := s.pool.Query(ctx, `SELECT id FROM statements WHERE user_id = $1 ORDER BY id`, int64(userID))
	if err != nil {
		return nil, fmt.Errorf("list statements: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan statement ids: %w", err)
	}
	out := make([]id.StatementID, len(ids))
	for i, v := range ids {
		out[i] = id.StatementID(v)
	}
	return out, nil
}

// Read returns one statement, or sentinel.ErrNotFound.
func (s *PostgresStore) Read(ctx context.Context, statementID id.StatementID) (id.Statement, error) {
	defer backends.ObserveStore(storeName, "read")()

	var (
		st     id.Statement
		userID int64
		raw    []byte
	)
	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, purchase, creation_date
		FROM statements WHERE id = $1`, int64(statementID),
	).Scan(&st.ID, &userID, &raw, &st.CreationDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return id.Statement{}, sentinel.ErrNotFound
	}
	if err != nil {
		return id.Statement{}, fmt.Errorf("read statement: %w", err)
	}
	st.UserID = id.UserID(userID)
	if err := json.Unmarshal(raw, &st.Purchase); err != nil {
		return id.Statement{}, fmt.Errorf("decode purchase of statement %d: %w", statementID, err)
	}
	return st, nil
}
