package domain

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	dErrors "polyglot/pkg/domain-errors"
)

// Numeric identifiers are assigned by the catalog (users, products) and the
// statement ledger (statements). Session tokens and cart ids are opaque UUIDs
// issued by the session/cart store.
type (
	UserID       int64
	ProductID    int64
	StatementID  int64
	SessionToken string
	CartID       string
)

// AnonymousUserID labels log entries recorded without a session.
const AnonymousUserID UserID = -1

func (id UserID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id ProductID) String() string   { return strconv.FormatInt(int64(id), 10) }
func (id StatementID) String() string { return strconv.FormatInt(int64(id), 10) }
func (t SessionToken) String() string { return string(t) }
func (c CartID) String() string       { return string(c) }

// IsZero reports whether the token was never issued.
func (t SessionToken) IsZero() bool { return t == "" }

func parsePositive(s, kind string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "missing "+kind)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid "+kind)
	}
	if n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, kind+" must be positive")
	}
	return n, nil
}

// ParseUserID parses a decimal, strictly positive user id.
func ParseUserID(s string) (UserID, error) {
	n, err := parsePositive(s, "user id")
	return UserID(n), err
}

// ParseProductID parses a decimal, strictly positive product id.
func ParseProductID(s string) (ProductID, error) {
	n, err := parsePositive(s, "product id")
	return ProductID(n), err
}

// ParseStatementID parses a decimal, strictly positive statement id.
func ParseStatementID(s string) (StatementID, error) {
	n, err := parsePositive(s, "statement id")
	return StatementID(n), err
}

// NewSessionToken issues a fresh random session token.
func NewSessionToken() SessionToken { return SessionToken(uuid.NewString()) }

// NewCartID issues a fresh random cart id.
func NewCartID() CartID { return CartID(uuid.NewString()) }

// ParseSessionToken validates an opaque session token.
func ParseSessionToken(s string) (SessionToken, error) {
	u, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid session token")
	}
	if u == uuid.Nil {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid session token")
	}
	return SessionToken(u.String()), nil
}
