// Package wire defines the request bodies exchanged between the front door and
// the backing services. Responses use the httputil envelope.
package wire

import (
	"time"

	id "polyglot/pkg/domain"
)

// Catalog/auth.

type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type Username struct {
	Username string `json:"username" validate:"required"`
}

// Session/cart store.

type CreateSession struct {
	UserID id.UserID `json:"user_id" validate:"required,gt=0"`
	// TTLSeconds defaults to 3600 when zero.
	TTLSeconds int `json:"ttl,omitempty" validate:"gte=0"`
}

type UserRef struct {
	UserID id.UserID `json:"user_id" validate:"required,gt=0"`
}

type SessionRef struct {
	SessionID id.SessionToken `json:"session_id" validate:"required"`
}

type UpdateCart struct {
	UserID    id.UserID    `json:"user_id" validate:"required,gt=0"`
	ProductID id.ProductID `json:"product_id" validate:"required,gt=0"`
	Quantity  int          `json:"quantity"`
}

// Statement store.

type CreateStatement struct {
	UserID   id.UserID `json:"user_id" validate:"required,gt=0"`
	Purchase id.Cart   `json:"purchase" validate:"required,min=1"`
}

type StatementRef struct {
	StatementID id.StatementID `json:"statement_id" validate:"required,gt=0"`
}

// Log store.

type AppendLog struct {
	UserID     id.UserID         `json:"user_id"`
	Action     string            `json:"action" validate:"required"`
	Parameters map[string]string `json:"parameters"`
	Tags       []string          `json:"tags"`
	// Timestamp is assigned by the store when zero.
	Timestamp time.Time `json:"timestamp,omitempty"`
}

type ReadLogs struct {
	UserID id.UserID `json:"user_id"`
	Limit  int       `json:"limit,omitempty" validate:"gte=0"`
}

// Graph store.

type Follow struct {
	SourceID id.UserID `json:"source_id" validate:"required,gt=0"`
	TargetID id.UserID `json:"target_id" validate:"required,gt=0"`
}

type PurchaseEdge struct {
	UserID    id.UserID    `json:"user_id" validate:"required,gt=0"`
	ProductID id.ProductID `json:"product_id" validate:"required,gt=0"`
}
