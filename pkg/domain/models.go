package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is an immutable catalog row.
type Product struct {
	ID               ProductID         `json:"id"`
	Vendor           string            `json:"vendor"`
	ProductType      string            `json:"product_type"`
	ProductCondition string            `json:"product_condition"`
	MPN              string            `json:"mpn"`
	Price            decimal.Decimal   `json:"price"`
	StockQuantity    int               `json:"stock_quantity"`
	WarrantyMonths   int               `json:"product_warranty"`
	Attributes       map[string]string `json:"attributes,omitempty"`
}

// Statement is the immutable record of one checkout.
type Statement struct {
	ID           StatementID `json:"id"`
	UserID       UserID      `json:"user_id"`
	Purchase     Cart        `json:"purchase"`
	CreationDate time.Time   `json:"creation_date"`
}

// LogEntry is one append-only audit record.
type LogEntry struct {
	UserID     UserID            `json:"user_id"`
	Timestamp  time.Time         `json:"timestamp"`
	Action     string            `json:"action"`
	Parameters map[string]string `json:"parameters"`
	Tags       []string          `json:"tags"`
}
