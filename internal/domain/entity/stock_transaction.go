package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock transaction types.
const (
	TransactionStockIn    = "stock_in"
	TransactionStockOut   = "stock_out"
	TransactionAdjustment = "adjustment"
)

// StockTransaction is one row of the stock audit ledger. Rows are append-only:
// there is no update or delete. A wrong entry is corrected by appending a
// compensating transaction, never by rewriting history.
//
// Quantity is positive for stock_in and stock_out (the type carries the
// direction); for adjustment it is signed and applied as given.
type StockTransaction struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	TransactionType string          `json:"transaction_type"`
	Quantity        int64           `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Notes           string          `json:"notes,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

// StockDelta returns the change this transaction applies to the referenced
// product's stock quantity.
func (t StockTransaction) StockDelta() int64 {
	switch t.TransactionType {
	case TransactionStockIn:
		return t.Quantity
	case TransactionStockOut:
		return -t.Quantity
	default: // adjustment: quantity is already signed
		return t.Quantity
	}
}
