package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer represents a buyer. TotalPurchases and OutstandingBalance are
// derived fields maintained by the ledger: the sum of total amounts, and the
// sum of unpaid portions, over the customer's currently existing sales.
type Customer struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Email              string          `json:"email,omitempty"`
	Phone              string          `json:"phone,omitempty"`
	Address            string          `json:"address,omitempty"`
	Notes              string          `json:"notes,omitempty"`
	TotalPurchases     decimal.Decimal `json:"total_purchases"`
	OutstandingBalance decimal.Decimal `json:"outstanding_balance"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}
