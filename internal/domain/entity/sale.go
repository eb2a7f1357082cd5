package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment statuses. The status is informational and caller-set; the ledger
// never derives it from PaidAmount nor validates the two against each other.
const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

// Sale is the header of one sale. Its line items live in the sale_items
// table and are exclusively owned by the sale: deleting the sale deletes
// them.
type Sale struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus string          `json:"payment_status"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	Notes         string          `json:"notes,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// Outstanding returns the unpaid portion of the sale.
func (s Sale) Outstanding() decimal.Decimal {
	return s.TotalAmount.Sub(s.PaidAmount)
}

// SaleItem is one line of a sale. TotalPrice is fixed at creation time as
// quantity × unit price and never re-derived afterwards.
type SaleItem struct {
	ID         string          `json:"id"`
	SaleID     string          `json:"sale_id"`
	ProductID  string          `json:"product_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}
