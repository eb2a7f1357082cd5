package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product categories sold by the business.
const (
	CategoryFlourSembe = "flour-sembe"
	CategoryFlourDona  = "flour-dona"
	CategoryBran       = "bran"
)

// Bag weights a product is packed in.
const (
	Weight5kg  = "5kg"
	Weight10kg = "10kg"
	Weight25kg = "25kg"
)

// Product represents a sellable item. StockQuantity is a derived field: only
// the ledger may change it, as a function of stock transactions and sale
// items. It may go negative; there is no lower bound.
type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Weight        string          `json:"weight,omitempty"` // empty when the product is not bagged
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stock_quantity"`
	ReorderLevel  int64           `json:"reorder_level"`
	Description   string          `json:"description,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// LowStock reports whether the product is at or below its reorder level.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.ReorderLevel
}
