package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense categories.
const (
	ExpenseCapital   = "capital"
	ExpenseOperating = "operating"
)

// Expense is a standalone cost entry. It is independently mutable and
// deletable and never affects the other tables.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"created_by"`
	CreatedAt   time.Time       `json:"created_at"`
}
