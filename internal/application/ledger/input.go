package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inputs are the caller-supplied parts of a new row; the ledger fills in the
// id and timestamps. Inputs are assumed well-formed: shape validation is the
// job of the collaborator that produced them (forms, bulk import), not of
// the ledger.

// ProductInput describes a new product. StockQuantity is the opening stock;
// from then on the field is derived from transactions and sales.
type ProductInput struct {
	Name          string
	Category      string
	Weight        string
	Price         decimal.Decimal
	StockQuantity int64
	ReorderLevel  int64
	Description   string
}

// CustomerInput describes a new customer. The derived totals start at zero.
type CustomerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

// StockTransactionInput describes a new stock ledger row.
type StockTransactionInput struct {
	ProductID       string
	TransactionType string
	Quantity        int64
	UnitPrice       decimal.Decimal
	Notes           string
	CreatedBy       string
}

// ExpenseInput describes a new expense.
type ExpenseInput struct {
	Category    string
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	CreatedBy   string
}

// SaleInput describes a new sale header.
type SaleInput struct {
	CustomerID    string
	TotalAmount   decimal.Decimal
	PaymentStatus string
	PaidAmount    decimal.Decimal
	Notes         string
	CreatedBy     string
}

// SaleItemInput describes one line of a new sale. The line total is derived
// as Quantity × UnitPrice when the sale is created.
type SaleItemInput struct {
	ProductID string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// Patches carry partial updates: a nil field is left unchanged. Derived
// fields (customer totals) have no patch field on purpose; only the ledger's
// own rules move them.

// ProductPatch is a partial update of a product.
type ProductPatch struct {
	Name          *string
	Category      *string
	Weight        *string
	Price         *decimal.Decimal
	StockQuantity *int64
	ReorderLevel  *int64
	Description   *string
}

// CustomerPatch is a partial update of a customer's contact fields.
type CustomerPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Notes   *string
}

// SalePatch is a partial update of a sale. Changing TotalAmount here does
// not move the customer's outstanding balance (see Ledger.UpdateSale).
type SalePatch struct {
	TotalAmount   *decimal.Decimal
	PaymentStatus *string
	PaidAmount    *decimal.Decimal
	Notes         *string
}

// ExpensePatch is a partial update of an expense.
type ExpensePatch struct {
	Category    *string
	Amount      *decimal.Decimal
	Description *string
	Date        *time.Time
	CreatedBy   *string
}
