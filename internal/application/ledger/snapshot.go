package ledger

import "github.com/nawiri/nawiri-bms/internal/domain/entity"

// Snapshot is a full copy of the six tables. It is both the read view handed
// to callers and the unit of persistence: the whole snapshot is written as
// one blob after every mutation.
type Snapshot struct {
	Customers         []entity.Customer         `json:"customers"`
	Products          []entity.Product          `json:"products"`
	StockTransactions []entity.StockTransaction `json:"stockTransactions"`
	Expenses          []entity.Expense          `json:"expenses"`
	Sales             []entity.Sale             `json:"sales"`
	SaleItems         []entity.SaleItem         `json:"saleItems"`
}

// Saver receives the snapshot after every mutation. Persistence is
// fire-and-forget: a failing Saver is logged by the ledger, never surfaced
// to the mutating caller.
type Saver interface {
	Save(snap Snapshot) error
}

// SaverFunc adapts a function to the Saver interface.
type SaverFunc func(snap Snapshot) error

// Save implements Saver.
func (f SaverFunc) Save(snap Snapshot) error { return f(snap) }

func copyTable[T any](rows []T) []T {
	out := make([]T, len(rows))
	copy(out, rows)
	return out
}

// clone deep-copies every table. Entities are value types (decimal.Decimal
// is immutable), so copying the slices is a full copy.
func (s Snapshot) clone() Snapshot {
	return Snapshot{
		Customers:         copyTable(s.Customers),
		Products:          copyTable(s.Products),
		StockTransactions: copyTable(s.StockTransactions),
		Expenses:          copyTable(s.Expenses),
		Sales:             copyTable(s.Sales),
		SaleItems:         copyTable(s.SaleItems),
	}
}
