// Package ledger implements the store that owns the business's entity tables
// and keeps their derived fields consistent: product stock quantities,
// customer purchase totals and outstanding balances.
//
// The ledger is the only code path allowed to mutate those fields. Every
// operation applies its full set of table updates as one unit, then hands
// the whole snapshot to the injected Saver. Operations never fail: a
// mutation that references a missing product, customer or sale skips the
// affected side effect, keeps the primary record, and logs the skip. Callers
// observe results through Snapshot, not return values.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nawiri/nawiri-bms/internal/domain/entity"
	"github.com/nawiri/nawiri-bms/pkg/logger"
)

// Ledger owns the six entity tables. A single mutex serializes operations;
// each whole operation is the unit of atomicity.
type Ledger struct {
	mu    sync.Mutex
	log   *logger.Logger
	saver Saver

	customers         []entity.Customer
	products          []entity.Product
	stockTransactions []entity.StockTransaction
	expenses          []entity.Expense
	sales             []entity.Sale
	saleItems         []entity.SaleItem
}

// New builds an empty ledger. saver may be nil (nothing is persisted).
func New(log *logger.Logger, saver Saver) *Ledger {
	if log == nil {
		log = logger.Nop()
	}
	return &Ledger{log: log, saver: saver}
}

// Restore replaces all tables with the given snapshot. Called once at
// startup with the loaded blob, before any mutation.
func (l *Ledger) Restore(snap Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()
	c := snap.clone()
	l.customers = c.Customers
	l.products = c.Products
	l.stockTransactions = c.StockTransactions
	l.expenses = c.Expenses
	l.sales = c.Sales
	l.saleItems = c.SaleItems
}

// Snapshot returns a read-only copy of all tables. Mutating the returned
// value has no effect on the ledger.
func (l *Ledger) Snapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked().clone()
}

func (l *Ledger) snapshotLocked() Snapshot {
	return Snapshot{
		Customers:         l.customers,
		Products:          l.products,
		StockTransactions: l.stockTransactions,
		Expenses:          l.expenses,
		Sales:             l.sales,
		SaleItems:         l.saleItems,
	}
}

// persist hands the current snapshot to the Saver. Fire-and-forget: a save
// failure is logged, never surfaced to the mutating caller.
func (l *Ledger) persist() {
	if l.saver == nil {
		return
	}
	if err := l.saver.Save(l.snapshotLocked().clone()); err != nil {
		l.log.Error().Err(err).Msg("persist snapshot")
	}
}

func (l *Ledger) productIndex(id string) int {
	for i := range l.products {
		if l.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) customerIndex(id string) int {
	for i := range l.customers {
		if l.customers[i].ID == id {
			return i
		}
	}
	return -1
}

func (l *Ledger) saleIndex(id string) int {
	for i := range l.sales {
		if l.sales[i].ID == id {
			return i
		}
	}
	return -1
}

// skipped logs a ReferenceNotFound outcome: the side effect named by op was
// not applied because the referenced row does not exist. The primary record
// of the operation is kept regardless.
func (l *Ledger) skipped(op, table, id string) {
	l.log.Warn().
		Str("op", op).
		Str("table", table).
		Str("id", id).
		Msg("reference not found, side effect skipped")
}

// ── Customers ────────────────────────────────────────────────────────────────

// AddCustomer appends a customer with zeroed derived totals.
func (l *Ledger) AddCustomer(in CustomerInput) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	l.customers = append(l.customers, entity.Customer{
		ID:                 uuid.New().String(),
		Name:               in.Name,
		Email:              in.Email,
		Phone:              in.Phone,
		Address:            in.Address,
		Notes:              in.Notes,
		TotalPurchases:     decimal.Zero,
		OutstandingBalance: decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	l.persist()
}

// UpdateCustomer applies the patch to the customer's contact fields. A
// missing id is a no-op.
func (l *Ledger) UpdateCustomer(id string, patch CustomerPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.customerIndex(id)
	if i < 0 {
		return
	}
	c := &l.customers[i]
	setString(&c.Name, patch.Name)
	setString(&c.Email, patch.Email)
	setString(&c.Phone, patch.Phone)
	setString(&c.Address, patch.Address)
	setString(&c.Notes, patch.Notes)
	c.UpdatedAt = time.Now()
	l.persist()
}

// DeleteCustomer removes the customer row. The customer's sales are kept:
// their customer_id then references a missing row, which downstream reads
// must tolerate. A missing id is a no-op.
func (l *Ledger) DeleteCustomer(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.customerIndex(id)
	if i < 0 {
		return
	}
	l.customers = append(l.customers[:i], l.customers[i+1:]...)
	l.persist()
}

// ── Products ─────────────────────────────────────────────────────────────────

// AddProduct appends a product; StockQuantity in the input is the opening
// stock.
func (l *Ledger) AddProduct(in ProductInput) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	l.products = append(l.products, entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Weight:        in.Weight,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		ReorderLevel:  in.ReorderLevel,
		Description:   in.Description,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	l.persist()
}

// UpdateProduct applies the patch. A missing id is a no-op.
func (l *Ledger) UpdateProduct(id string, patch ProductPatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.productIndex(id)
	if i < 0 {
		return
	}
	p := &l.products[i]
	setString(&p.Name, patch.Name)
	setString(&p.Category, patch.Category)
	setString(&p.Weight, patch.Weight)
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.StockQuantity != nil {
		p.StockQuantity = *patch.StockQuantity
	}
	if patch.ReorderLevel != nil {
		p.ReorderLevel = *patch.ReorderLevel
	}
	setString(&p.Description, patch.Description)
	p.UpdatedAt = time.Now()
	l.persist()
}

// DeleteProduct removes the product row. Stock transactions and sale items
// referencing it are kept. A missing id is a no-op.
func (l *Ledger) DeleteProduct(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.productIndex(id)
	if i < 0 {
		return
	}
	l.products = append(l.products[:i], l.products[i+1:]...)
	l.persist()
}

// ── Stock transactions ───────────────────────────────────────────────────────

// AddStockTransaction appends a stock ledger row and moves the referenced
// product's stock by the row's delta: +quantity for stock_in, -quantity for
// stock_out, the signed quantity as given for adjustment. The row is
// appended even when the product does not exist; only the stock move is
// skipped then. Stock has no lower bound and may go negative.
func (l *Ledger) AddStockTransaction(in StockTransactionInput) {
	l.mu.Lock()
	defer l.mu.Unlock()
	tx := entity.StockTransaction{
		ID:              uuid.New().String(),
		ProductID:       in.ProductID,
		TransactionType: in.TransactionType,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		Notes:           in.Notes,
		CreatedBy:       in.CreatedBy,
		CreatedAt:       time.Now(),
	}
	l.stockTransactions = append(l.stockTransactions, tx)

	if i := l.productIndex(in.ProductID); i >= 0 {
		l.products[i].StockQuantity += tx.StockDelta()
		l.products[i].UpdatedAt = tx.CreatedAt
	} else {
		l.skipped("add_stock_transaction", "products", in.ProductID)
	}
	l.persist()
}

// ── Expenses ─────────────────────────────────────────────────────────────────

// AddExpense appends an expense row.
func (l *Ledger) AddExpense(in ExpenseInput) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expenses = append(l.expenses, entity.Expense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        in.Date,
		CreatedBy:   in.CreatedBy,
		CreatedAt:   time.Now(),
	})
	l.persist()
}

// UpdateExpense applies the patch. A missing id is a no-op.
func (l *Ledger) UpdateExpense(id string, patch ExpensePatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.expenses {
		if l.expenses[i].ID != id {
			continue
		}
		e := &l.expenses[i]
		setString(&e.Category, patch.Category)
		if patch.Amount != nil {
			e.Amount = *patch.Amount
		}
		setString(&e.Description, patch.Description)
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		setString(&e.CreatedBy, patch.CreatedBy)
		l.persist()
		return
	}
}

// DeleteExpense removes the expense row. A missing id is a no-op.
func (l *Ledger) DeleteExpense(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.expenses {
		if l.expenses[i].ID == id {
			l.expenses = append(l.expenses[:i], l.expenses[i+1:]...)
			l.persist()
			return
		}
	}
}

// ── Sales ────────────────────────────────────────────────────────────────────

// AddSale inserts the sale header and one sale item per input line, then
// applies the side effects as one unit: every line decrements its product's
// stock by the line quantity, and the customer's totals move by the sale's
// total and unpaid amounts. A line whose product does not exist skips only
// that line's stock move; a missing customer skips only the totals move.
// The sale and its items are inserted regardless.
func (l *Ledger) AddSale(in SaleInput, items []SaleItemInput) {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	sale := entity.Sale{
		ID:            uuid.New().String(),
		CustomerID:    in.CustomerID,
		TotalAmount:   in.TotalAmount,
		PaymentStatus: in.PaymentStatus,
		PaidAmount:    in.PaidAmount,
		Notes:         in.Notes,
		CreatedBy:     in.CreatedBy,
		CreatedAt:     now,
	}
	l.sales = append(l.sales, sale)

	for _, item := range items {
		l.saleItems = append(l.saleItems, entity.SaleItem{
			ID:         uuid.New().String(),
			SaleID:     sale.ID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)),
		})
		if i := l.productIndex(item.ProductID); i >= 0 {
			l.products[i].StockQuantity -= item.Quantity
			l.products[i].UpdatedAt = now
		} else {
			l.skipped("add_sale", "products", item.ProductID)
		}
	}

	if i := l.customerIndex(in.CustomerID); i >= 0 {
		c := &l.customers[i]
		c.TotalPurchases = c.TotalPurchases.Add(sale.TotalAmount)
		c.OutstandingBalance = c.OutstandingBalance.Add(sale.Outstanding())
		c.UpdatedAt = now
	} else {
		l.skipped("add_sale", "customers", in.CustomerID)
	}

	l.log.Info().
		Str("sale_id", sale.ID).
		Str("customer_id", sale.CustomerID).
		Int("items", len(items)).
		Str("total", sale.TotalAmount.String()).
		Msg("sale recorded")
	l.persist()
}

// UpdateSale applies the patch to the sale and moves the customer's
// outstanding balance by the change in the unpaid portion.
//
// The recompute deliberately uses the sale's previous total_amount on both
// sides, even when the patch changes TotalAmount: old and new outstanding
// are oldTotal-oldPaid and oldTotal-newPaid. A caller that patches
// TotalAmount therefore leaves the balance tracking the old total; pair such
// an edit with a delete-and-recreate instead. total_purchases is never
// touched here. A missing sale id is a no-op.
func (l *Ledger) UpdateSale(id string, patch SalePatch) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.saleIndex(id)
	if i < 0 {
		return
	}
	old := l.sales[i]

	s := &l.sales[i]
	if patch.TotalAmount != nil {
		s.TotalAmount = *patch.TotalAmount
	}
	setString(&s.PaymentStatus, patch.PaymentStatus)
	if patch.PaidAmount != nil {
		s.PaidAmount = *patch.PaidAmount
	}
	setString(&s.Notes, patch.Notes)

	newPaid := old.PaidAmount
	if patch.PaidAmount != nil {
		newPaid = *patch.PaidAmount
	}
	oldOutstanding := old.TotalAmount.Sub(old.PaidAmount)
	newOutstanding := old.TotalAmount.Sub(newPaid)

	if ci := l.customerIndex(old.CustomerID); ci >= 0 {
		c := &l.customers[ci]
		c.OutstandingBalance = c.OutstandingBalance.Sub(oldOutstanding).Add(newOutstanding)
		c.UpdatedAt = time.Now()
	} else {
		l.skipped("update_sale", "customers", old.CustomerID)
	}
	l.persist()
}

// DeleteSale removes the sale and every sale item owned by it, restores each
// item's quantity to its product's stock, and reverses the sale's
// contribution to the customer's totals. A missing sale id is a no-op.
func (l *Ledger) DeleteSale(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.saleIndex(id)
	if i < 0 {
		return
	}
	sale := l.sales[i]
	now := time.Now()

	kept := l.saleItems[:0]
	for _, item := range l.saleItems {
		if item.SaleID != id {
			kept = append(kept, item)
			continue
		}
		if pi := l.productIndex(item.ProductID); pi >= 0 {
			l.products[pi].StockQuantity += item.Quantity
			l.products[pi].UpdatedAt = now
		} else {
			l.skipped("delete_sale", "products", item.ProductID)
		}
	}
	l.saleItems = kept
	l.sales = append(l.sales[:i], l.sales[i+1:]...)

	if ci := l.customerIndex(sale.CustomerID); ci >= 0 {
		c := &l.customers[ci]
		c.TotalPurchases = c.TotalPurchases.Sub(sale.TotalAmount)
		c.OutstandingBalance = c.OutstandingBalance.Sub(sale.Outstanding())
		c.UpdatedAt = now
	} else {
		l.skipped("delete_sale", "customers", sale.CustomerID)
	}

	l.log.Info().Str("sale_id", id).Msg("sale deleted, side effects reversed")
	l.persist()
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
