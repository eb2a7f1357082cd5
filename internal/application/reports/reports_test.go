package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nawiri/nawiri-bms/internal/application/ledger"
	"github.com/nawiri/nawiri-bms/internal/application/reports"
	"github.com/nawiri/nawiri-bms/internal/domain/entity"
)

func money(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func seededLedger(t *testing.T) (*ledger.Ledger, entity.Customer) {
	t.Helper()
	l := ledger.New(nil, nil)

	l.AddCustomer(ledger.CustomerInput{Name: "Mama Ntilie"})
	customer := l.Snapshot().Customers[0]

	l.AddProduct(ledger.ProductInput{
		Name: "Sembe 5kg", Category: entity.CategoryFlourSembe,
		Price: money(100), StockQuantity: 50, ReorderLevel: 10,
	})
	l.AddProduct(ledger.ProductInput{
		Name: "Bran 25kg", Category: entity.CategoryBran,
		Price: money(60), StockQuantity: 4, ReorderLevel: 10,
	})
	product := l.Snapshot().Products[0]

	l.AddSale(ledger.SaleInput{
		CustomerID: customer.ID, TotalAmount: money(1000), PaidAmount: money(1000),
		PaymentStatus: entity.PaymentPaid, CreatedBy: "neema",
	}, []ledger.SaleItemInput{{ProductID: product.ID, Quantity: 10, UnitPrice: money(100)}})
	l.AddSale(ledger.SaleInput{
		CustomerID: customer.ID, TotalAmount: money(500), PaidAmount: money(200),
		PaymentStatus: entity.PaymentPartial, CreatedBy: "juma",
	}, []ledger.SaleItemInput{{ProductID: product.ID, Quantity: 5, UnitPrice: money(100)}})
	l.AddSale(ledger.SaleInput{
		CustomerID: customer.ID, TotalAmount: money(300), PaidAmount: money(300),
		PaymentStatus: entity.PaymentPaid, CreatedBy: "neema",
	}, nil)

	l.AddExpense(ledger.ExpenseInput{Category: entity.ExpenseOperating, Amount: money(400), Description: "transport"})
	l.AddExpense(ledger.ExpenseInput{Category: entity.ExpenseCapital, Amount: money(900), Description: "scale"})

	return l, customer
}

func TestSummary(t *testing.T) {
	l, _ := seededLedger(t)
	svc := reports.NewService(l)

	got := svc.Summary()

	assert.True(t, money(1800).Equal(got.TotalSales), "got %s", got.TotalSales)
	assert.True(t, money(1300).Equal(got.TotalExpenses), "got %s", got.TotalExpenses)
	assert.True(t, money(500).Equal(got.Profit), "got %s", got.Profit)
	assert.Equal(t, 1, got.Customers)
	assert.Equal(t, 2, got.Products)
	require.Len(t, got.LowStock, 1)
	assert.Equal(t, "Bran 25kg", got.LowStock[0].Name)
}

func TestSalesByDayGroupsByCreationDate(t *testing.T) {
	l, _ := seededLedger(t)
	svc := reports.NewService(l)

	got := svc.SalesByDay()

	// All seeded sales happen "now", so they share one bucket.
	require.Len(t, got, 1)
	assert.Equal(t, time.Now().Format("2006-01-02"), got[0].Date)
	assert.True(t, money(1800).Equal(got[0].Amount), "got %s", got[0].Amount)
}

func TestExpensesByCategory(t *testing.T) {
	l, _ := seededLedger(t)
	svc := reports.NewService(l)

	got := svc.ExpensesByCategory()

	require.Len(t, got, 2)
	assert.Equal(t, entity.ExpenseCapital, got[0].Category)
	assert.True(t, money(900).Equal(got[0].Amount))
	assert.Equal(t, entity.ExpenseOperating, got[1].Category)
	assert.True(t, money(400).Equal(got[1].Amount))
}

func TestSalesRangeAndCustomerResolution(t *testing.T) {
	l, customer := seededLedger(t)
	svc := reports.NewService(l)

	now := time.Now()
	got := svc.Sales(now.Add(-time.Hour), now.Add(time.Hour))
	require.Len(t, got, 3)
	assert.Equal(t, customer.Name, got[0].CustomerName)
	assert.Equal(t, entity.PaymentPartial, got[1].PaymentStatus)

	// Orphaned customer reference shows an empty name, not an error.
	l.DeleteCustomer(customer.ID)
	got = svc.Sales(now.Add(-time.Hour), now.Add(time.Hour))
	require.Len(t, got, 3)
	assert.Empty(t, got[0].CustomerName)

	assert.Empty(t, svc.Sales(now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"window before the sales is empty")
}

func TestStaffPerformance(t *testing.T) {
	l, _ := seededLedger(t)
	svc := reports.NewService(l)

	got := svc.StaffPerformance()

	require.Len(t, got, 2)
	assert.Equal(t, "juma", got[0].Staff)
	assert.Equal(t, int64(1), got[0].Transactions)
	assert.True(t, money(500).Equal(got[0].TotalSales))
	assert.True(t, money(500).Equal(got[0].AverageValue))

	assert.Equal(t, "neema", got[1].Staff)
	assert.Equal(t, int64(2), got[1].Transactions)
	assert.True(t, money(1300).Equal(got[1].TotalSales))
	assert.True(t, money(650).Equal(got[1].AverageValue))
}

func TestLowStockUsesReorderLevel(t *testing.T) {
	l, _ := seededLedger(t)
	svc := reports.NewService(l)

	low := svc.LowStock()
	require.Len(t, low, 1)
	assert.Equal(t, "Bran 25kg", low[0].Name)

	// Selling the first product down to its reorder level flags it too.
	product := l.Snapshot().Products[0]
	l.AddStockTransaction(ledger.StockTransactionInput{
		ProductID:       product.ID,
		TransactionType: entity.TransactionStockOut,
		Quantity:        product.StockQuantity - product.ReorderLevel,
	})
	assert.Len(t, svc.LowStock(), 2)
}
