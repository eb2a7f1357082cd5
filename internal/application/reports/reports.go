// Package reports is the read-only reporting side of the system: it
// consumes ledger snapshots and aggregates them into the figures the
// dashboard and the report screens show. It never mutates the ledger.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nawiri/nawiri-bms/internal/application/ledger"
	"github.com/nawiri/nawiri-bms/internal/domain/entity"
)

// SnapshotProvider is the ledger surface reports depend on.
type SnapshotProvider interface {
	Snapshot() ledger.Snapshot
}

// Service builds business reports from the current snapshot.
type Service struct {
	src SnapshotProvider
}

// NewService builds the reporting service.
func NewService(src SnapshotProvider) *Service {
	return &Service{src: src}
}

// Summary is the dashboard headline: overall sales, expenses, profit and
// the products at or below their reorder level.
type Summary struct {
	TotalSales    decimal.Decimal
	TotalExpenses decimal.Decimal
	Profit        decimal.Decimal
	Customers     int
	Products      int
	LowStock      []entity.Product
}

// Summary aggregates the whole history, like the dashboard does.
func (s *Service) Summary() Summary {
	snap := s.src.Snapshot()

	totalSales := decimal.Zero
	for _, sale := range snap.Sales {
		totalSales = totalSales.Add(sale.TotalAmount)
	}
	totalExpenses := decimal.Zero
	for _, e := range snap.Expenses {
		totalExpenses = totalExpenses.Add(e.Amount)
	}

	var low []entity.Product
	for _, p := range snap.Products {
		if p.LowStock() {
			low = append(low, p)
		}
	}

	return Summary{
		TotalSales:    totalSales,
		TotalExpenses: totalExpenses,
		Profit:        totalSales.Sub(totalExpenses),
		Customers:     len(snap.Customers),
		Products:      len(snap.Products),
		LowStock:      low,
	}
}

// DailySales is one point of the sales-over-time series.
type DailySales struct {
	Date   string // YYYY-MM-DD
	Amount decimal.Decimal
}

// SalesByDay groups sale totals by calendar day of creation, oldest first.
func (s *Service) SalesByDay() []DailySales {
	snap := s.src.Snapshot()
	byDay := make(map[string]decimal.Decimal)
	for _, sale := range snap.Sales {
		day := sale.CreatedAt.Format("2006-01-02")
		byDay[day] = byDay[day].Add(sale.TotalAmount)
	}
	out := make([]DailySales, 0, len(byDay))
	for day, amount := range byDay {
		out = append(out, DailySales{Date: day, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// CategoryTotal is one slice of the expense breakdown.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
}

// ExpensesByCategory sums expenses per category, capital before operating.
func (s *Service) ExpensesByCategory() []CategoryTotal {
	snap := s.src.Snapshot()
	byCat := make(map[string]decimal.Decimal)
	for _, e := range snap.Expenses {
		byCat[e.Category] = byCat[e.Category].Add(e.Amount)
	}
	out := make([]CategoryTotal, 0, len(byCat))
	for cat, amount := range byCat {
		out = append(out, CategoryTotal{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// SaleRow is one line of the date-ranged sales report, with the customer
// name resolved. A sale whose customer row is gone shows an empty name; the
// ledger permits that orphan.
type SaleRow struct {
	Date          time.Time
	CustomerName  string
	Amount        decimal.Decimal
	PaymentStatus string
	ServedBy      string
}

// Sales lists the sales created in [from, to], in creation order.
func (s *Service) Sales(from, to time.Time) []SaleRow {
	snap := s.src.Snapshot()
	names := make(map[string]string, len(snap.Customers))
	for _, c := range snap.Customers {
		names[c.ID] = c.Name
	}
	var out []SaleRow
	for _, sale := range snap.Sales {
		if sale.CreatedAt.Before(from) || sale.CreatedAt.After(to) {
			continue
		}
		out = append(out, SaleRow{
			Date:          sale.CreatedAt,
			CustomerName:  names[sale.CustomerID],
			Amount:        sale.TotalAmount,
			PaymentStatus: sale.PaymentStatus,
			ServedBy:      sale.CreatedBy,
		})
	}
	return out
}

// LowStock lists the products at or below their reorder level.
func (s *Service) LowStock() []entity.Product {
	snap := s.src.Snapshot()
	var out []entity.Product
	for _, p := range snap.Products {
		if p.LowStock() {
			out = append(out, p)
		}
	}
	return out
}

// StaffStats is one row of the staff performance report.
type StaffStats struct {
	Staff        string
	TotalSales   decimal.Decimal
	Transactions int64
	AverageValue decimal.Decimal
}

// StaffPerformance totals sales per created_by, sorted by staff name.
func (s *Service) StaffPerformance() []StaffStats {
	snap := s.src.Snapshot()
	byStaff := make(map[string]*StaffStats)
	for _, sale := range snap.Sales {
		st, ok := byStaff[sale.CreatedBy]
		if !ok {
			st = &StaffStats{Staff: sale.CreatedBy}
			byStaff[sale.CreatedBy] = st
		}
		st.TotalSales = st.TotalSales.Add(sale.TotalAmount)
		st.Transactions++
	}
	out := make([]StaffStats, 0, len(byStaff))
	for _, st := range byStaff {
		st.AverageValue = st.TotalSales.Div(decimal.NewFromInt(st.Transactions))
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Staff < out[j].Staff })
	return out
}
