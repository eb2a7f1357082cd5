// Package importer is the bulk-import collaborator: it schema-checks
// candidate product and stock rows, resolves stock rows to product ids by
// name, and feeds every accepted row through the ledger's normal add
// operations. The ledger itself does not re-validate; rejecting malformed
// batches is this package's job.
package importer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nawiri/nawiri-bms/internal/application/ledger"
	"github.com/nawiri/nawiri-bms/internal/domain/entity"
	"github.com/nawiri/nawiri-bms/pkg/logger"
)

// Target is the ledger surface the importer feeds.
type Target interface {
	AddProduct(in ledger.ProductInput)
	AddStockTransaction(in ledger.StockTransactionInput)
	Snapshot() ledger.Snapshot
}

// Importer validates and applies bulk uploads.
type Importer struct {
	target Target
	log    *logger.Logger
}

// New builds an importer.
func New(target Target, log *logger.Logger) *Importer {
	if log == nil {
		log = logger.Nop()
	}
	return &Importer{target: target, log: log}
}

// RowError describes why one uploaded row was rejected. Row is 1-based, the
// way the upload screen numbers them.
type RowError struct {
	Row     int
	Field   string
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s - %s", e.Row, e.Field, e.Message)
}

// ProductRow is one candidate product from a bulk upload.
type ProductRow struct {
	Name          string
	Category      string
	Weight        string // optional
	Price         decimal.Decimal
	StockQuantity int64
	ReorderLevel  int64
	Description   string // optional
}

// StockRow is one candidate stock transaction from a bulk upload. Products
// are referenced by name; the importer resolves the id.
type StockRow struct {
	ProductName     string
	TransactionType string
	Quantity        int64
	UnitPrice       decimal.Decimal // optional
	Notes           string          // optional
}

// ImportProducts validates the whole batch and, only if every row passes,
// feeds each through AddProduct. A batch with any bad row is rejected
// entirely and the errors are returned, one per failing field.
func (i *Importer) ImportProducts(rows []ProductRow) []RowError {
	var errs []RowError
	for n, row := range rows {
		errs = append(errs, validateProductRow(n+1, row)...)
	}
	if len(errs) > 0 {
		i.log.Warn().Int("rows", len(rows)).Int("errors", len(errs)).Msg("product import rejected")
		return errs
	}
	for _, row := range rows {
		i.target.AddProduct(ledger.ProductInput{
			Name:          row.Name,
			Category:      row.Category,
			Weight:        row.Weight,
			Price:         row.Price,
			StockQuantity: row.StockQuantity,
			ReorderLevel:  row.ReorderLevel,
			Description:   row.Description,
		})
	}
	i.log.Info().Int("rows", len(rows)).Msg("products imported")
	return nil
}

// ImportStock validates the batch, resolves each product name against the
// current snapshot, and feeds passing rows through AddStockTransaction with
// the given author. An unresolved name rejects the batch; it never reaches
// the ledger as a dangling reference.
func (i *Importer) ImportStock(rows []StockRow, createdBy string) []RowError {
	byName := make(map[string]string)
	for _, p := range i.target.Snapshot().Products {
		byName[p.Name] = p.ID
	}

	var errs []RowError
	ids := make([]string, len(rows))
	for n, row := range rows {
		rowErrs := validateStockRow(n+1, row)
		if len(rowErrs) == 0 {
			id, ok := byName[row.ProductName]
			if !ok {
				rowErrs = append(rowErrs, RowError{Row: n + 1, Field: "product_name", Message: "no product with this name"})
			}
			ids[n] = id
		}
		errs = append(errs, rowErrs...)
	}
	if len(errs) > 0 {
		i.log.Warn().Int("rows", len(rows)).Int("errors", len(errs)).Msg("stock import rejected")
		return errs
	}

	for n, row := range rows {
		i.target.AddStockTransaction(ledger.StockTransactionInput{
			ProductID:       ids[n],
			TransactionType: row.TransactionType,
			Quantity:        row.Quantity,
			UnitPrice:       row.UnitPrice,
			Notes:           row.Notes,
			CreatedBy:       createdBy,
		})
	}
	i.log.Info().Int("rows", len(rows)).Msg("stock transactions imported")
	return nil
}

func validateProductRow(n int, row ProductRow) []RowError {
	var errs []RowError
	if row.Name == "" {
		errs = append(errs, RowError{Row: n, Field: "name", Message: "name is required"})
	}
	switch row.Category {
	case entity.CategoryFlourSembe, entity.CategoryFlourDona, entity.CategoryBran:
	default:
		errs = append(errs, RowError{Row: n, Field: "category", Message: "unknown category"})
	}
	switch row.Weight {
	case "", entity.Weight5kg, entity.Weight10kg, entity.Weight25kg:
	default:
		errs = append(errs, RowError{Row: n, Field: "weight", Message: "unknown weight"})
	}
	if row.Price.IsNegative() {
		errs = append(errs, RowError{Row: n, Field: "price", Message: "must not be negative"})
	}
	if row.StockQuantity < 0 {
		errs = append(errs, RowError{Row: n, Field: "stock_quantity", Message: "must not be negative"})
	}
	if row.ReorderLevel < 0 {
		errs = append(errs, RowError{Row: n, Field: "reorder_level", Message: "must not be negative"})
	}
	return errs
}

func validateStockRow(n int, row StockRow) []RowError {
	var errs []RowError
	if row.ProductName == "" {
		errs = append(errs, RowError{Row: n, Field: "product_name", Message: "product name is required"})
	}
	switch row.TransactionType {
	case entity.TransactionStockIn, entity.TransactionStockOut, entity.TransactionAdjustment:
	default:
		errs = append(errs, RowError{Row: n, Field: "transaction_type", Message: "unknown transaction type"})
	}
	if row.Quantity < 1 {
		errs = append(errs, RowError{Row: n, Field: "quantity", Message: "must be at least 1"})
	}
	if row.UnitPrice.IsNegative() {
		errs = append(errs, RowError{Row: n, Field: "unit_price", Message: "must not be negative"})
	}
	return errs
}
