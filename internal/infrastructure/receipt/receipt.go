// Package receipt renders the printable sales receipt as a PDF.
//
// A5 page, same layout the counter staff hand out:
//
//	┌──────────────────────────────────────┐
//	│            NAWIRI BMS                │
//	│            Sales Receipt             │
//	│  Receipt No + Date   │  Customer     │
//	│  ──────────────────────────────────  │
//	│  TABLE: Item | Qty | Price | Total   │
//	│  ──────────────────────────────────  │
//	│  Total / Paid / Balance              │
//	│  Thank-you footer                    │
//	└──────────────────────────────────────┘
package receipt

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/nawiri/nawiri-bms/internal/domain/entity"
)

var (
	colorInk  = &props.Color{Red: 20, Green: 20, Blue: 20}
	colorGray = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const businessName = "NAWIRI BMS"

// Line is one item row resolved for printing: the sale item plus its
// product name. The caller resolves names from the snapshot; a deleted
// product prints as a dash.
type Line struct {
	ProductName string
	Item        entity.SaleItem
}

// Generator renders receipts with Maroto.
type Generator struct{}

// NewGenerator builds the generator.
func NewGenerator() *Generator { return &Generator{} }

// Generate renders the receipt for one sale and returns the PDF bytes.
func (g *Generator) Generate(sale entity.Sale, customer entity.Customer, lines []Line) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Sales Receipt", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorInk, Thickness: 0.5}))
	m.AddRows(detailsRow(sale, customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	m.AddRows(itemsHeaderRow())
	for _, r := range itemRows(lines) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(sale))
	m.AddRows(line.NewRow(2))
	m.AddRows(footerRows()...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("receipt: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: business name and document title, centered.
func headerRow() core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: colorInk, Top: 1,
			}),
			text.New("Sales Receipt", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 9,
			}),
		),
	)
}

// detailsRow: receipt number and date on the left, customer on the right.
func detailsRow(sale entity.Sale, customer entity.Customer) core.Row {
	receiptNo := sale.ID
	if len(receiptNo) > 8 {
		receiptNo = receiptNo[:8]
	}
	return row.New(12).Add(
		col.New(6).Add(
			text.New("Receipt No: "+receiptNo, props.Text{Size: 8, Top: 1}),
			text.New("Date: "+sale.CreatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New("Customer: "+nonEmpty(customer.Name, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Phone: "+nonEmpty(customer.Phone, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
		),
	)
}

// itemsHeaderRow: table header.
func itemsHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Item", 5, align.Left),
		h("Qty", 2, align.Right),
		h("Price", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// itemRows: one row per sale line.
func itemRows(lines []Line) []core.Row {
	out := make([]core.Row, 0, len(lines))
	for _, l := range lines {
		out = append(out, row.New(6).Add(
			col.New(5).Add(text.New(
				nonEmpty(l.ProductName, "-"),
				props.Text{Size: 8, Align: align.Left, Top: 1},
			)),
			col.New(2).Add(text.New(
				fmt.Sprintf("%d", l.Item.Quantity),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(2).Add(text.New(
				"Tsh "+l.Item.UnitPrice.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
			col.New(3).Add(text.New(
				"Tsh "+l.Item.TotalPrice.StringFixed(0),
				props.Text{Size: 8, Align: align.Right, Top: 1},
			)),
		))
	}
	return out
}

// totalsRow: total, paid, and remaining balance.
func totalsRow(sale entity.Sale) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right})
	}
	return row.New(20).Add(
		col.New(5),
		col.New(4).Add(
			label("Total:"),
			label("Paid:"),
			label("Balance:"),
		),
		col.New(3).Add(
			value("Tsh "+sale.TotalAmount.StringFixed(0)),
			value("Tsh "+sale.PaidAmount.StringFixed(0)),
			value("Tsh "+sale.Outstanding().StringFixed(0)),
		),
	)
}

// footerRows: thank-you note and contact line.
func footerRows() []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("Thank you for your business!", props.Text{
				Size: 9, Align: align.Center, Top: 1,
			}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New("For any queries, please contact us at support@nawiribms.com", props.Text{
				Size: 7, Align: align.Center, Color: colorGray,
			}),
		)),
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
