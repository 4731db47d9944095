package render

import (
	"fmt"

	"advancedtech_backoffice/internal/domain/receipt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFReceipt renders the document as an A4 PDF using maroto/v2.
func PDFReceipt(doc receipt.Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addIdentity(m, doc.Header.Identity)
	addHeaderFields(m, doc.Header)
	addItemTable(m, doc.WorkTable)
	addItemTable(m, doc.FuelTable)
	addItemTable(m, doc.PartsTable)
	addCharges(m, doc.Charges)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate receipt PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func addIdentity(m core.Maroto, id receipt.Identity) {
	centered := props.Text{Size: 9, Align: align.Center}

	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(id.Name, props.Text{Size: 14, Style: fontstyle.Bold, Align: align.Center}),
			),
		),
		row.New(5).Add(col.New(12).Add(text.New(id.FormerName, centered))),
		row.New(5).Add(col.New(12).Add(text.New(id.AddressLine, centered))),
		row.New(5).Add(col.New(12).Add(text.New(id.ContactLine, centered))),
		row.New(4),
	)
}

func addHeaderFields(m core.Maroto, h receipt.Header) {
	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	value := props.Text{Size: 9, Align: align.Left, Left: 35}

	// Customer/vehicle fields on the left, date/mechanic on the right; the
	// right block is shorter, so pad it with empty rows.
	for i := 0; i < len(h.Customer); i++ {
		left := h.Customer[i]
		cols := []core.Col{
			col.New(7).Add(
				text.New(left.Label+":", label),
				text.New(left.Value, value),
			),
		}
		if i < len(h.Schedule) {
			right := h.Schedule[i]
			cols = append(cols, col.New(5).Add(
				text.New(right.Label+":", label),
				text.New(right.Value, value),
			))
		}
		m.AddRows(row.New(6).Add(cols...))
	}
	m.AddRows(row.New(4))
}

func addItemTable(m core.Maroto, t receipt.Table) {
	headerBg := &props.Color{Red: 230, Green: 230, Blue: 230}
	headerCell := props.Cell{BackgroundColor: headerBg}
	headerText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}

	widths := columnWidths(len(t.Columns))

	var headerCols []core.Col
	for i, c := range t.Columns {
		headerCols = append(headerCols, col.New(widths[i]).Add(text.New(c, headerText)).WithStyle(&headerCell))
	}
	m.AddRows(row.New(6).Add(headerCols...))

	cellText := props.Text{Size: 8, Align: align.Left}
	totalText := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}

	for _, r := range t.Rows {
		style := cellText
		if r.Kind == receipt.RowTotal {
			style = totalText
		}
		var cols []core.Col
		for i, cell := range r.Cells {
			cols = append(cols, col.New(widths[i]).Add(text.New(cell, style)))
		}
		m.AddRows(row.New(5).Add(cols...))
	}
	m.AddRows(row.New(4))
}

// columnWidths splits maroto's 12-unit grid: the amount column gets 4 units,
// the description column takes the rest.
func columnWidths(n int) []int {
	switch n {
	case 2:
		return []int{8, 4}
	case 3:
		return []int{2, 6, 4}
	default:
		widths := make([]int, n)
		for i := range widths {
			widths[i] = 12 / n
		}
		return widths
	}
}

func addCharges(m core.Maroto, charges []receipt.ChargeLine) {
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New("Charges", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left})),
	))

	label := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Left}
	amount := props.Text{Size: 9, Align: align.Right}

	for _, c := range charges {
		m.AddRows(row.New(5).Add(
			col.New(6).Add(text.New(c.Label+":", label)),
			col.New(6).Add(text.New(c.Amount, amount)),
		))
	}
}
