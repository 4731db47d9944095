// Package receipt turns a finalized job order into a fixed-layout printable
// document model. The composer decides structure and content only; renderers
// (HTML, PDF) decide styling.
package receipt

import (
	"strconv"

	"advancedtech_backoffice/internal/domain/entities"
)

// Fixed row counts per table, total row included. Printed receipts keep a
// uniform height regardless of how many items an order has; orders with more
// items than the pad target keep every row and only the total row is appended.
const (
	WorkTableRows  = 10
	FuelTableRows  = 5
	PartsTableRows = 10
)

// Identity is the business header block printed on every receipt. It is
// configuration, not data derived from the order.
type Identity struct {
	Name        string `json:"name"`
	FormerName  string `json:"former_name"`
	AddressLine string `json:"address_line"`
	ContactLine string `json:"contact_line"`
}

// DefaultIdentity is the shop the back office is deployed for.
var DefaultIdentity = Identity{
	Name:        "ADVANCEDTECH CAR SERVICE CENTER CO.",
	FormerName:  "formerly ANTE MOTOR SHOP",
	AddressLine: "National Hi-way, Balagtas Batangas City",
	ContactLine: "Tel. No: 123-4567 | Cell No. 09123456789 / 099912345678",
}

// Field is one labeled value in the receipt header.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Header groups the business identity with the order's customer/vehicle
// fields (left block) and date/mechanic fields (right block).
type Header struct {
	Identity Identity `json:"identity"`
	Customer []Field  `json:"customer"`
	Schedule []Field  `json:"schedule"`
}

// RowKind distinguishes real item rows, layout padding, and the synthetic
// total row closing every table.
type RowKind string

const (
	RowItem  RowKind = "item"
	RowBlank RowKind = "blank"
	RowTotal RowKind = "total"
)

// Row is one printed table row. Blank rows carry empty cells; renderers
// substitute non-breaking spaces. Total rows carry the label in the first
// cell and the amount in the last, spanning the columns in between.
type Row struct {
	Kind  RowKind  `json:"kind"`
	Cells []string `json:"cells"`
}

// Table is one padded item table on the receipt.
type Table struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// ChargeLine is one entry in the charges summary block.
type ChargeLine struct {
	Label  string `json:"label"`
	Amount string `json:"amount"`
}

// Document is the complete printable receipt model.
type Document struct {
	Header     Header       `json:"header"`
	WorkTable  Table        `json:"work_table"`
	FuelTable  Table        `json:"fuel_table"`
	PartsTable Table        `json:"parts_table"`
	Charges    []ChargeLine `json:"charges"`
}

// Compose builds the receipt document for an order.
//
// The charges block trusts the order's cached totals (callers persist orders
// with freshly computed totals). Each table's total row is re-summed from the
// rows actually printed in that table, so the printed table always adds up
// even if it was built from a stale order.
func Compose(o entities.JobOrder, id Identity) Document {
	return Document{
		Header:     composeHeader(o, id),
		WorkTable:  workTable(o.WorkRequested),
		FuelTable:  fluidTable("Oils & Fuels", o.OilsAndFuels, FuelTableRows),
		PartsTable: partsTable(o.Parts),
		Charges: []ChargeLine{
			{Label: "LABOR", Amount: o.LaborTotal.Format()},
			{Label: "PARTS", Amount: o.PartsTotal.Format()},
			{Label: "GAS & OIL", Amount: o.OilTotal.Format()},
			{Label: "TOTAL", Amount: o.Total.Format()},
		},
	}
}

func composeHeader(o entities.JobOrder, id Identity) Header {
	return Header{
		Identity: id,
		Customer: []Field{
			{Label: "Customer's Name", Value: o.Customer},
			{Label: "Address", Value: o.Address},
			{Label: "Make", Value: o.Make},
			{Label: "Plate No", Value: o.Plate},
			{Label: "Tel. No.", Value: o.Phone},
		},
		Schedule: []Field{
			{Label: "Date", Value: o.Date},
			{Label: "Mechanic", Value: o.Mechanic},
		},
	}
}

func workTable(items []entities.WorkItem) Table {
	rows := make([]Row, 0, WorkTableRows)
	var sum entities.Centavos
	for _, it := range items {
		sum += it.Amount
		rows = append(rows, Row{Kind: RowItem, Cells: []string{it.Title, it.Amount.Format()}})
	}
	return Table{
		Columns: []string{"Work Requested", "Amount"},
		Rows:    padAndTotal(rows, WorkTableRows, 2, sum),
	}
}

func fluidTable(title string, items []entities.FluidItem, target int) Table {
	rows := make([]Row, 0, target)
	var sum entities.Centavos
	for _, it := range items {
		sum += it.Amount
		rows = append(rows, quantifiedRow(it.Qty, it.Name, it.Amount))
	}
	return Table{
		Columns: []string{"Qty", title, "Amount"},
		Rows:    padAndTotal(rows, target, 3, sum),
	}
}

func partsTable(items []entities.PartItem) Table {
	rows := make([]Row, 0, PartsTableRows)
	var sum entities.Centavos
	for _, it := range items {
		sum += it.Amount
		rows = append(rows, quantifiedRow(it.Qty, it.Name, it.Amount))
	}
	return Table{
		Columns: []string{"Qty", "Parts", "Amount"},
		Rows:    padAndTotal(rows, PartsTableRows, 3, sum),
	}
}

func quantifiedRow(qty int, name string, amount entities.Centavos) Row {
	q := ""
	if qty != 0 {
		q = strconv.Itoa(qty)
	}
	return Row{Kind: RowItem, Cells: []string{q, name, amount.Format()}}
}

// padAndTotal fills the table with blank rows up to target-1, then appends the
// re-summed total row. The target is a floor: tables never truncate.
func padAndTotal(rows []Row, target, width int, sum entities.Centavos) []Row {
	for len(rows) < target-1 {
		rows = append(rows, Row{Kind: RowBlank, Cells: make([]string, width)})
	}
	total := make([]string, width)
	total[0] = "Total"
	total[width-1] = sum.Format()
	return append(rows, Row{Kind: RowTotal, Cells: total})
}
