package receipt

import (
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
)

func TestComposeEmptyOrder(t *testing.T) {
	o := entities.JobOrder{ID: "JO-2024-099", Customer: "Walk-in"}

	doc := Compose(o, DefaultIdentity)

	if len(doc.WorkTable.Rows) != WorkTableRows {
		t.Fatalf("work table has %d rows, want %d", len(doc.WorkTable.Rows), WorkTableRows)
	}
	if len(doc.FuelTable.Rows) != FuelTableRows {
		t.Fatalf("fuel table has %d rows, want %d", len(doc.FuelTable.Rows), FuelTableRows)
	}
	if len(doc.PartsTable.Rows) != PartsTableRows {
		t.Fatalf("parts table has %d rows, want %d", len(doc.PartsTable.Rows), PartsTableRows)
	}

	for i, row := range doc.WorkTable.Rows[:WorkTableRows-1] {
		if row.Kind != RowBlank {
			t.Fatalf("row %d kind = %s, want blank", i, row.Kind)
		}
		for _, c := range row.Cells {
			if c != "" {
				t.Fatalf("blank row %d has content: %+v", i, row.Cells)
			}
		}
	}

	last := doc.WorkTable.Rows[WorkTableRows-1]
	if last.Kind != RowTotal {
		t.Fatalf("last row kind = %s, want total", last.Kind)
	}
	if last.Cells[0] != "Total" || last.Cells[len(last.Cells)-1] != "0" {
		t.Fatalf("unexpected total row: %+v", last.Cells)
	}
}

func TestComposeNeverTruncates(t *testing.T) {
	o := entities.JobOrder{ID: "JO-2026-002", Customer: "Fleet account"}
	for i := 0; i < 12; i++ {
		o.WorkRequested = append(o.WorkRequested, entities.WorkItem{Title: "Item", Amount: 10000})
	}

	doc := Compose(o, DefaultIdentity)

	// 12 items plus the total row, no blanks.
	if len(doc.WorkTable.Rows) != 13 {
		t.Fatalf("work table has %d rows, want 13", len(doc.WorkTable.Rows))
	}
	for i, row := range doc.WorkTable.Rows[:12] {
		if row.Kind != RowItem {
			t.Fatalf("row %d kind = %s, want item", i, row.Kind)
		}
	}
	total := doc.WorkTable.Rows[12]
	if total.Kind != RowTotal || total.Cells[1] != "1,200" {
		t.Fatalf("unexpected total row: %+v", total)
	}
}

func TestComposeTableTotalsAreResummed(t *testing.T) {
	// Cached order totals are stale on purpose; table totals must come from
	// the printed rows, the charges block from the cached fields.
	o := entities.JobOrder{
		ID:       "JO-2026-003",
		Customer: "Juan dela Cruz",
		WorkRequested: []entities.WorkItem{
			{Title: "Tune up", Amount: 150000},
			{Title: "Change oil", Amount: 50000},
		},
		LaborTotal: 999900,
		Total:      999900,
	}

	doc := Compose(o, DefaultIdentity)

	totalRow := doc.WorkTable.Rows[len(doc.WorkTable.Rows)-1]
	if totalRow.Cells[1] != "2,000" {
		t.Fatalf("table total = %q, want 2,000", totalRow.Cells[1])
	}

	if doc.Charges[0].Label != "LABOR" || doc.Charges[0].Amount != "9,999" {
		t.Fatalf("unexpected labor charge: %+v", doc.Charges[0])
	}
	if doc.Charges[3].Label != "TOTAL" || doc.Charges[3].Amount != "9,999" {
		t.Fatalf("unexpected total charge: %+v", doc.Charges[3])
	}
}

func TestComposeHeader(t *testing.T) {
	o := entities.JobOrder{
		ID:       "JO-2026-004",
		Customer: "Maria Santos",
		Address:  "Batangas City",
		Make:     "Toyota Vios",
		Plate:    "ABC-1234",
		Phone:    "0917-000-0000",
		Mechanic: "R. Reyes",
		Date:     "2026-08-30",
	}

	doc := Compose(o, DefaultIdentity)

	if doc.Header.Identity.Name != DefaultIdentity.Name {
		t.Fatalf("unexpected identity: %+v", doc.Header.Identity)
	}
	if len(doc.Header.Customer) != 5 {
		t.Fatalf("expected 5 customer fields, got %d", len(doc.Header.Customer))
	}
	if doc.Header.Customer[0].Value != "Maria Santos" || doc.Header.Customer[3].Value != "ABC-1234" {
		t.Fatalf("unexpected customer fields: %+v", doc.Header.Customer)
	}
	if len(doc.Header.Schedule) != 2 {
		t.Fatalf("expected 2 schedule fields, got %d", len(doc.Header.Schedule))
	}
	if doc.Header.Schedule[0].Value != "2026-08-30" || doc.Header.Schedule[1].Value != "R. Reyes" {
		t.Fatalf("unexpected schedule fields: %+v", doc.Header.Schedule)
	}
}

func TestComposeQuantifiedRows(t *testing.T) {
	o := entities.JobOrder{
		ID:       "JO-2026-005",
		Customer: "Walk-in",
		OilsAndFuels: []entities.FluidItem{
			{Qty: 4, Name: "Engine oil", Amount: 20000},
			{Name: "Brake fluid", Amount: 15000},
		},
	}

	doc := Compose(o, DefaultIdentity)

	if doc.FuelTable.Columns[1] != "Oils & Fuels" {
		t.Fatalf("unexpected columns: %+v", doc.FuelTable.Columns)
	}
	first := doc.FuelTable.Rows[0]
	if first.Cells[0] != "4" || first.Cells[1] != "Engine oil" || first.Cells[2] != "200" {
		t.Fatalf("unexpected row: %+v", first.Cells)
	}
	// Zero quantity prints as an empty cell, not "0".
	second := doc.FuelTable.Rows[1]
	if second.Cells[0] != "" {
		t.Fatalf("zero qty rendered as %q", second.Cells[0])
	}
}
