package render

import (
	"strings"
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/domain/receipt"
)

func testOrder() entities.JobOrder {
	return entities.JobOrder{
		ID:       "JO-2026-001",
		Customer: "Juan dela Cruz",
		Make:     "Toyota Vios",
		Plate:    "ABC-1234",
		Mechanic: "R. Reyes",
		Date:     "2026-08-30",
		WorkRequested: []entities.WorkItem{
			{Title: "Tune up", Amount: 200000},
		},
		OilsAndFuels: []entities.FluidItem{
			{Qty: 4, Name: "Engine oil", Amount: 50000},
		},
		LaborTotal: 200000,
		OilTotal:   50000,
		Total:      250000,
	}
}

func TestHTMLReceipt(t *testing.T) {
	doc := receipt.Compose(testOrder(), receipt.DefaultIdentity)

	out, err := HTMLReceipt(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := string(out)

	for _, want := range []string{
		receipt.DefaultIdentity.Name,
		"Juan dela Cruz",
		"Tune up",
		"2,000",
		"Work Requested",
		"Oils &amp; Fuels",
		"&nbsp;",
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("rendered page missing %q", want)
		}
	}

	// One total row per table, label spanning all but the amount column.
	if got := strings.Count(page, `colspan="1" class="label"`); got != 1 {
		t.Fatalf("expected 1 two-column total row, got %d", got)
	}
	if got := strings.Count(page, `colspan="2" class="label"`); got != 2 {
		t.Fatalf("expected 2 three-column total rows, got %d", got)
	}
}

func TestHTMLReceiptEscapesContent(t *testing.T) {
	o := testOrder()
	o.Customer = `<script>alert("x")</script>`
	doc := receipt.Compose(o, receipt.DefaultIdentity)

	out, err := HTMLReceipt(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Fatalf("customer name not escaped")
	}
}
