package request

import (
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
)

func TestJobOrderRequestToDraft(t *testing.T) {
	t.Run("converts pesos to centavos", func(t *testing.T) {
		r := JobOrderRequest{
			Customer:      " Juan dela Cruz ",
			Status:        "Pending",
			WorkRequested: []WorkItemRequest{{Title: "Tune up", Amount: 1500.5}},
			OilsAndFuels:  []QuantifiedItemRequest{{Qty: 4, Name: "Engine oil", Amount: 500}},
			Parts:         []QuantifiedItemRequest{{Qty: 1, Name: "Oil filter", Amount: 1500}},
		}

		d := r.ToDraft()

		if d.Customer != "Juan dela Cruz" {
			t.Fatalf("expected trimmed customer, got %q", d.Customer)
		}
		if d.Status != entities.JobOrderStatusPending {
			t.Fatalf("unexpected status: %s", d.Status)
		}
		if d.WorkRequested[0].Amount != 150050 {
			t.Fatalf("work amount = %d, want 150050", d.WorkRequested[0].Amount)
		}
		if d.OilsAndFuels[0].Amount != 50000 || d.OilsAndFuels[0].Qty != 4 {
			t.Fatalf("unexpected fluid item: %+v", d.OilsAndFuels[0])
		}
		if d.Parts[0].Amount != 150000 {
			t.Fatalf("parts amount = %d, want 150000", d.Parts[0].Amount)
		}
	})

	t.Run("negative amounts and quantities clamp to zero", func(t *testing.T) {
		r := JobOrderRequest{
			Customer:      "Juan",
			WorkRequested: []WorkItemRequest{{Title: "Estimate only", Amount: -50}},
			Parts:         []QuantifiedItemRequest{{Qty: -2, Name: "Oil filter", Amount: 100}},
		}

		d := r.ToDraft()

		if d.WorkRequested[0].Amount != 0 {
			t.Fatalf("negative amount not clamped: %d", d.WorkRequested[0].Amount)
		}
		if d.Parts[0].Qty != 0 {
			t.Fatalf("negative qty not clamped: %d", d.Parts[0].Qty)
		}
		if d.Parts[0].Amount != 10000 {
			t.Fatalf("parts amount = %d, want 10000", d.Parts[0].Amount)
		}
	})

	t.Run("empty collections stay empty", func(t *testing.T) {
		d := JobOrderRequest{Customer: "Juan"}.ToDraft()
		if len(d.WorkRequested) != 0 || len(d.OilsAndFuels) != 0 || len(d.Parts) != 0 {
			t.Fatalf("unexpected items: %+v", d)
		}
	})
}
