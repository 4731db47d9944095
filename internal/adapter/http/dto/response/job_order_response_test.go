package response

import (
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/domain/totals"
)

func TestFromJobOrder(t *testing.T) {
	o := entities.JobOrder{
		ID:            "JO-2026-001",
		Customer:      "Juan dela Cruz",
		Status:        entities.JobOrderStatusCompleted,
		WorkRequested: []entities.WorkItem{{Title: "Tune up", Amount: 200000}},
		OilsAndFuels:  []entities.FluidItem{{Qty: 4, Name: "Engine oil", Amount: 50000}},
		LaborTotal:    200000,
		OilTotal:      50000,
		Total:         250000,
	}

	res := FromJobOrder(o)

	if res.ID != "JO-2026-001" || res.Status != "Completed" {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.WorkRequested[0].Amount != 2000 {
		t.Fatalf("work amount = %v, want 2000", res.WorkRequested[0].Amount)
	}
	if res.LaborTotal != 2000 || res.Total != 2500 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.TotalDisplay != "2,500" {
		t.Fatalf("TotalDisplay = %q, want 2,500", res.TotalDisplay)
	}
}

func TestFromTotals(t *testing.T) {
	res := FromTotals(totals.Result{Labor: 200000, Oil: 50000, Parts: 150000, Total: 400000})

	if res.LaborTotal != 2000 || res.OilTotal != 500 || res.PartsTotal != 1500 || res.Total != 4000 {
		t.Fatalf("unexpected response: %+v", res)
	}
	if res.TotalDisplay != "4,000" {
		t.Fatalf("TotalDisplay = %q, want 4,000", res.TotalDisplay)
	}
}
