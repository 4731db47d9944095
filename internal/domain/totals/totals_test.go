package totals

import (
	"testing"

	"advancedtech_backoffice/internal/domain/entities"
)

func TestCompute(t *testing.T) {
	t.Run("sums each category and the grand total", func(t *testing.T) {
		work := []entities.WorkItem{
			{Title: "Tune up", Amount: 150000},
			{Title: "Change oil", Amount: 50000},
		}
		fluids := []entities.FluidItem{
			{Qty: 4, Name: "Engine oil", Amount: 50000},
		}
		parts := []entities.PartItem{
			{Qty: 1, Name: "Oil filter", Amount: 150000},
		}

		r := Compute(work, fluids, parts)

		if r.Labor != 200000 {
			t.Fatalf("Labor = %d, want 200000", r.Labor)
		}
		if r.Oil != 50000 {
			t.Fatalf("Oil = %d, want 50000", r.Oil)
		}
		if r.Parts != 150000 {
			t.Fatalf("Parts = %d, want 150000", r.Parts)
		}
		if r.Total != 400000 {
			t.Fatalf("Total = %d, want 400000", r.Total)
		}
	})

	t.Run("empty collections yield zeros", func(t *testing.T) {
		r := Compute(nil, nil, nil)
		if r != (Result{}) {
			t.Fatalf("expected zero result, got %+v", r)
		}
	})

	t.Run("zero amounts contribute nothing", func(t *testing.T) {
		work := []entities.WorkItem{
			{Title: "Check brakes"},
			{Title: "Tune up", Amount: 100000},
		}
		r := Compute(work, nil, nil)
		if r.Labor != 100000 || r.Total != 100000 {
			t.Fatalf("unexpected result: %+v", r)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		work := []entities.WorkItem{{Title: "a", Amount: 123}, {Title: "b", Amount: 456}}
		first := Compute(work, nil, nil)
		second := Compute(work, nil, nil)
		if first != second {
			t.Fatalf("results differ: %+v vs %+v", first, second)
		}
	})
}

func TestForOrderIgnoresCachedTotals(t *testing.T) {
	o := entities.JobOrder{
		WorkRequested: []entities.WorkItem{{Title: "Tune up", Amount: 100000}},
		LaborTotal:    999999,
		Total:         999999,
	}

	r := ForOrder(o)

	if r.Labor != 100000 || r.Total != 100000 {
		t.Fatalf("cached totals leaked into computation: %+v", r)
	}
}

func TestApply(t *testing.T) {
	o := entities.JobOrder{
		ID:            "JO-2026-001",
		WorkRequested: []entities.WorkItem{{Title: "Tune up", Amount: 200000}},
		OilsAndFuels:  []entities.FluidItem{{Qty: 4, Name: "Engine oil", Amount: 50000}},
		Parts:         []entities.PartItem{{Qty: 1, Name: "Oil filter", Amount: 150000}},
		LaborTotal:    1,
		OilTotal:      2,
		PartsTotal:    3,
		Total:         4,
	}

	got := Apply(o)

	if got.LaborTotal != 200000 || got.OilTotal != 50000 || got.PartsTotal != 150000 || got.Total != 400000 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if o.LaborTotal != 1 {
		t.Fatalf("Apply mutated its argument")
	}
	if got.ID != o.ID {
		t.Fatalf("Apply dropped fields: %+v", got)
	}
}
