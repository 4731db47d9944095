package entities

import "testing"

func TestJobOrderDraftWorkItems(t *testing.T) {
	t.Run("add leaves original untouched", func(t *testing.T) {
		d := JobOrderDraft{WorkRequested: []WorkItem{{Title: "Change oil", Amount: 50000}}}

		d2 := d.AddWorkItem(WorkItem{Title: "Tune up", Amount: 200000})

		if len(d.WorkRequested) != 1 {
			t.Fatalf("original draft mutated: %d items", len(d.WorkRequested))
		}
		if len(d2.WorkRequested) != 2 {
			t.Fatalf("expected 2 items, got %d", len(d2.WorkRequested))
		}
		if d2.WorkRequested[1].Title != "Tune up" {
			t.Fatalf("unexpected item: %+v", d2.WorkRequested[1])
		}
	})

	t.Run("remove", func(t *testing.T) {
		d := JobOrderDraft{WorkRequested: []WorkItem{
			{Title: "a", Amount: 100},
			{Title: "b", Amount: 200},
			{Title: "c", Amount: 300},
		}}

		d2 := d.RemoveWorkItem(1)

		if len(d2.WorkRequested) != 2 {
			t.Fatalf("expected 2 items, got %d", len(d2.WorkRequested))
		}
		if d2.WorkRequested[0].Title != "a" || d2.WorkRequested[1].Title != "c" {
			t.Fatalf("unexpected items: %+v", d2.WorkRequested)
		}
		if len(d.WorkRequested) != 3 {
			t.Fatalf("original draft mutated")
		}
	})

	t.Run("remove out of range is a no-op", func(t *testing.T) {
		d := JobOrderDraft{WorkRequested: []WorkItem{{Title: "a", Amount: 100}}}

		for _, i := range []int{-1, 1, 5} {
			d2 := d.RemoveWorkItem(i)
			if len(d2.WorkRequested) != 1 {
				t.Fatalf("RemoveWorkItem(%d): expected 1 item, got %d", i, len(d2.WorkRequested))
			}
		}
	})

	t.Run("update replaces in place", func(t *testing.T) {
		d := JobOrderDraft{WorkRequested: []WorkItem{
			{Title: "a", Amount: 100},
			{Title: "b", Amount: 200},
		}}

		d2 := d.UpdateWorkItem(1, WorkItem{Title: "b2", Amount: 250})

		if d2.WorkRequested[1].Title != "b2" || d2.WorkRequested[1].Amount != 250 {
			t.Fatalf("unexpected item: %+v", d2.WorkRequested[1])
		}
		if d.WorkRequested[1].Title != "b" {
			t.Fatalf("original draft mutated")
		}
	})

	t.Run("update out of range is a no-op", func(t *testing.T) {
		d := JobOrderDraft{WorkRequested: []WorkItem{{Title: "a", Amount: 100}}}
		d2 := d.UpdateWorkItem(3, WorkItem{Title: "x"})
		if d2.WorkRequested[0].Title != "a" {
			t.Fatalf("unexpected items: %+v", d2.WorkRequested)
		}
	})
}

func TestJobOrderDraftFluidAndPartItems(t *testing.T) {
	d := JobOrderDraft{}

	d = d.AddFluidItem(FluidItem{Qty: 4, Name: "Engine oil", Amount: 20000})
	d = d.AddFluidItem(FluidItem{Qty: 1, Name: "Coolant", Amount: 30000})
	d = d.AddPartItem(PartItem{Qty: 2, Name: "Oil filter", Amount: 45000})

	if len(d.OilsAndFuels) != 2 || len(d.Parts) != 1 {
		t.Fatalf("unexpected counts: %d fluids, %d parts", len(d.OilsAndFuels), len(d.Parts))
	}

	d = d.UpdateFluidItem(0, FluidItem{Qty: 5, Name: "Engine oil", Amount: 25000})
	if d.OilsAndFuels[0].Qty != 5 || d.OilsAndFuels[0].Amount != 25000 {
		t.Fatalf("unexpected fluid item: %+v", d.OilsAndFuels[0])
	}

	d = d.RemoveFluidItem(1)
	if len(d.OilsAndFuels) != 1 {
		t.Fatalf("expected 1 fluid item, got %d", len(d.OilsAndFuels))
	}

	d = d.RemovePartItem(0)
	if len(d.Parts) != 0 {
		t.Fatalf("expected no parts, got %d", len(d.Parts))
	}
}
