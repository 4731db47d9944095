// Package totals derives category subtotals and the grand total from a job
// order's three line-item collections.
//
// Compute is pure and total: it never fails, treats zero-valued amounts as
// contributing nothing, and returns identical results for identical inputs.
// Callers merge the result back into whatever draft or order they are editing.
package totals

import "advancedtech_backoffice/internal/domain/entities"

// Result holds the derived totals of one job order.
type Result struct {
	Labor entities.Centavos `json:"labor_total"`
	Oil   entities.Centavos `json:"oil_total"`
	Parts entities.Centavos `json:"parts_total"`
	Total entities.Centavos `json:"total"`
}

// Compute sums each category and the grand total.
func Compute(work []entities.WorkItem, fluids []entities.FluidItem, parts []entities.PartItem) Result {
	var r Result
	for _, it := range work {
		r.Labor += it.Amount
	}
	for _, it := range fluids {
		r.Oil += it.Amount
	}
	for _, it := range parts {
		r.Parts += it.Amount
	}
	r.Total = r.Labor + r.Oil + r.Parts
	return r
}

// ForOrder computes totals from an order's line items, ignoring its cached
// totals fields.
func ForOrder(o entities.JobOrder) Result {
	return Compute(o.WorkRequested, o.OilsAndFuels, o.Parts)
}

// ForDraft computes totals for an in-progress draft.
func ForDraft(d entities.JobOrderDraft) Result {
	return Compute(d.WorkRequested, d.OilsAndFuels, d.Parts)
}

// Apply returns a copy of the order with its cached totals fields set from a
// fresh computation.
func Apply(o entities.JobOrder) entities.JobOrder {
	r := ForOrder(o)
	o.LaborTotal = r.Labor
	o.OilTotal = r.Oil
	o.PartsTotal = r.Parts
	o.Total = r.Total
	return o
}
