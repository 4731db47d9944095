package request

import (
	"strings"

	"advancedtech_backoffice/internal/domain/entities"
)

type WorkItemRequest struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type QuantifiedItemRequest struct {
	Qty    int     `json:"qty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// JobOrderRequest is the editable draft payload accepted by the create,
// update, and totals-preview endpoints. Amounts arrive as decimal pesos and
// are converted to centavos at this boundary; missing or negative amounts
// contribute zero rather than failing the request.
type JobOrderRequest struct {
	Customer string `json:"customer" binding:"required"`
	Address  string `json:"address"`
	Make     string `json:"make"`
	Plate    string `json:"plate"`
	Phone    string `json:"phone"`
	Mechanic string `json:"mechanic"`
	Status   string `json:"status"`
	Remarks  string `json:"remarks"`
	Date     string `json:"date"`

	WorkRequested []WorkItemRequest       `json:"work_requested"`
	OilsAndFuels  []QuantifiedItemRequest `json:"oils_and_fuels"`
	Parts         []QuantifiedItemRequest `json:"parts"`
}

func (r JobOrderRequest) ToDraft() entities.JobOrderDraft {
	d := entities.JobOrderDraft{
		Customer: strings.TrimSpace(r.Customer),
		Address:  r.Address,
		Make:     r.Make,
		Plate:    r.Plate,
		Phone:    r.Phone,
		Mechanic: r.Mechanic,
		Status:   entities.JobOrderStatus(r.Status),
		Remarks:  r.Remarks,
		Date:     r.Date,
	}
	for _, it := range r.WorkRequested {
		d.WorkRequested = append(d.WorkRequested, entities.WorkItem{
			Title:  it.Title,
			Amount: sanitizeAmount(it.Amount),
		})
	}
	for _, it := range r.OilsAndFuels {
		d.OilsAndFuels = append(d.OilsAndFuels, entities.FluidItem{
			Qty:    sanitizeQty(it.Qty),
			Name:   it.Name,
			Amount: sanitizeAmount(it.Amount),
		})
	}
	for _, it := range r.Parts {
		d.Parts = append(d.Parts, entities.PartItem{
			Qty:    sanitizeQty(it.Qty),
			Name:   it.Name,
			Amount: sanitizeAmount(it.Amount),
		})
	}
	return d
}

func sanitizeAmount(v float64) entities.Centavos {
	if v <= 0 {
		return 0
	}
	return entities.CentavosFromFloat(v)
}

func sanitizeQty(q int) int {
	if q < 0 {
		return 0
	}
	return q
}
