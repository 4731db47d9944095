package response

import (
	"time"

	"advancedtech_backoffice/internal/domain/entities"
	"advancedtech_backoffice/internal/domain/totals"
)

type WorkItemResponse struct {
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type QuantifiedItemResponse struct {
	Qty    int     `json:"qty"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// JobOrderResponse mirrors the stored aggregate; amounts go back out as
// decimal pesos with a pre-formatted display string for the totals.
type JobOrderResponse struct {
	ID       string `json:"id"`
	Customer string `json:"customer"`
	Address  string `json:"address"`
	Make     string `json:"make"`
	Plate    string `json:"plate"`
	Phone    string `json:"phone"`
	Mechanic string `json:"mechanic"`
	Status   string `json:"status"`
	Remarks  string `json:"remarks"`
	Date     string `json:"date"`

	WorkRequested []WorkItemResponse       `json:"work_requested"`
	OilsAndFuels  []QuantifiedItemResponse `json:"oils_and_fuels"`
	Parts         []QuantifiedItemResponse `json:"parts"`

	LaborTotal float64 `json:"labor_total"`
	PartsTotal float64 `json:"parts_total"`
	OilTotal   float64 `json:"oil_total"`
	Total      float64 `json:"total"`

	TotalDisplay string `json:"total_display"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromJobOrder(o entities.JobOrder) JobOrderResponse {
	res := JobOrderResponse{
		ID:           o.ID,
		Customer:     o.Customer,
		Address:      o.Address,
		Make:         o.Make,
		Plate:        o.Plate,
		Phone:        o.Phone,
		Mechanic:     o.Mechanic,
		Status:       string(o.Status),
		Remarks:      o.Remarks,
		Date:         o.Date,
		LaborTotal:   o.LaborTotal.Float(),
		PartsTotal:   o.PartsTotal.Float(),
		OilTotal:     o.OilTotal.Float(),
		Total:        o.Total.Float(),
		TotalDisplay: o.Total.Format(),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	for _, it := range o.WorkRequested {
		res.WorkRequested = append(res.WorkRequested, WorkItemResponse{Title: it.Title, Amount: it.Amount.Float()})
	}
	for _, it := range o.OilsAndFuels {
		res.OilsAndFuels = append(res.OilsAndFuels, QuantifiedItemResponse{Qty: it.Qty, Name: it.Name, Amount: it.Amount.Float()})
	}
	for _, it := range o.Parts {
		res.Parts = append(res.Parts, QuantifiedItemResponse{Qty: it.Qty, Name: it.Name, Amount: it.Amount.Float()})
	}
	return res
}

func FromJobOrders(orders []entities.JobOrder) []JobOrderResponse {
	out := make([]JobOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromJobOrder(o))
	}
	return out
}

// TotalsResponse is the result of a totals preview.
type TotalsResponse struct {
	LaborTotal float64 `json:"labor_total"`
	OilTotal   float64 `json:"oil_total"`
	PartsTotal float64 `json:"parts_total"`
	Total      float64 `json:"total"`

	TotalDisplay string `json:"total_display"`
}

func FromTotals(r totals.Result) TotalsResponse {
	return TotalsResponse{
		LaborTotal:   r.Labor.Float(),
		OilTotal:     r.Oil.Float(),
		PartsTotal:   r.Parts.Float(),
		Total:        r.Total.Float(),
		TotalDisplay: r.Total.Format(),
	}
}
