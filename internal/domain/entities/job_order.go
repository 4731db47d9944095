package entities

import "time"

// JobOrderStatus tracks a job order from intake to completion.

type JobOrderStatus string

const (
	JobOrderStatusPending    JobOrderStatus = "Pending"
	JobOrderStatusInProgress JobOrderStatus = "In Progress"
	JobOrderStatusCompleted  JobOrderStatus = "Completed"
)

// WorkItem is a labor line (work requested by the customer).
type WorkItem struct {
	Title  string   `json:"title"`
	Amount Centavos `json:"amount"`
}

// FluidItem is an oils & fuels consumable line. It is structurally identical
// to PartItem but kept nominally distinct because it feeds a separate subtotal.
type FluidItem struct {
	Qty    int      `json:"qty"`
	Name   string   `json:"name"`
	Amount Centavos `json:"amount"`
}

// PartItem is a physical part line.
type PartItem struct {
	Qty    int      `json:"qty"`
	Name   string   `json:"name"`
	Amount Centavos `json:"amount"`
}

// JobOrder is the aggregate persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (format JO-<year>-<sequence>, issued by the repository at create)
//
// The four totals fields are caches derived from the three line-item slices.
// Use cases recompute them before every write, so a persisted order always
// satisfies Total == LaborTotal + PartsTotal + OilTotal.

type JobOrder struct {
	ID       string         `json:"id"`
	Customer string         `json:"customer"`
	Address  string         `json:"address"`
	Make     string         `json:"make"`
	Plate    string         `json:"plate"`
	Phone    string         `json:"phone"`
	Mechanic string         `json:"mechanic"`
	Status   JobOrderStatus `json:"status"`
	Remarks  string         `json:"remarks"`
	Date     string         `json:"date"`

	WorkRequested []WorkItem  `json:"work_requested"`
	OilsAndFuels  []FluidItem `json:"oils_and_fuels"`
	Parts         []PartItem  `json:"parts"`

	LaborTotal Centavos `json:"labor_total"`
	PartsTotal Centavos `json:"parts_total"`
	OilTotal   Centavos `json:"oil_total"`
	Total      Centavos `json:"total"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
