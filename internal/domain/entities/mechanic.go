package entities

import "time"

// Mechanic is a technician that can be assigned to job orders.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)

type Mechanic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
