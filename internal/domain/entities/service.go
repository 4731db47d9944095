package entities

import "time"

// Service is a catalog entry offered by the shop (e.g. "Oil Change").
//
// Storage model (DynamoDB):
//   - PK: id (uuid)

type Service struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Amount      Centavos  `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
