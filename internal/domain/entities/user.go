package entities

import "time"

// UserStatus marks whether a back-office account can sign in.

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

// User is a back-office account. Credentials live with the external auth
// provider; this service only tracks the profile and its role.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	Status    UserStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
