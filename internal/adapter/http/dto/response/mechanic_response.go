package response

import (
	"time"

	"advancedtech_backoffice/internal/domain/entities"
)

type MechanicResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Remarks   string    `json:"remarks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromMechanic(m entities.Mechanic) MechanicResponse {
	return MechanicResponse{
		ID:        m.ID,
		Name:      m.Name,
		Image:     m.Image,
		Address:   m.Address,
		Phone:     m.Phone,
		Remarks:   m.Remarks,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func FromMechanics(mechanics []entities.Mechanic) []MechanicResponse {
	out := make([]MechanicResponse, 0, len(mechanics))
	for _, m := range mechanics {
		out = append(out, FromMechanic(m))
	}
	return out
}
