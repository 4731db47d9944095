package request

import (
	"strings"

	"advancedtech_backoffice/internal/domain/entities"
)

type MechanicRequest struct {
	Name    string `json:"name" binding:"required"`
	Image   string `json:"image"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Remarks string `json:"remarks"`
}

func (r MechanicRequest) ToEntity() entities.Mechanic {
	return entities.Mechanic{
		Name:    strings.TrimSpace(r.Name),
		Image:   r.Image,
		Address: r.Address,
		Phone:   r.Phone,
		Remarks: r.Remarks,
	}
}
