package request

import (
	"strings"

	"advancedtech_backoffice/internal/domain/entities"
)

type ServiceRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount" binding:"required"`
}

func (r ServiceRequest) ToEntity() entities.Service {
	return entities.Service{
		Title:       strings.TrimSpace(r.Title),
		Description: r.Description,
		Category:    r.Category,
		Amount:      entities.CentavosFromFloat(r.Amount),
	}
}
