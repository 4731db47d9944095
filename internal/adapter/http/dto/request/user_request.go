package request

import (
	"strings"

	"advancedtech_backoffice/internal/domain/entities"
)

type UserRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func (r UserRequest) ToEntity() entities.User {
	return entities.User{
		Name:   strings.TrimSpace(r.Name),
		Email:  strings.ToLower(strings.TrimSpace(r.Email)),
		Role:   r.Role,
		Status: entities.UserStatus(r.Status),
	}
}
