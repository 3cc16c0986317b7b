package refdata

import (
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/google/uuid"
)

// OptionDTO is the transport shape shared by categories and departments.
type OptionDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateOptionRequest carries the name for a new category or department.
type CreateOptionRequest struct {
	Name string `json:"name" validate:"required"`
}

func categoryDTOs(list []models.Category) []OptionDTO {
	out := make([]OptionDTO, 0, len(list))
	for _, c := range list {
		out = append(out, OptionDTO{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt})
	}
	return out
}

func departmentDTOs(list []models.Department) []OptionDTO {
	out := make([]OptionDTO, 0, len(list))
	for _, d := range list {
		out = append(out, OptionDTO{ID: d.ID, Name: d.Name, CreatedAt: d.CreatedAt})
	}
	return out
}
