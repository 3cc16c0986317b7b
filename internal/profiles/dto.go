package profiles

import (
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	"github.com/google/uuid"
)

// ProfileDTO is the transport shape for an application user profile.
type ProfileDTO struct {
	ID        uuid.UUID  `json:"id"`
	FullName  *string    `json:"full_name,omitempty"`
	Role      enums.Role `json:"role"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CreateProfileDTO holds the data required by the repo to persist a profile.
type CreateProfileDTO struct {
	AccountID uuid.UUID
	FullName  *string
	Role      enums.Role
}

func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:        p.ID,
		FullName:  p.FullName,
		Role:      p.Role,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (c CreateProfileDTO) ToModel() *models.Profile {
	role := c.Role
	if !role.IsValid() {
		role = enums.RoleUser
	}
	return &models.Profile{
		ID:       c.AccountID,
		FullName: c.FullName,
		Role:     role,
	}
}
