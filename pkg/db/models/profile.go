package models

import (
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	"github.com/google/uuid"
)

// Profile carries the application-level user record. Its primary key equals
// the owning account's id; exactly one profile exists per account.
type Profile struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	FullName  *string    `gorm:"column:full_name"`
	Role      enums.Role `gorm:"column:role;type:text;not null;default:'user'"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}
