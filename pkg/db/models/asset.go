package models

import (
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset represents a purchased item registered by a user.
type Asset struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssetName     string          `gorm:"column:asset_name;type:text;not null"`
	Cost          decimal.Decimal `gorm:"column:cost;type:numeric(12,2);not null"`
	DatePurchased types.Date      `gorm:"column:date_purchased;type:date;not null"`
	CategoryID    *uuid.UUID      `gorm:"column:category_id;type:uuid"`
	DepartmentID  *uuid.UUID      `gorm:"column:department_id;type:uuid"`
	CreatedBy     uuid.UUID       `gorm:"column:created_by;type:uuid;not null"`
	Category      *Category       `gorm:"foreignKey:CategoryID"`
	Department    *Department     `gorm:"foreignKey:DepartmentID"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}
