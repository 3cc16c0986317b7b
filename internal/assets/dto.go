package assets

import (
	"time"

	"github.com/eport-labs/asset-manager-backend/internal/refdata"
	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/eport-labs/asset-manager-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	missingOptionPlaceholder  = "–"
	missingCreatorPlaceholder = "Unknown"
)

// AssetDTO is the owner-facing transport shape with the option objects attached.
type AssetDTO struct {
	ID            uuid.UUID          `json:"id"`
	AssetName     string             `json:"asset_name"`
	Cost          decimal.Decimal    `json:"cost"`
	DatePurchased types.Date         `json:"date_purchased"`
	Category      *refdata.OptionDTO `json:"category,omitempty"`
	Department    *refdata.OptionDTO `json:"department,omitempty"`
	CreatedBy     uuid.UUID          `json:"created_by"`
	CreatedAt     time.Time          `json:"created_at"`
}

// AdminAssetDTO is the flattened admin listing row with display names resolved.
type AdminAssetDTO struct {
	ID             uuid.UUID       `json:"id"`
	AssetName      string          `json:"asset_name"`
	Cost           decimal.Decimal `json:"cost"`
	DatePurchased  types.Date      `json:"date_purchased"`
	CategoryName   string          `json:"category_name"`
	DepartmentName string          `json:"department_name"`
	CreatedByName  string          `json:"created_by_name"`
	CreatedAt      time.Time       `json:"created_at"`
}

// CreateAssetRequest is the payload accepted from asset owners.
type CreateAssetRequest struct {
	AssetName     string     `json:"asset_name" validate:"required"`
	Cost          string     `json:"cost" validate:"required"`
	DatePurchased string     `json:"date_purchased" validate:"required"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	DepartmentID  *uuid.UUID `json:"department_id,omitempty"`
}

// CreateAssetDTO holds the validated data handed to the repo.
type CreateAssetDTO struct {
	AssetName     string
	Cost          decimal.Decimal
	DatePurchased types.Date
	CategoryID    *uuid.UUID
	DepartmentID  *uuid.UUID
	CreatedBy     uuid.UUID
}

func (c CreateAssetDTO) ToModel() *models.Asset {
	return &models.Asset{
		AssetName:     c.AssetName,
		Cost:          c.Cost,
		DatePurchased: c.DatePurchased,
		CategoryID:    c.CategoryID,
		DepartmentID:  c.DepartmentID,
		CreatedBy:     c.CreatedBy,
	}
}

func FromModel(a *models.Asset) *AssetDTO {
	if a == nil {
		return nil
	}
	dto := &AssetDTO{
		ID:            a.ID,
		AssetName:     a.AssetName,
		Cost:          a.Cost,
		DatePurchased: a.DatePurchased,
		CreatedBy:     a.CreatedBy,
		CreatedAt:     a.CreatedAt,
	}
	if a.Category != nil {
		dto.Category = &refdata.OptionDTO{ID: a.Category.ID, Name: a.Category.Name, CreatedAt: a.Category.CreatedAt}
	}
	if a.Department != nil {
		dto.Department = &refdata.OptionDTO{ID: a.Department.ID, Name: a.Department.Name, CreatedAt: a.Department.CreatedAt}
	}
	return dto
}

// adminRow is the scan target for the admin listing join.
type adminRow struct {
	ID             uuid.UUID       `gorm:"column:id"`
	AssetName      string          `gorm:"column:asset_name"`
	Cost           decimal.Decimal `gorm:"column:cost"`
	DatePurchased  types.Date      `gorm:"column:date_purchased"`
	CategoryName   *string         `gorm:"column:category_name"`
	DepartmentName *string         `gorm:"column:department_name"`
	CreatedByName  *string         `gorm:"column:created_by_name"`
	CreatedAt      time.Time       `gorm:"column:created_at"`
}

// fromAdminRow resolves the join's nullable display names into placeholders.
func fromAdminRow(row adminRow) AdminAssetDTO {
	dto := AdminAssetDTO{
		ID:             row.ID,
		AssetName:      row.AssetName,
		Cost:           row.Cost,
		DatePurchased:  row.DatePurchased,
		CategoryName:   missingOptionPlaceholder,
		DepartmentName: missingOptionPlaceholder,
		CreatedByName:  missingCreatorPlaceholder,
		CreatedAt:      row.CreatedAt,
	}
	if row.CategoryName != nil && *row.CategoryName != "" {
		dto.CategoryName = *row.CategoryName
	}
	if row.DepartmentName != nil && *row.DepartmentName != "" {
		dto.DepartmentName = *row.DepartmentName
	}
	if row.CreatedByName != nil && *row.CreatedByName != "" {
		dto.CreatedByName = *row.CreatedByName
	}
	return dto
}
