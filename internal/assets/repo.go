package assets

import (
	"context"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes asset persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an assets repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new asset and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateAssetDTO) (*models.Asset, error) {
	asset := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return nil, err
	}
	return asset, nil
}

// ListAll returns every asset newest-first with display names joined in.
func (r *Repository) ListAll(ctx context.Context) ([]AdminAssetDTO, error) {
	var rows []adminRow
	err := r.db.WithContext(ctx).
		Table("assets").
		Select(`assets.id, assets.asset_name, assets.cost, assets.date_purchased, assets.created_at,
			categories.name AS category_name,
			departments.name AS department_name,
			profiles.full_name AS created_by_name`).
		Joins("LEFT JOIN categories ON categories.id = assets.category_id").
		Joins("LEFT JOIN departments ON departments.id = assets.department_id").
		Joins("LEFT JOIN profiles ON profiles.id = assets.created_by").
		Order("assets.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]AdminAssetDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromAdminRow(row))
	}
	return out, nil
}

// ListByCreator returns the creator's assets newest-first with options preloaded.
func (r *Repository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Asset, error) {
	var list []models.Asset
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Department").
		Where("created_by = ?", creatorID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Delete removes the asset by id. Missing rows surface as ErrRecordNotFound.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&models.Asset{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
