package profiles

import (
	"context"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository exposes profile-related persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a profiles repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new profile keyed by the owning account's id.
func (r *Repository) Create(ctx context.Context, dto CreateProfileDTO) (*models.Profile, error) {
	profile := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}

// FindByID loads a profile by account id.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListOrderedByCreation returns every profile, oldest first.
func (r *Repository) ListOrderedByCreation(ctx context.Context) ([]models.Profile, error) {
	var list []models.Profile
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateFullNameAndRole overwrites the profile's display name and role.
func (r *Repository) UpdateFullNameAndRole(ctx context.Context, id uuid.UUID, fullName *string, role enums.Role) error {
	return r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{"full_name": fullName, "role": role}).Error
}

// UpdateRole overwrites the profile's role.
func (r *Repository) UpdateRole(ctx context.Context, id uuid.UUID, role enums.Role) error {
	return r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		UpdateColumn("role", role).Error
}
