package refdata

import (
	"context"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes category/department persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a refdata repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListCategories returns every category ordered by name.
func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// ListDepartments returns every department ordered by name.
func (r *Repository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	var list []models.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// CreateCategory inserts a new category.
func (r *Repository) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	category := &models.Category{Name: name}
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// CreateDepartment inserts a new department.
func (r *Repository) CreateDepartment(ctx context.Context, name string) (*models.Department, error) {
	department := &models.Department{Name: name}
	if err := r.db.WithContext(ctx).Create(department).Error; err != nil {
		return nil, err
	}
	return department, nil
}
