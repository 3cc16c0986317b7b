package refdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
)

// Service defines the behavior needed by the reference-data controllers.
type Service interface {
	ListCategories(ctx context.Context) ([]OptionDTO, error)
	ListDepartments(ctx context.Context) ([]OptionDTO, error)
	CreateCategory(ctx context.Context, name string) ([]OptionDTO, error)
	CreateDepartment(ctx context.Context, name string) ([]OptionDTO, error)
}

type repository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	CreateCategory(ctx context.Context, name string) (*models.Category, error)
	CreateDepartment(ctx context.Context, name string) (*models.Department, error)
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build a refdata service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs a reference-data service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("refdata repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListCategories(ctx context.Context) ([]OptionDTO, error) {
	list, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list categories")
	}
	return categoryDTOs(list), nil
}

func (s *service) ListDepartments(ctx context.Context) ([]OptionDTO, error) {
	list, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list departments")
	}
	return departmentDTOs(list), nil
}

// CreateCategory inserts the category and returns the refreshed option list
// so clients can repopulate their pickers in one round trip.
func (s *service) CreateCategory(ctx context.Context, name string) ([]OptionDTO, error) {
	trimmed, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateCategory(ctx, trimmed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create category")
	}
	return s.ListCategories(ctx)
}

// CreateDepartment inserts the department and returns the refreshed option list.
func (s *service) CreateDepartment(ctx context.Context, name string) ([]OptionDTO, error) {
	trimmed, err := normalizeName(name)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.CreateDepartment(ctx, trimmed); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create department")
	}
	return s.ListDepartments(ctx)
}

func normalizeName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	return trimmed, nil
}
