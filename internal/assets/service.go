package assets

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/eport-labs/asset-manager-backend/pkg/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service defines the behavior needed by the asset controllers.
type Service interface {
	ListAll(ctx context.Context) ([]AdminAssetDTO, error)
	ListMine(ctx context.Context, callerID uuid.UUID) ([]AssetDTO, error)
	Create(ctx context.Context, callerID uuid.UUID, req CreateAssetRequest) ([]AssetDTO, error)
	Delete(ctx context.Context, id uuid.UUID) ([]AdminAssetDTO, error)
}

type repository interface {
	Create(ctx context.Context, dto CreateAssetDTO) (*models.Asset, error)
	ListAll(ctx context.Context) ([]AdminAssetDTO, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Asset, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build an assets service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs an assets service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("assets repository is required")
	}
	return &service{repo: params.Repo}, nil
}

func (s *service) ListAll(ctx context.Context) ([]AdminAssetDTO, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list assets")
	}
	return list, nil
}

func (s *service) ListMine(ctx context.Context, callerID uuid.UUID) ([]AssetDTO, error) {
	if callerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "caller identity required")
	}
	list, err := s.repo.ListByCreator(ctx, callerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list caller assets")
	}
	out := make([]AssetDTO, 0, len(list))
	for i := range list {
		out = append(out, *FromModel(&list[i]))
	}
	return out, nil
}

// Create persists the asset attributed to the caller and returns the caller's
// refreshed listing. The creator is always taken from the verified identity,
// never from the payload.
func (s *service) Create(ctx context.Context, callerID uuid.UUID, req CreateAssetRequest) ([]AssetDTO, error) {
	if callerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "caller identity required")
	}

	dto, err := validateCreateRequest(req)
	if err != nil {
		return nil, err
	}
	dto.CreatedBy = callerID

	if _, err := s.repo.Create(ctx, dto); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create asset")
	}
	return s.ListMine(ctx, callerID)
}

// Delete removes the asset and returns the refreshed admin listing.
func (s *service) Delete(ctx context.Context, id uuid.UUID) ([]AdminAssetDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "asset id is required")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "asset not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete asset")
	}
	return s.ListAll(ctx)
}

func validateCreateRequest(req CreateAssetRequest) (CreateAssetDTO, error) {
	name := strings.TrimSpace(req.AssetName)
	if name == "" {
		return CreateAssetDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "asset_name is required")
	}

	cost, err := decimal.NewFromString(strings.TrimSpace(req.Cost))
	if err != nil {
		return CreateAssetDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cost must be a decimal number")
	}
	if cost.IsNegative() {
		return CreateAssetDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "cost must not be negative")
	}

	date, err := types.ParseDate(strings.TrimSpace(req.DatePurchased))
	if err != nil {
		return CreateAssetDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "date_purchased must be formatted YYYY-MM-DD")
	}

	return CreateAssetDTO{
		AssetName:     name,
		Cost:          cost.Round(2),
		DatePurchased: date,
		CategoryID:    req.CategoryID,
		DepartmentID:  req.DepartmentID,
	}, nil
}
