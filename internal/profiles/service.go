package profiles

import (
	"context"
	"errors"
	"fmt"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service resolves the caller's profile for the session surface.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error)
}

type repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
}

type service struct {
	repo repository
}

// ServiceParams bundles the dependencies required to build a profiles service.
type ServiceParams struct {
	Repo repository
}

// NewService constructs a profile resolver with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("profiles repository is required")
	}
	return &service{repo: params.Repo}, nil
}

// GetByID loads the profile for the authenticated account. A valid session
// without a profile row is a terminal state the client must surface, so the
// miss maps to a plain not-found instead of provisioning anything.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*ProfileDTO, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "caller identity required")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no profile")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load profile")
	}
	return FromModel(profile), nil
}
