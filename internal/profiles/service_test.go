package profiles

import (
	"context"
	"testing"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestServiceGetByIDReturnsProfile(t *testing.T) {
	id := uuid.New()
	name := "Member"
	repo := stubProfileRepo{profile: &models.Profile{ID: id, FullName: &name, Role: enums.RoleUser}}
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	dto, err := svc.GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get profile: %v", err)
	}
	if dto.ID != id || dto.Role != enums.RoleUser {
		t.Fatalf("unexpected dto %+v", dto)
	}
}

func TestServiceGetByIDMissingProfile(t *testing.T) {
	repo := stubProfileRepo{err: gorm.ErrRecordNotFound}
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
	if typed.Message() != "no profile" {
		t.Fatalf("unexpected message %q", typed.Message())
	}
}

func TestServiceGetByIDRequiresCaller(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: stubProfileRepo{}})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	_, err = svc.GetByID(context.Background(), uuid.Nil)
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

type stubProfileRepo struct {
	profile *models.Profile
	err     error
}

func (s stubProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.profile == nil || s.profile.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return s.profile, nil
}
