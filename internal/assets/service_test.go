package assets

import (
	"context"
	"testing"
	"time"

	"github.com/eport-labs/asset-manager-backend/pkg/db/models"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestServiceCreateForcesCreator(t *testing.T) {
	repo := newStubAssetRepo()
	svc := mustNewService(t, repo)
	caller := uuid.New()

	list, err := svc.Create(context.Background(), caller, CreateAssetRequest{
		AssetName:     "Dell XPS",
		Cost:          "1200.00",
		DatePurchased: "2024-03-01",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted asset, got %d", len(repo.created))
	}
	if repo.created[0].CreatedBy != caller {
		t.Fatalf("creator must come from the verified identity, got %s", repo.created[0].CreatedBy)
	}
	if len(list) != 1 || list[0].AssetName != "Dell XPS" {
		t.Fatalf("expected refreshed caller listing, got %v", list)
	}
}

func TestServiceCreateRejectsBadCost(t *testing.T) {
	repo := newStubAssetRepo()
	svc := mustNewService(t, repo)
	caller := uuid.New()

	cases := []string{"", "abc", "12,50", "-1"}
	for _, cost := range cases {
		_, err := svc.Create(context.Background(), caller, CreateAssetRequest{
			AssetName:     "Bad Cost",
			Cost:          cost,
			DatePurchased: "2024-03-01",
		})
		if err == nil {
			t.Fatalf("expected error for cost %q", cost)
		}
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for cost %q, got %v", cost, err)
		}
	}
	if len(repo.created) != 0 {
		t.Fatalf("invalid costs must not be stored, found %d rows", len(repo.created))
	}
}

func TestServiceCreateRejectsBadDate(t *testing.T) {
	repo := newStubAssetRepo()
	svc := mustNewService(t, repo)

	_, err := svc.Create(context.Background(), uuid.New(), CreateAssetRequest{
		AssetName:     "Bad Date",
		Cost:          "10.00",
		DatePurchased: "03/01/2024",
	})
	if err == nil {
		t.Fatal("expected validation error for non ISO date")
	}
}

func TestServiceCreateRequiresCaller(t *testing.T) {
	repo := newStubAssetRepo()
	svc := mustNewService(t, repo)

	_, err := svc.Create(context.Background(), uuid.Nil, CreateAssetRequest{
		AssetName:     "No Caller",
		Cost:          "10.00",
		DatePurchased: "2024-03-01",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestServiceDeleteMissingAsset(t *testing.T) {
	repo := newStubAssetRepo()
	svc := mustNewService(t, repo)

	_, err := svc.Delete(context.Background(), uuid.New())
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceDeleteReturnsRefreshedListing(t *testing.T) {
	repo := newStubAssetRepo()
	svc := mustNewService(t, repo)
	caller := uuid.New()

	_, err := svc.Create(context.Background(), caller, CreateAssetRequest{
		AssetName:     "Keep",
		Cost:          "5.00",
		DatePurchased: "2024-01-01",
	})
	if err != nil {
		t.Fatalf("create keep: %v", err)
	}
	_, err = svc.Create(context.Background(), caller, CreateAssetRequest{
		AssetName:     "Drop",
		Cost:          "6.00",
		DatePurchased: "2024-01-02",
	})
	if err != nil {
		t.Fatalf("create drop: %v", err)
	}

	var dropID uuid.UUID
	for _, a := range repo.created {
		if a.AssetName == "Drop" {
			dropID = a.ID
		}
	}

	list, err := svc.Delete(context.Background(), dropID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(list) != 1 || list[0].AssetName != "Keep" {
		t.Fatalf("expected refreshed admin listing with one row, got %v", list)
	}
}

func mustNewService(t *testing.T, repo *stubAssetRepo) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Repo: repo})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

type stubAssetRepo struct {
	created []*models.Asset
}

func newStubAssetRepo() *stubAssetRepo {
	return &stubAssetRepo{}
}

func (s *stubAssetRepo) Create(ctx context.Context, dto CreateAssetDTO) (*models.Asset, error) {
	asset := dto.ToModel()
	asset.ID = uuid.New()
	asset.CreatedAt = time.Now().UTC()
	s.created = append(s.created, asset)
	return asset, nil
}

func (s *stubAssetRepo) ListAll(ctx context.Context) ([]AdminAssetDTO, error) {
	out := make([]AdminAssetDTO, 0, len(s.created))
	for _, a := range s.created {
		out = append(out, AdminAssetDTO{
			ID:             a.ID,
			AssetName:      a.AssetName,
			Cost:           a.Cost,
			DatePurchased:  a.DatePurchased,
			CategoryName:   "–",
			DepartmentName: "–",
			CreatedByName:  "Unknown",
			CreatedAt:      a.CreatedAt,
		})
	}
	return out, nil
}

func (s *stubAssetRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]models.Asset, error) {
	var out []models.Asset
	for _, a := range s.created {
		if a.CreatedBy == creatorID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *stubAssetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, a := range s.created {
		if a.ID == id {
			s.created = append(s.created[:i], s.created[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}
