package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/eport-labs/asset-manager-backend/internal/profiles"
	"github.com/eport-labs/asset-manager-backend/pkg/enums"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
)

type stubProfileService struct {
	getFn func(ctx context.Context, id uuid.UUID) (*profiles.ProfileDTO, error)
}

func (s stubProfileService) GetByID(ctx context.Context, id uuid.UUID) (*profiles.ProfileDTO, error) {
	if s.getFn != nil {
		return s.getFn(ctx, id)
	}
	return nil, nil
}

func TestMeReturnsProfile(t *testing.T) {
	userID := uuid.New()
	name := "Jane Doe"
	svc := stubProfileService{
		getFn: func(ctx context.Context, id uuid.UUID) (*profiles.ProfileDTO, error) {
			if id != userID {
				t.Fatalf("unexpected id %s", id)
			}
			return &profiles.ProfileDTO{ID: userID, FullName: &name, Role: enums.RoleAdmin}, nil
		},
	}

	handler := Me(svc, nil)
	req := withCaller(httptest.NewRequest(http.MethodGet, "/me", nil), userID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data profiles.ProfileDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != userID || envelope.Data.Role != enums.RoleAdmin {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestMeWithoutIdentity(t *testing.T) {
	handler := Me(stubProfileService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestMeMissingProfile(t *testing.T) {
	svc := stubProfileService{
		getFn: func(ctx context.Context, id uuid.UUID) (*profiles.ProfileDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no profile")
		},
	}

	handler := Me(svc, nil)
	req := withCaller(httptest.NewRequest(http.MethodGet, "/me", nil), uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
