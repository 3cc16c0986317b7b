package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/eport-labs/asset-manager-backend/api/middleware"
	"github.com/eport-labs/asset-manager-backend/internal/assets"
	pkgerrors "github.com/eport-labs/asset-manager-backend/pkg/errors"
)

type stubAssetService struct {
	listAllFn  func(ctx context.Context) ([]assets.AdminAssetDTO, error)
	listMineFn func(ctx context.Context, callerID uuid.UUID) ([]assets.AssetDTO, error)
	createFn   func(ctx context.Context, callerID uuid.UUID, req assets.CreateAssetRequest) ([]assets.AssetDTO, error)
	deleteFn   func(ctx context.Context, id uuid.UUID) ([]assets.AdminAssetDTO, error)
}

func (s stubAssetService) ListAll(ctx context.Context) ([]assets.AdminAssetDTO, error) {
	if s.listAllFn != nil {
		return s.listAllFn(ctx)
	}
	return nil, nil
}

func (s stubAssetService) ListMine(ctx context.Context, callerID uuid.UUID) ([]assets.AssetDTO, error) {
	if s.listMineFn != nil {
		return s.listMineFn(ctx, callerID)
	}
	return nil, nil
}

func (s stubAssetService) Create(ctx context.Context, callerID uuid.UUID, req assets.CreateAssetRequest) ([]assets.AssetDTO, error) {
	if s.createFn != nil {
		return s.createFn(ctx, callerID, req)
	}
	return nil, nil
}

func (s stubAssetService) Delete(ctx context.Context, id uuid.UUID) ([]assets.AdminAssetDTO, error) {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, id)
	}
	return nil, nil
}

func withCaller(req *http.Request, userID uuid.UUID) *http.Request {
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func withAssetID(req *http.Request, assetID string) *http.Request {
	ctx := chi.NewRouteContext()
	ctx.URLParams.Add("assetId", assetID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, ctx))
}

func TestMyAssetsUsesCallerIdentity(t *testing.T) {
	userID := uuid.New()
	assetID := uuid.New()
	svc := stubAssetService{
		listMineFn: func(ctx context.Context, callerID uuid.UUID) ([]assets.AssetDTO, error) {
			if callerID != userID {
				t.Fatalf("unexpected caller %s", callerID)
			}
			return []assets.AssetDTO{{ID: assetID, AssetName: "Dell XPS"}}, nil
		},
	}

	handler := MyAssets(svc, nil)
	req := withCaller(httptest.NewRequest(http.MethodGet, "/assets/mine", nil), userID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []assets.AssetDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != assetID {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestMyAssetsWithoutIdentity(t *testing.T) {
	handler := MyAssets(stubAssetService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/assets/mine", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCreateAssetForcesCaller(t *testing.T) {
	userID := uuid.New()
	var gotCaller uuid.UUID
	svc := stubAssetService{
		createFn: func(ctx context.Context, callerID uuid.UUID, req assets.CreateAssetRequest) ([]assets.AssetDTO, error) {
			gotCaller = callerID
			return []assets.AssetDTO{{AssetName: req.AssetName}}, nil
		},
	}

	body := `{"asset_name":"Monitor","cost":"199.99","date_purchased":"2024-03-01"}`
	handler := CreateAsset(svc, nil)
	req := withCaller(httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(body)), userID)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotCaller != userID {
		t.Fatalf("expected caller %s, got %s", userID, gotCaller)
	}
}

func TestCreateAssetRejectsMissingFields(t *testing.T) {
	handler := CreateAsset(stubAssetService{}, nil)
	req := withCaller(httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(`{"asset_name":"Monitor"}`)), uuid.New())
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminDeleteAssetReturnsRefreshedList(t *testing.T) {
	assetID := uuid.New()
	remaining := uuid.New()
	svc := stubAssetService{
		deleteFn: func(ctx context.Context, id uuid.UUID) ([]assets.AdminAssetDTO, error) {
			if id != assetID {
				t.Fatalf("unexpected id %s", id)
			}
			return []assets.AdminAssetDTO{{ID: remaining, AssetName: "Printer"}}, nil
		},
	}

	handler := AdminDeleteAsset(svc, nil)
	req := withAssetID(httptest.NewRequest(http.MethodDelete, "/", nil), assetID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []assets.AdminAssetDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 1 || envelope.Data[0].ID != remaining {
		t.Fatalf("unexpected payload %v", envelope.Data)
	}
}

func TestAdminDeleteAssetInvalidID(t *testing.T) {
	handler := AdminDeleteAsset(stubAssetService{}, nil)
	req := withAssetID(httptest.NewRequest(http.MethodDelete, "/", nil), "not-a-uuid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAdminDeleteAssetNotFound(t *testing.T) {
	svc := stubAssetService{
		deleteFn: func(ctx context.Context, id uuid.UUID) ([]assets.AdminAssetDTO, error) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "asset not found")
		},
	}

	handler := AdminDeleteAsset(svc, nil)
	req := withAssetID(httptest.NewRequest(http.MethodDelete, "/", nil), uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
