package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/strandart/shop/internal/domain/model"
	"github.com/strandart/shop/internal/server/http/handlers"
	testhelpers "github.com/strandart/shop/internal/test"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	facade := &testhelpers.StorefrontFacadeStub{}
	engine := Setup(facade, logger)

	body, _ := json.Marshal(map[string]string{"email": "user@example.com", "password": "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for login, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for catalog, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for cart without token, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for cart with token, got %d", resp.Code)
	}
}

func TestSetupAdminGate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	facade := &testhelpers.StorefrontFacadeStub{
		UserByIDFn: func(ctx context.Context, id int64) (*model.User, error) {
			return &model.User{ID: id}, nil
		},
	}
	engine := Setup(facade, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", resp.Code)
	}

	facade.UserByIDFn = func(ctx context.Context, id int64) (*model.User, error) {
		return &model.User{ID: id, IsAdmin: true}, nil
	}
	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
