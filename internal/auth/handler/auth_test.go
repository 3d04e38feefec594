package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	apperrors "gallery/pkg/errors"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type mockAuthService struct {
	registerFunc   func(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	loginFunc      func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	adminLoginFunc func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	return m.registerFunc(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return m.loginFunc(ctx, req)
}

func (m *mockAuthService) AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return m.adminLoginFunc(ctx, req)
}

func (m *mockAuthService) EnsureAdmin(ctx context.Context, req *model.RegisterRequest) (bool, error) {
	return false, nil
}

func newRouter(svc *mockAuthService) *httprouter.Router {
	router := httprouter.New()
	NewAuthHandler(svc, logger.Discard()).RegisterRoutes(router)
	return router
}

func TestRegister(t *testing.T) {
	svc := &mockAuthService{
		registerFunc: func(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
			return &model.AuthResponse{Token: "tok", ExpiresIn: 86400, User: model.User{Name: req.Name, Email: req.Email, PasswordHash: "secret-hash"}}, nil
		},
	}

	body := `{"name":"Wambui","email":"wambui@example.com","password":"password123"}`
	rec := httptest.NewRecorder()
	newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body)))

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "secret-hash") {
		t.Error("password hash leaked in response")
	}
	var resp model.AuthResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Token != "tok" || resp.User.Email != "wambui@example.com" {
		t.Errorf("response = %+v", resp)
	}
}

func TestLoginRoutes(t *testing.T) {
	ok := func(isAdmin bool) func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
		return func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
			if req.Password != "right" {
				return nil, apperrors.Unauthorized("Invalid email or password")
			}
			return &model.AuthResponse{Token: "tok", IsAdmin: isAdmin}, nil
		}
	}
	svc := &mockAuthService{loginFunc: ok(false), adminLoginFunc: ok(true)}

	tests := []struct {
		name      string
		path      string
		password  string
		wantCode  int
		wantAdmin bool
	}{
		{"visitor login", "/api/login", "right", http.StatusOK, false},
		{"admin login", "/api/admin-login", "right", http.StatusOK, true},
		{"bad password", "/api/login", "wrong", http.StatusUnauthorized, false},
		{"bad admin password", "/api/admin-login", "wrong", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"email":"a@example.com","password":"` + tt.password + `"}`
			rec := httptest.NewRecorder()
			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(body)))

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d: %s", tt.wantCode, rec.Code, rec.Body.String())
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var resp model.AuthResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.IsAdmin != tt.wantAdmin {
				t.Errorf("IsAdmin = %v, want %v", resp.IsAdmin, tt.wantAdmin)
			}
		})
	}
}

func TestLogin_MalformedBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter(&mockAuthService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("{")))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
