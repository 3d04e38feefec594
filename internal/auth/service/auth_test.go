package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	autherrors "gallery/internal/auth/errors"
	"gallery/internal/auth/repository"
	"gallery/internal/auth/validator"
	"gallery/pkg/auth"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/events"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type mockUserRepository struct {
	users  map[string]*model.User
	admins map[string]*model.User
	err    error
}

func newMockRepo() *mockUserRepository {
	return &mockUserRepository{users: map[string]*model.User{}, admins: map[string]*model.User{}}
}

func (m *mockUserRepository) table(role repository.Role) map[string]*model.User {
	if role == repository.RoleAdmin {
		return m.admins
	}
	return m.users
}

func (m *mockUserRepository) FindByEmail(_ context.Context, role repository.Role, email string) (*model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.table(role)[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", autherrors.ErrUserNotFound, email)
	}
	return u, nil
}

func (m *mockUserRepository) Create(_ context.Context, role repository.Role, u *model.User) error {
	if m.err != nil {
		return m.err
	}
	t := m.table(role)
	if _, ok := t[u.Email]; ok {
		return fmt.Errorf("%w: %s", autherrors.ErrEmailTaken, u.Email)
	}
	u.ID = fmt.Sprintf("id-%d", len(t)+1)
	t[u.Email] = u
	return nil
}

type capturePublisher struct {
	events []string
}

func (p *capturePublisher) Publish(_ context.Context, eventType, _ string, _ any) error {
	p.events = append(p.events, eventType)
	return nil
}

func newTestService(repo *mockUserRepository, pub *capturePublisher) AuthService {
	cfg := &config.Config{Log: logger.Discard()}
	tokens := auth.NewTokenManager([]byte("test-secret"), time.Hour)
	var publisher events.Publisher
	if pub != nil {
		publisher = pub
	}
	return NewAuthService(repo, validator.NewUserValidator(cfg.Log), tokens, publisher, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newMockRepo()
	pub := &capturePublisher{}
	svc := newTestService(repo, pub)
	ctx := context.Background()

	resp, err := svc.Register(ctx, &model.RegisterRequest{
		Name:     "  Wanjiru   Mwangi ",
		Email:    " Wanjiru@Example.COM ",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if resp.Token == "" || resp.IsAdmin {
		t.Errorf("Register() response = %+v, want visitor token", resp)
	}
	if resp.User.Email != "wanjiru@example.com" {
		t.Errorf("email = %q, want lowercased", resp.User.Email)
	}
	if resp.User.PasswordHash == "correct-horse" {
		t.Error("password stored in plain text")
	}
	if len(pub.events) != 1 {
		t.Errorf("published %d events, want 1", len(pub.events))
	}

	login, err := svc.Login(ctx, &model.LoginRequest{Email: "wanjiru@example.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if login.User.ID != resp.User.ID {
		t.Errorf("Login() user id = %q, want %q", login.User.ID, resp.User.ID)
	}
}

func TestRegisterPhone(t *testing.T) {
	tests := []struct {
		name      string
		phone     string
		wantPhone string
		wantErr   bool
	}{
		{name: "international spacing", phone: "+254 722 123456", wantPhone: "+254722123456"},
		{name: "local format", phone: "0712 345678", wantPhone: "+254712345678"},
		{name: "omitted", phone: "", wantPhone: ""},
		{name: "not a number", phone: "call me", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockRepo()
			svc := newTestService(repo, nil)
			_, err := svc.Register(context.Background(), &model.RegisterRequest{
				Name:     "Baraka Kip",
				Email:    "baraka@example.com",
				Phone:    tt.phone,
				Password: "password123",
			})
			if tt.wantErr {
				appErr := apperrors.AsAppError(err)
				if err == nil || appErr.Code != apperrors.CodeValidation {
					t.Fatalf("Register() error = %v, want validation error", err)
				}
				if _, ok := appErr.Details["phone"]; !ok {
					t.Errorf("details missing phone: %v", appErr.Details)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register() error = %v", err)
			}
			if got := repo.users["baraka@example.com"].Phone; got != tt.wantPhone {
				t.Errorf("stored phone = %q, want %q", got, tt.wantPhone)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService(newMockRepo(), &capturePublisher{})
	req := func() *model.RegisterRequest {
		return &model.RegisterRequest{Name: "Amani Otieno", Email: "amani@example.com", Password: "password123"}
	}

	if _, err := svc.Register(context.Background(), req()); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}
	_, err := svc.Register(context.Background(), req())
	if got := apperrors.AsAppError(err); got == nil || got.StatusCode() != http.StatusConflict {
		t.Errorf("second Register() error = %v, want 409", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService(newMockRepo(), nil)
	_, err := svc.Register(context.Background(), &model.RegisterRequest{Name: "A", Email: "nope", Password: "short"})

	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("Register() error = %v, want validation error", err)
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := appErr.Details[field]; !ok {
			t.Errorf("details missing %q: %v", field, appErr.Details)
		}
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()
	if _, err := svc.Register(ctx, &model.RegisterRequest{Name: "Zawadi", Email: "z@example.com", Password: "password123"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tests := []struct {
		name string
		req  *model.LoginRequest
	}{
		{"wrong password", &model.LoginRequest{Email: "z@example.com", Password: "password124"}},
		{"unknown email", &model.LoginRequest{Email: "ghost@example.com", Password: "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tt.req)
			appErr := apperrors.AsAppError(err)
			if appErr == nil || appErr.StatusCode() != http.StatusUnauthorized {
				t.Fatalf("Login() error = %v, want 401", err)
			}
			if appErr.Message != "Invalid email or password" {
				t.Errorf("message = %q", appErr.Message)
			}
		})
	}
}

func TestAdminLoginUsesAdminAccounts(t *testing.T) {
	repo := newMockRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	if _, err := svc.Register(ctx, &model.RegisterRequest{Name: "Visitor", Email: "v@example.com", Password: "password123"}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if _, err := svc.AdminLogin(ctx, &model.LoginRequest{Email: "v@example.com", Password: "password123"}); err == nil {
		t.Fatal("AdminLogin() accepted a visitor account")
	}

	created, err := svc.EnsureAdmin(ctx, &model.RegisterRequest{Name: "Curator", Email: "admin@example.com", Password: "password123"})
	if err != nil || !created {
		t.Fatalf("EnsureAdmin() = %v, %v", created, err)
	}
	created, err = svc.EnsureAdmin(ctx, &model.RegisterRequest{Name: "Curator", Email: "admin@example.com", Password: "password123"})
	if err != nil || created {
		t.Fatalf("second EnsureAdmin() = %v, %v, want false, nil", created, err)
	}

	resp, err := svc.AdminLogin(ctx, &model.LoginRequest{Email: "admin@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("AdminLogin() error = %v", err)
	}
	if !resp.IsAdmin {
		t.Error("AdminLogin() IsAdmin = false")
	}
}

func TestLoginRepositoryFailure(t *testing.T) {
	repo := newMockRepo()
	repo.err = errors.New("connection reset")
	svc := newTestService(repo, nil)

	_, err := svc.Login(context.Background(), &model.LoginRequest{Email: "a@example.com", Password: "x"})
	if got := apperrors.AsAppError(err); got == nil || got.StatusCode() != http.StatusInternalServerError {
		t.Errorf("Login() error = %v, want 500", err)
	}
}
