package service

import (
	"context"
	"errors"
	"sync"

	autherrors "gallery/internal/auth/errors"
	"gallery/internal/auth/repository"
	"gallery/internal/auth/validator"
	"gallery/pkg/auth"
	"gallery/pkg/config"
	apperrors "gallery/pkg/errors"
	"gallery/pkg/events"
	"gallery/pkg/model"
	"gallery/pkg/sanitizer"
	"gallery/pkg/validation"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	EnsureAdmin(ctx context.Context, req *model.RegisterRequest) (bool, error)
}

type TokenIssuer interface {
	Issue(p auth.Principal) (string, int, error)
}

// dummyHash is compared against when an account does not exist so that
// unknown and known emails take the same time to reject.
var dummyHash = sync.OnceValue(func() string {
	hash, _ := auth.HashPassword("unused-account-password")
	return hash
})

type authService struct {
	repo      repository.UserRepository
	validator *validator.UserValidator
	tokens    TokenIssuer
	publisher events.Publisher
	cfg       *config.Config
}

func NewAuthService(
	repo repository.UserRepository,
	validator *validator.UserValidator,
	tokens TokenIssuer,
	publisher events.Publisher,
	cfg *config.Config,
) AuthService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &authService{
		repo:      repo,
		validator: validator,
		tokens:    tokens,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	u, err := s.create(ctx, repository.RoleVisitor, req)
	if err != nil {
		return nil, err
	}

	s.cfg.Log.Info("User registered", "id", u.ID)
	events.PublishQuietly(ctx, s.publisher, s.cfg.Log.Logger, events.UserRegistered, u.ID, u)
	return s.respond(u, false)
}

func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return s.login(ctx, repository.RoleVisitor, req)
}

func (s *authService) AdminLogin(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return s.login(ctx, repository.RoleAdmin, req)
}

// EnsureAdmin creates the admin account unless one with the same email
// exists. It reports whether an account was created.
func (s *authService) EnsureAdmin(ctx context.Context, req *model.RegisterRequest) (bool, error) {
	_, err := s.create(ctx, repository.RoleAdmin, req)
	if err != nil {
		if apperrors.AsAppError(err).Code == apperrors.CodeConflict {
			return false, nil
		}
		return false, err
	}
	s.cfg.Log.Info("Admin account created", "email", req.Email)
	return true, nil
}

func (s *authService) create(ctx context.Context, role repository.Role, req *model.RegisterRequest) (*model.User, error) {
	req.Name = sanitizer.NormalizeName(req.Name)
	req.Email = sanitizer.SanitizeEmail(req.Email)
	req.Phone = sanitizer.NormalizePhone(req.Phone)

	if err := s.validator.Validate(req); err != nil {
		return nil, validationError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Internal("Failed to create account", err)
	}

	u := &model.User{Name: req.Name, Email: req.Email, Phone: req.Phone, PasswordHash: hash}
	if err := s.repo.Create(ctx, role, u); err != nil {
		if errors.Is(err, autherrors.ErrEmailTaken) {
			return nil, apperrors.Conflict("Email already registered")
		}
		s.cfg.Log.Error("Failed to create account", "error", err)
		return nil, apperrors.Internal("Failed to create account", err)
	}
	return u, nil
}

func (s *authService) login(ctx context.Context, role repository.Role, req *model.LoginRequest) (*model.AuthResponse, error) {
	req.Email = sanitizer.SanitizeEmail(req.Email)
	if err := s.validator.Validate(req); err != nil {
		return nil, validationError(err)
	}

	u, err := s.repo.FindByEmail(ctx, role, req.Email)
	if err != nil && !errors.Is(err, autherrors.ErrUserNotFound) {
		s.cfg.Log.Error("Failed to look up account", "error", err)
		return nil, apperrors.Internal("Failed to log in", err)
	}

	hash := dummyHash()
	if u != nil {
		hash = u.PasswordHash
	}
	if !auth.CheckPassword(hash, req.Password) || u == nil {
		s.cfg.Log.Warn("Failed login attempt", "admin", role == repository.RoleAdmin)
		return nil, apperrors.Unauthorized("Invalid email or password")
	}

	return s.respond(u, role == repository.RoleAdmin)
}

func (s *authService) respond(u *model.User, isAdmin bool) (*model.AuthResponse, error) {
	token, expiresIn, err := s.tokens.Issue(auth.Principal{ID: u.ID, Name: u.Name, IsAdmin: isAdmin})
	if err != nil {
		return nil, apperrors.Internal("Failed to issue token", err)
	}
	return &model.AuthResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      *u,
		IsAdmin:   isAdmin,
	}, nil
}

func validationError(err error) error {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return apperrors.Validation("Invalid credentials payload", verrs.Details())
	}
	return apperrors.Validation("Invalid credentials payload", map[string]any{"error": err.Error()})
}
