package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gallery/internal/auth/service"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
	"gallery/pkg/model"
)

type AuthHandler struct {
	service service.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Register", err)
		return
	}

	resp, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.writeError(w, "Register", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusCreated, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Register", "operation", "WriteJSON", "error", err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.login(w, r, "Login", h.service.Login)
}

func (h *AuthHandler) AdminLogin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.login(w, r, "AdminLogin", h.service.AdminLogin)
}

func (h *AuthHandler) login(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	fn func(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error),
) {
	var req model.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, name, err)
		return
	}

	resp, err := fn(r.Context(), &req)
	if err != nil {
		h.writeError(w, name, err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", name, "operation", "WriteJSON", "error", err)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/register", h.Register)
	router.POST("/api/login", h.Login)
	router.POST("/api/admin-login", h.AdminLogin)
}
