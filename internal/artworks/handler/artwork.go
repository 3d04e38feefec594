package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gallery/internal/artworks/service"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
	"gallery/pkg/middleware"
	"gallery/pkg/model"
)

type ArtworkHandler struct {
	service service.ArtworkService
	tokens  middleware.TokenParser
	log     *logger.Logger
}

func NewArtworkHandler(service service.ArtworkService, tokens middleware.TokenParser, log *logger.Logger) *ArtworkHandler {
	return &ArtworkHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

func (h *ArtworkHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var a model.Artwork
	if err := httputil.DecodeJSON(r, &a); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := h.service.Create(r.Context(), &a); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, a); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ArtworkHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	a, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, a); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ArtworkHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	artworks, totalCount, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, artworks, totalCount, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *ArtworkHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.ArtworkUpdate
	if err := httputil.DecodeJSON(r, &updates); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	a, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, a); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ArtworkHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ArtworkHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ArtworkHandler) RegisterRoutes(router *httprouter.Router) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return middleware.RequireAdmin(h.tokens, h.log, next)
	}

	router.GET("/api/artworks", h.GetAll)
	router.GET("/api/artworks/:id", h.GetByID)
	router.POST("/api/artworks", admin(h.Create))
	router.PUT("/api/artworks/:id", admin(h.Update))
	router.DELETE("/api/artworks/:id", admin(h.Delete))
}
