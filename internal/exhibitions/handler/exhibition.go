package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gallery/internal/exhibitions/service"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
	"gallery/pkg/middleware"
	"gallery/pkg/model"
)

type ExhibitionHandler struct {
	service service.ExhibitionService
	tokens  middleware.TokenParser
	log     *logger.Logger
}

func NewExhibitionHandler(service service.ExhibitionService, tokens middleware.TokenParser, log *logger.Logger) *ExhibitionHandler {
	return &ExhibitionHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

func (h *ExhibitionHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var e model.Exhibition
	if err := httputil.DecodeJSON(r, &e); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := h.service.Create(r.Context(), &e); err != nil {
		h.writeError(w, "Create", err)
		return
	}

	if err := httputil.WriteCreated(w, e); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *ExhibitionHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	e, err := h.service.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		h.writeError(w, "GetByID", err)
		return
	}

	if err := httputil.WriteSuccess(w, e); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExhibitionHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	exhibitions, totalCount, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, exhibitions, totalCount, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *ExhibitionHandler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var updates model.ExhibitionUpdate
	if err := httputil.DecodeJSON(r, &updates); err != nil {
		h.writeError(w, "Update", err)
		return
	}

	e, err := h.service.Update(r.Context(), ps.ByName("id"), &updates)
	if err != nil {
		h.writeError(w, "Update", err)
		return
	}

	if err := httputil.WriteSuccess(w, e); err != nil {
		h.log.Error("failed to write success response", "handler", "Update", "operation", "WriteSuccess", "error", err)
	}
}

func (h *ExhibitionHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.service.Delete(r.Context(), ps.ByName("id")); err != nil {
		h.writeError(w, "Delete", err)
		return
	}

	httputil.WriteNoContent(w)
}

func (h *ExhibitionHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ExhibitionHandler) RegisterRoutes(router *httprouter.Router) {
	admin := func(next httprouter.Handle) httprouter.Handle {
		return middleware.RequireAdmin(h.tokens, h.log, next)
	}

	router.GET("/api/exhibitions", h.GetAll)
	router.GET("/api/exhibitions/:id", h.GetByID)
	router.POST("/api/exhibitions", admin(h.Create))
	router.PUT("/api/exhibitions/:id", admin(h.Update))
	router.DELETE("/api/exhibitions/:id", admin(h.Delete))
}
