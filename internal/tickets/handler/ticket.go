package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gallery/internal/tickets/service"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
	"gallery/pkg/middleware"
	"gallery/pkg/model"
)

type TicketHandler struct {
	service service.TicketService
	tokens  middleware.TokenParser
	log     *logger.Logger
}

func NewTicketHandler(service service.TicketService, tokens middleware.TokenParser, log *logger.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

func (h *TicketHandler) Reserve(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.TicketRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		h.writeError(w, "Reserve", err)
		return
	}

	ticket, err := h.service.Reserve(r.Context(), ps.ByName("id"), &req)
	if err != nil {
		h.writeError(w, "Reserve", err)
		return
	}

	if err := httputil.WriteCreated(w, ticket); err != nil {
		h.log.Error("failed to write created response", "handler", "Reserve", "operation", "WriteCreated", "error", err)
	}
}

func (h *TicketHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	tickets, totalCount, err := h.service.GetAll(r.Context(), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, tickets, totalCount, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *TicketHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *TicketHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/exhibitions/:id/tickets", h.Reserve)
	router.GET("/api/tickets", middleware.RequireAdmin(h.tokens, h.log, h.GetAll))
}
