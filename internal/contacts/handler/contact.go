package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"gallery/internal/contacts/service"
	httputil "gallery/pkg/http"
	"gallery/pkg/logger"
	"gallery/pkg/middleware"
	"gallery/pkg/model"
)

const ContactPath = "/api/contact"

type ContactHandler struct {
	service service.ContactService
	tokens  middleware.TokenParser
	log     *logger.Logger
}

func NewContactHandler(service service.ContactService, tokens middleware.TokenParser, log *logger.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		tokens:  tokens,
		log:     log,
	}
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var m model.ContactMessage
	if err := httputil.DecodeJSON(r, &m); err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	if err := h.service.Submit(r.Context(), &m); err != nil {
		h.writeError(w, "Submit", err)
		return
	}

	if err := httputil.WriteJSON(w, http.StatusCreated, httputil.SuccessResponse{
		Data:    m,
		Message: "Message sent successfully",
	}); err != nil {
		h.log.Error("failed to write created response", "handler", "Submit", "operation", "WriteJSON", "error", err)
	}
}

func (h *ContactHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit, offset, err := httputil.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	messages, totalCount, err := h.service.GetAll(r.Context(), r.URL.Query().Get("status"), limit, offset)
	if err != nil {
		h.writeError(w, "GetAll", err)
		return
	}

	if err := httputil.WritePaginated(w, messages, totalCount, limit, offset); err != nil {
		h.log.Error("failed to write paginated response", "handler", "GetAll", "operation", "WritePaginated", "error", err)
	}
}

func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var update model.MessageStatusUpdate
	if err := httputil.DecodeJSON(r, &update); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), ps.ByName("id"), &update); err != nil {
		h.writeError(w, "UpdateStatus", err)
		return
	}

	if err := httputil.WriteMessage(w, "Message status updated"); err != nil {
		h.log.Error("failed to write message response", "handler", "UpdateStatus", "operation", "WriteMessage", "error", err)
	}
}

func (h *ContactHandler) writeError(w http.ResponseWriter, handler string, err error) {
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		h.log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

func (h *ContactHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST(ContactPath, h.Submit)
	router.GET("/api/messages", middleware.RequireAdmin(h.tokens, h.log, h.GetAll))
	router.PUT("/api/messages/:id", middleware.RequireAdmin(h.tokens, h.log, h.UpdateStatus))
}
