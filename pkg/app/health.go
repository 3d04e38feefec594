package app

import (
	"context"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	httputil "gallery/pkg/http"
	kafkamw "gallery/pkg/kafka/middleware"
	"gallery/pkg/logger"
)

const readyTimeout = 2 * time.Second

type HealthResponse struct {
	Status   string           `json:"status"`
	Database string           `json:"database,omitempty"`
	Events   *kafkamw.Snapshot `json:"events,omitempty"`
}

type Pinger interface {
	PingMongo(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	metrics *kafkamw.Metrics
	log     *logger.Logger
}

// NewHealthHandler reports event counters on /ready when metrics is non-nil.
func NewHealthHandler(db Pinger, metrics *kafkamw.Metrics, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		metrics: metrics,
		log:     log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	status, resp := http.StatusOK, HealthResponse{Status: "ready", Database: "ok"}
	if err := h.db.PingMongo(ctx); err != nil {
		h.log.Error("Database health check failed", "error", err, "path", r.URL.Path)
		status, resp = http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "error"}
	}
	if h.metrics != nil {
		snapshot := h.metrics.Snapshot()
		resp.Events = &snapshot
	}

	if err := httputil.WriteJSON(w, status, resp); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
