package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const apiVersion = "1.0.0"

// HealthHandler handles liveness requests
type HealthHandler struct {
	BaseHandler
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	return &HealthHandler{BaseHandler: BaseHandler{logger: logger}}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health", h.Health)
}

type healthStatus struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// Health handles GET /api/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.envelope{data=handlers.healthStatus}
// @Router /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondMessage(w, http.StatusOK, "Course API is running", healthStatus{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   apiVersion,
	})
}
