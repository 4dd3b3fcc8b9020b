package handlers

import (
	"context"
	"net/http"

	"github.com/courseatlas/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SearchService is the interface that wraps methods for catalog search.
type SearchService interface {
	// Method Search scans every course, module and topic for a case-insensitive
	// substring match against titles and descriptions.
	//
	// If the query is empty, a *services.ValidationError will be returned.
	Search(ctx context.Context, query string) (*models.SearchResults, error)
}

// SearchHandler handles HTTP requests for catalog search
type SearchHandler struct {
	BaseHandler
	service SearchService
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(svc SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all search handler routes
func (h *SearchHandler) RegisterRoutes(r chi.Router) {
	r.Get("/search", h.Search)
}

// Search handles GET /api/search
// @Summary Search the catalog
// @Description Search courses, modules and topics by substring
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} handlers.envelope{data=models.SearchResults}
// @Failure 400 {object} handlers.envelope
// @Router /api/search [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.respondServiceError(w, err, "failed to search")
		return
	}

	total := results.Total()
	h.respondJSON(w, http.StatusOK, envelope{
		Success:      true,
		Data:         results,
		TotalResults: &total,
	})
}
