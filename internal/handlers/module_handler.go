package handlers

import (
	"context"
	"net/http"

	"github.com/courseatlas/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ModulesService is the interface that wraps methods for module business logic.
type ModulesService interface {
	// Method List retrieves all modules of a course.
	//
	// "courseID" parameter is used to identify the course.
	// If no course has the identifier, an error satisfying services.IsNotFound will be returned.
	List(ctx context.Context, courseID string) ([]models.Module, error)
	// Method Get retrieves one module of a course by its identifier.
	//
	// If the course or the module cannot be resolved, an error satisfying
	// services.IsNotFound will be returned.
	Get(ctx context.Context, courseID, moduleID string) (*models.Module, error)
	// Method Create validates the request and appends a new module to a course
	// with a freshly allocated identifier and a default empty test.
	//
	// If the title is missing, a *services.ValidationError will be returned.
	Create(ctx context.Context, courseID string, req *models.CreateModuleRequest) (*models.Module, error)
	// Method Update applies the fields present in the request to an existing
	// module. Absent fields keep their prior values.
	Update(ctx context.Context, courseID, moduleID string, req *models.UpdateModuleRequest) (*models.Module, error)
	// Method Delete removes a module together with its topics and test.
	Delete(ctx context.Context, courseID, moduleID string) error
}

// ModulesHandler handles HTTP requests for modules
type ModulesHandler struct {
	BaseHandler
	service ModulesService
}

// NewModulesHandler creates a new module handler
func NewModulesHandler(svc ModulesService, logger *zap.Logger) *ModulesHandler {
	return &ModulesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all module handler routes
func (h *ModulesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses/{courseId}/modules", h.List)
	r.Post("/courses/{courseId}/modules", h.Create)
	r.Get("/courses/{courseId}/modules/{moduleId}", h.Get)
	r.Put("/courses/{courseId}/modules/{moduleId}", h.Update)
	r.Delete("/courses/{courseId}/modules/{moduleId}", h.Delete)
}

// List handles GET /api/courses/{courseId}/modules
// @Summary List course modules
// @Tags modules
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} handlers.envelope{data=[]models.Module}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules [get]
func (h *ModulesHandler) List(w http.ResponseWriter, r *http.Request) {
	modules, err := h.service.List(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to list modules")
		return
	}

	h.respondList(w, modules, len(modules))
}

// Get handles GET /api/courses/{courseId}/modules/{moduleId}
// @Summary Get module by ID
// @Tags modules
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} handlers.envelope{data=models.Module}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId} [get]
func (h *ModulesHandler) Get(w http.ResponseWriter, r *http.Request) {
	module, err := h.service.Get(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get module")
		return
	}

	h.respondData(w, http.StatusOK, module)
}

// Create handles POST /api/courses/{courseId}/modules
// @Summary Create a module
// @Description Create a new module inside a course; title is required
// @Tags modules
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param module body models.CreateModuleRequest true "Module payload"
// @Success 201 {object} handlers.envelope{data=models.Module}
// @Failure 400 {object} handlers.envelope
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules [post]
func (h *ModulesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateModuleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	module, err := h.service.Create(r.Context(), chi.URLParam(r, "courseId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create module")
		return
	}

	h.respondMessage(w, http.StatusCreated, "Module created successfully", module)
}

// Update handles PUT /api/courses/{courseId}/modules/{moduleId}
// @Summary Update a module
// @Description Update module fields; absent fields keep their prior values
// @Tags modules
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Param module body models.UpdateModuleRequest true "Fields to update"
// @Success 200 {object} handlers.envelope{data=models.Module}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId} [put]
func (h *ModulesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateModuleRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	module, err := h.service.Update(r.Context(), chi.URLParam(r, "courseId"), chi.URLParam(r, "moduleId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update module")
		return
	}

	h.respondMessage(w, http.StatusOK, "Module updated successfully", module)
}

// Delete handles DELETE /api/courses/{courseId}/modules/{moduleId}
// @Summary Delete a module
// @Tags modules
// @Produce json
// @Param courseId path string true "Course ID"
// @Param moduleId path string true "Module ID"
// @Success 200 {object} handlers.envelope{data=models.Module}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId}/modules/{moduleId} [delete]
func (h *ModulesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")
	moduleID := chi.URLParam(r, "moduleId")

	module, err := h.service.Get(r.Context(), courseID, moduleID)
	if err != nil {
		h.respondServiceError(w, err, "failed to delete module")
		return
	}
	if err := h.service.Delete(r.Context(), courseID, moduleID); err != nil {
		h.respondServiceError(w, err, "failed to delete module")
		return
	}

	h.respondMessage(w, http.StatusOK, "Module deleted successfully", module)
}
