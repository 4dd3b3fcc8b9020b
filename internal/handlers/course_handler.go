package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/courseatlas/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CoursesService is the interface that wraps methods for course business logic.
type CoursesService interface {
	// Method List retrieves all courses in catalog order using configured repository.
	//
	// If the catalog is empty, an empty slice will be returned.
	// If some error occurs during data retrieval, the error will be returned.
	List(ctx context.Context) ([]models.Course, error)
	// Method Get retrieves one course by its identifier using configured repository.
	//
	// "courseID" parameter is used to identify the course.
	// If no course has the identifier, an error satisfying services.IsNotFound will be returned.
	Get(ctx context.Context, courseID string) (*models.Course, error)
	// Method Create validates the request and appends a new course with a
	// freshly allocated identifier and an empty module list.
	//
	// If title or description are missing, a *services.ValidationError will be returned.
	Create(ctx context.Context, req *models.CreateCourseRequest) (*models.Course, error)
	// Method Update applies the fields present in the request to an existing
	// course. Absent fields keep their prior values.
	//
	// If no course has the identifier, an error satisfying services.IsNotFound will be returned.
	Update(ctx context.Context, courseID string, req *models.UpdateCourseRequest) (*models.Course, error)
	// Method Delete removes a course together with its modules, topics, tests
	// and questions.
	//
	// If no course has the identifier, an error satisfying services.IsNotFound will be returned.
	Delete(ctx context.Context, courseID string) error
	// Method Seed replaces the whole catalog with the given courses.
	//
	// If the slice is empty, a *services.ValidationError will be returned.
	Seed(ctx context.Context, courses []models.Course) error
}

// CoursesHandler handles HTTP requests for courses
type CoursesHandler struct {
	BaseHandler
	service CoursesService
}

// NewCoursesHandler creates a new course handler
func NewCoursesHandler(svc CoursesService, logger *zap.Logger) *CoursesHandler {
	return &CoursesHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all course handler routes
func (h *CoursesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/courses", h.List)
	r.Post("/courses", h.Create)
	r.Get("/courses/{courseId}", h.Get)
	r.Put("/courses/{courseId}", h.Update)
	r.Delete("/courses/{courseId}", h.Delete)
	r.Post("/seed", h.Seed)
}

// List handles GET /api/courses
// @Summary List all courses
// @Description Get all courses with their full module trees
// @Tags courses
// @Produce json
// @Success 200 {object} handlers.envelope{data=[]models.Course}
// @Failure 500 {object} handlers.envelope
// @Router /api/courses [get]
func (h *CoursesHandler) List(w http.ResponseWriter, r *http.Request) {
	courses, err := h.service.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err, "failed to list courses")
		return
	}

	h.respondList(w, courses, len(courses))
}

// Get handles GET /api/courses/{courseId}
// @Summary Get course by ID
// @Description Get a single course with its full module tree
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} handlers.envelope{data=models.Course}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId} [get]
func (h *CoursesHandler) Get(w http.ResponseWriter, r *http.Request) {
	course, err := h.service.Get(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		h.respondServiceError(w, err, "failed to get course")
		return
	}

	h.respondData(w, http.StatusOK, course)
}

// Create handles POST /api/courses
// @Summary Create a course
// @Description Create a new course; title and description are required
// @Tags courses
// @Accept json
// @Produce json
// @Param course body models.CreateCourseRequest true "Course payload"
// @Success 201 {object} handlers.envelope{data=models.Course}
// @Failure 400 {object} handlers.envelope
// @Router /api/courses [post]
func (h *CoursesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	course, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to create course")
		return
	}

	h.respondMessage(w, http.StatusCreated, "Course created successfully", course)
}

// Update handles PUT /api/courses/{courseId}
// @Summary Update a course
// @Description Update course fields; absent fields keep their prior values
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path string true "Course ID"
// @Param course body models.UpdateCourseRequest true "Fields to update"
// @Success 200 {object} handlers.envelope{data=models.Course}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId} [put]
func (h *CoursesHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateCourseRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	course, err := h.service.Update(r.Context(), chi.URLParam(r, "courseId"), &req)
	if err != nil {
		h.respondServiceError(w, err, "failed to update course")
		return
	}

	h.respondMessage(w, http.StatusOK, "Course updated successfully", course)
}

// Delete handles DELETE /api/courses/{courseId}
// @Summary Delete a course
// @Description Delete a course and everything it owns
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} handlers.envelope{data=models.Course}
// @Failure 404 {object} handlers.envelope
// @Router /api/courses/{courseId} [delete]
func (h *CoursesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "courseId")

	course, err := h.service.Get(r.Context(), courseID)
	if err != nil {
		h.respondServiceError(w, err, "failed to delete course")
		return
	}
	if err := h.service.Delete(r.Context(), courseID); err != nil {
		h.respondServiceError(w, err, "failed to delete course")
		return
	}

	h.respondMessage(w, http.StatusOK, "Course deleted successfully", course)
}

// seedRequest accepts either a bare course array or an object wrapping it.
type seedRequest struct {
	Data []models.Course `json:"data"`
}

// Seed handles POST /api/seed
// @Summary Seed the catalog
// @Description Replace the whole catalog with the provided courses
// @Tags courses
// @Accept json
// @Produce json
// @Param courses body handlers.seedRequest true "Courses to load"
// @Success 200 {object} handlers.envelope
// @Failure 400 {object} handlers.envelope
// @Router /api/seed [post]
func (h *CoursesHandler) Seed(w http.ResponseWriter, r *http.Request) {
	courses, ok := h.decodeSeed(w, r)
	if !ok {
		return
	}

	if err := h.service.Seed(r.Context(), courses); err != nil {
		h.respondServiceError(w, err, "failed to seed courses")
		return
	}

	count := len(courses)
	h.respondJSON(w, http.StatusOK, envelope{
		Success: true,
		Message: "Database seeded successfully",
		Count:   &count,
	})
}

func (h *CoursesHandler) decodeSeed(w http.ResponseWriter, r *http.Request) ([]models.Course, bool) {
	var raw json.RawMessage
	if !h.decodeJSON(w, r, &raw) {
		return nil, false
	}

	var courses []models.Course
	if err := json.Unmarshal(raw, &courses); err == nil {
		return courses, true
	}

	var wrapped seedRequest
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}
	return wrapped.Data, true
}
